// Package lamp drives the two status lamps on the board front. One lamp per
// mode; the active mode's lamp holds steady and the MIDI lamp blinks off for
// the span of each transmission. Lamps are best-effort: write errors are
// swallowed and unwired lamps are tolerated as nil outputs.
package lamp

import (
	"github.com/pedalier/pedalier/gpio"
	"github.com/pedalier/pedalier/mode"
)

// Panel holds the lamp output pins. Either or both may be nil.
type Panel struct {
	Keyboard gpio.Output
	Midi     gpio.Output
}

// ShowMode lights the chosen mode's lamp and darkens the other.
func (p *Panel) ShowMode(m mode.Mode) {
	if p == nil {
		return
	}
	if p.Keyboard != nil {
		_ = p.Keyboard.Set(m == mode.Keyboard)
	}
	if p.Midi != nil {
		_ = p.Midi.Set(m == mode.MIDI)
	}
}

// Activity brackets one MIDI transmission: the MIDI lamp drops out while fn
// runs and returns to steady afterwards, giving the visible flicker that
// tells the player notes are leaving the board.
func (p *Panel) Activity(fn func() error) error {
	if p == nil || p.Midi == nil {
		return fn()
	}
	_ = p.Midi.Set(false)
	err := fn()
	_ = p.Midi.Set(true)
	return err
}

// Off darkens both lamps, for shutdown.
func (p *Panel) Off() {
	if p == nil {
		return
	}
	if p.Keyboard != nil {
		_ = p.Keyboard.Set(false)
	}
	if p.Midi != nil {
		_ = p.Midi.Set(false)
	}
}
