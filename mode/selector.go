package mode

import (
	"context"
	"time"

	"github.com/pedalier/pedalier/gpio"
)

// Policy maps the selector pin level onto a mode. The pin is pulled up, so
// an unwired selector reads high and a strapped-to-ground jumper reads low.
type Policy struct {
	LowMeans Mode
}

// ModeFor resolves a sampled level under this policy.
func (p Policy) ModeFor(level gpio.Level) Mode {
	if level == gpio.Low {
		return p.LowMeans
	}
	if p.LowMeans == Keyboard {
		return MIDI
	}
	return Keyboard
}

// Selector samples the mode pin once. The settle delay gives the pull-up and
// any wiring capacitance time to reach a stable level after power-on before
// the single read that decides the mode.
type Selector struct {
	Pin    gpio.Input
	Policy Policy
	Settle time.Duration
}

// Select waits out the settle delay, reads the pin once, and returns the
// mode the policy assigns to that level.
func (s *Selector) Select(ctx context.Context) (Mode, error) {
	if s.Settle > 0 {
		t := time.NewTimer(s.Settle)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-t.C:
		}
	}
	return s.Policy.ModeFor(s.Pin.Read()), nil
}
