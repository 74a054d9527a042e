// Package mode decides and routes what a pedal press becomes: a USB HID key
// event or a MIDI note. The mode is fixed for the life of the process, chosen
// either by a selector pin sampled once at startup or by configuration.
package mode

import (
	"fmt"
)

// Mode is the output personality the board runs with.
type Mode int

const (
	// Keyboard sends HID key presses and releases.
	Keyboard Mode = iota
	// MIDI sends note-on and note-off messages.
	MIDI
)

func (m Mode) String() string {
	switch m {
	case Keyboard:
		return "keyboard"
	case MIDI:
		return "midi"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Parse maps a configuration string onto a Mode. Matching is
// case-insensitive; "kbd" is accepted as shorthand for keyboard.
func Parse(s string) (Mode, error) {
	switch lower(s) {
	case "keyboard", "kbd":
		return Keyboard, nil
	case "midi":
		return MIDI, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want keyboard or midi)", s)
	}
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
