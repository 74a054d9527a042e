// Package pedal describes the pedalboard itself: which GPIO pin each pedal
// switch is wired to, and which MIDI pitch and USB HID key it plays.
package pedal

import (
	"fmt"
)

// Pedal is the immutable description of one pedal switch. Pin is the BCM GPIO
// number the switch is wired to (pull-up wiring, low when pressed), Pitch the
// MIDI note number sounded in MIDI mode, and Key the USB HID usage code sent
// in keyboard mode.
type Pedal struct {
	Index int
	Pin   uint8
	Pitch uint8
	Key   uint8
}

// Layout is the fixed pedal table, ordered by Index. It is built once at
// startup and never mutated afterwards.
type Layout []Pedal

// NewLayout validates a pedal table: indexes must be dense from zero, pins
// unique, and pitches valid MIDI notes. Returns the table unchanged on
// success.
func NewLayout(pedals []Pedal) (Layout, error) {
	if len(pedals) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}
	pins := make(map[uint8]int, len(pedals))
	for i, p := range pedals {
		if p.Index != i {
			return nil, fmt.Errorf("pedal %d: index %d out of order", i, p.Index)
		}
		if prev, ok := pins[p.Pin]; ok {
			return nil, fmt.Errorf("pedal %d: pin %d already used by pedal %d", i, p.Pin, prev)
		}
		pins[p.Pin] = i
		if p.Pitch > 127 {
			return nil, fmt.Errorf("pedal %d: pitch %d out of MIDI range", i, p.Pitch)
		}
	}
	return Layout(pedals), nil
}

// Pins returns the BCM pin numbers of every pedal, in index order.
func (l Layout) Pins() []uint8 {
	pins := make([]uint8, len(l))
	for i, p := range l {
		pins[i] = p.Pin
	}
	return pins
}

// StandardLayout is the compiled-in 13-pedal board: one chromatic octave plus
// the octave's root, C2 through C3, matching the classic short pedalboard.
// Keys follow the bottom-row piano convention (z = C, s = C#, x = D, ...) so
// keyboard mode drives the usual virtual-organ key maps out of the box.
func StandardLayout() Layout {
	return Layout{
		{Index: 0, Pin: 4, Pitch: 36, Key: 0x1d},   // C2   z
		{Index: 1, Pin: 17, Pitch: 37, Key: 0x16},  // C#2  s
		{Index: 2, Pin: 27, Pitch: 38, Key: 0x1b},  // D2   x
		{Index: 3, Pin: 22, Pitch: 39, Key: 0x07},  // D#2  d
		{Index: 4, Pin: 5, Pitch: 40, Key: 0x06},   // E2   c
		{Index: 5, Pin: 6, Pitch: 41, Key: 0x19},   // F2   v
		{Index: 6, Pin: 13, Pitch: 42, Key: 0x0a},  // F#2  g
		{Index: 7, Pin: 19, Pitch: 43, Key: 0x05},  // G2   b
		{Index: 8, Pin: 26, Pitch: 44, Key: 0x0b},  // G#2  h
		{Index: 9, Pin: 12, Pitch: 45, Key: 0x11},  // A2   n
		{Index: 10, Pin: 16, Pitch: 46, Key: 0x0d}, // A#2  j
		{Index: 11, Pin: 20, Pitch: 47, Key: 0x10}, // B2   m
		{Index: 12, Pin: 21, Pitch: 48, Key: 0x36}, // C3   ,
	}
}
