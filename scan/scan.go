// Package scan turns raw per-cycle switch readings into pedal transitions.
//
// The scanner keeps the previous cycle's pressed state per pedal and reports
// an edge whenever a reading differs from it. The cache is overwritten on
// every cycle whether or not an edge fired, so contact bounce shorter than
// one poll period never surfaces and bounce spanning cycles resolves into
// honest down/up pairs. One goroutine owns a Scanner; it is not locked.
package scan

import (
	"fmt"

	"github.com/pedalier/pedalier/pedal"
)

// Scanner detects pressed-state edges across poll cycles.
type Scanner struct {
	pressed []bool
}

// New returns a scanner for n pedals, all considered released. The first
// cycle therefore reports a Down for any pedal already held at startup.
func New(n int) *Scanner {
	return &Scanner{pressed: make([]bool, n)}
}

// Scan compares one cycle of readings against the cached state, updates the
// cache, and returns the transitions in pedal index order. reads[i] is true
// when pedal i is pressed this cycle; its length must match the pedal count
// the scanner was built for.
func (s *Scanner) Scan(reads []bool) []pedal.Transition {
	if len(reads) != len(s.pressed) {
		panic(fmt.Sprintf("scan: %d readings for %d pedals", len(reads), len(s.pressed)))
	}
	var transitions []pedal.Transition
	for i, now := range reads {
		if now != s.pressed[i] {
			dir := pedal.Up
			if now {
				dir = pedal.Down
			}
			transitions = append(transitions, pedal.Transition{Index: i, Direction: dir})
		}
		s.pressed[i] = now
	}
	return transitions
}

// Pressed reports the cached state of one pedal as of the last Scan.
func (s *Scanner) Pressed(index int) bool {
	return s.pressed[index]
}
