package cmd

import (
	"fmt"

	"github.com/pedalier/pedalier/backend/keyboard"
	"github.com/pedalier/pedalier/pedal"
)

// Layout prints the compiled-in pedal table, so a board can be wired
// straight from the output.
type Layout struct{}

func (l *Layout) Run() error {
	fmt.Println("pedal  pin  note   midi  key")
	for _, p := range pedal.StandardLayout() {
		fmt.Printf("%5d  %3d  %-5s  %4d  %s\n",
			p.Index, p.Pin, pedal.PitchName(p.Pitch), p.Pitch, keyboard.KeyName(p.Key))
	}
	return nil
}
