package cmd

import (
	"fmt"

	"github.com/pedalier/pedalier/backend/midiout"
)

// Ports lists the system MIDI output ports, numbered in driver order.
type Ports struct{}

func (p *Ports) Run() error {
	defer midiout.CloseDriver()

	names := midiout.OutPortNames()
	if len(names) == 0 {
		fmt.Println("no MIDI output ports")
		return nil
	}
	for i, name := range names {
		fmt.Printf("%2d: %s\n", i, name)
	}
	return nil
}
