// Package midiout plays pedal transitions as MIDI notes on a system MIDI
// output port via the rtmidi driver.
package midiout

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register the rtmidi driver

	"github.com/pedalier/pedalier/internal/log"
)

// Output accepts outgoing MIDI messages. Sends are immediate; the driver
// keeps no buffer to flush.
type Output interface {
	Send(msg midi.Message) error
}

// throughPatterns name the software loopback ports that are never picked
// automatically.
var throughPatterns = []string{"midi through", "through port", "dummy"}

// OutPortNames lists the system's MIDI output ports in driver order.
func OutPortNames() []string {
	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// FindOutPort resolves an output port by case-insensitive substring match.
// An empty query picks the first port that is not a software Through port.
func FindOutPort(query string) (drivers.Out, error) {
	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		return nil, fmt.Errorf("midi: no output ports present")
	}
	if query == "" {
		for _, out := range outs {
			if !isThrough(out.String()) {
				return out, nil
			}
		}
		return nil, fmt.Errorf("midi: only software Through ports present, name one explicitly")
	}
	q := strings.ToLower(query)
	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), q) {
			return out, nil
		}
	}
	return nil, fmt.Errorf("midi: no output port matching %q (have %v)", query, OutPortNames())
}

func isThrough(name string) bool {
	n := strings.ToLower(name)
	for _, pat := range throughPatterns {
		if strings.Contains(n, pat) {
			return true
		}
	}
	return false
}

// Port is an open connection to one system MIDI output. Every sent message
// is also handed to the raw logger.
type Port struct {
	out  drivers.Out
	send func(midi.Message) error
	raw  log.RawLogger
}

// OpenPort resolves a port by query and opens it for sending.
func OpenPort(query string, rawLogger log.RawLogger) (*Port, error) {
	out, err := FindOutPort(query)
	if err != nil {
		return nil, err
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("midi: opening %s: %w", out.String(), err)
	}
	return &Port{out: out, send: send, raw: rawLogger}, nil
}

// Name reports the system name of the open port.
func (p *Port) Name() string {
	return p.out.String()
}

func (p *Port) Send(msg midi.Message) error {
	if err := p.send(msg); err != nil {
		return fmt.Errorf("midi: sending to %s: %w", p.out.String(), err)
	}
	p.raw.Log("midi", []byte(msg))
	return nil
}

func (p *Port) Close() error {
	return p.out.Close()
}

// CloseDriver releases the process-wide rtmidi driver. Call once, after the
// last port is closed.
func CloseDriver() {
	midi.CloseDriver()
}
