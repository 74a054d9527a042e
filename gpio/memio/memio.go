// Package memio is an in-memory gpio driver. Inputs rest at the pulled-up
// (released) level until a test or simulator drives them; outputs record
// their last state. Safe for concurrent use so tests can flip pins while the
// polling loop runs.
package memio

import (
	"fmt"
	"sync"

	"github.com/pedalier/pedalier/gpio"
)

func init() {
	gpio.Register("mem", func() gpio.Driver { return New() })
}

// Driver holds the simulated pin states.
type Driver struct {
	mu      sync.Mutex
	open    bool
	inputs  map[uint8]gpio.Level
	claimed map[uint8]bool // pins handed out, to catch double configuration
	outs    map[uint8]bool
}

// New returns an unopened in-memory driver.
func New() *Driver {
	return &Driver{
		inputs:  make(map[uint8]gpio.Level),
		claimed: make(map[uint8]bool),
		outs:    make(map[uint8]bool),
	}
}

func (d *Driver) Name() string { return "mem" }

func (d *Driver) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		return fmt.Errorf("memio: already open")
	}
	d.open = true
	return nil
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	return nil
}

func (d *Driver) Input(bcm uint8) (gpio.Input, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil, fmt.Errorf("memio: not open")
	}
	if d.claimed[bcm] {
		return nil, fmt.Errorf("memio: pin %d configured twice", bcm)
	}
	d.claimed[bcm] = true
	if _, ok := d.inputs[bcm]; !ok {
		d.inputs[bcm] = gpio.High // pull-up: released until driven
	}
	return &input{d: d, bcm: bcm}, nil
}

func (d *Driver) Output(bcm uint8) (gpio.Output, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return nil, fmt.Errorf("memio: not open")
	}
	if d.claimed[bcm] {
		return nil, fmt.Errorf("memio: pin %d configured twice", bcm)
	}
	d.claimed[bcm] = true
	d.outs[bcm] = false
	return &output{d: d, bcm: bcm}, nil
}

// SetLevel drives a simulated input pin. Unknown pins are created on the fly
// so a test may pre-load levels before the loop configures its inputs.
func (d *Driver) SetLevel(bcm uint8, level gpio.Level) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inputs[bcm] = level
}

// Press shorts a pull-up wired pin to ground.
func (d *Driver) Press(bcm uint8) { d.SetLevel(bcm, gpio.Low) }

// Release lets a pull-up wired pin float back high.
func (d *Driver) Release(bcm uint8) { d.SetLevel(bcm, gpio.High) }

// OutputOn reports the last state written to a simulated output pin.
func (d *Driver) OutputOn(bcm uint8) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.outs[bcm]
}

type input struct {
	d   *Driver
	bcm uint8
}

func (in *input) Read() gpio.Level {
	in.d.mu.Lock()
	defer in.d.mu.Unlock()
	return in.d.inputs[in.bcm]
}

type output struct {
	d   *Driver
	bcm uint8
}

func (out *output) Set(on bool) error {
	out.d.mu.Lock()
	defer out.d.mu.Unlock()
	out.d.outs[out.bcm] = on
	return nil
}
