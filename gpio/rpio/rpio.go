// Package rpio drives the Raspberry Pi GPIO header through /dev/gpiomem
// using stianeikeland's go-rpio library. This is the default driver on a Pi:
// it needs no root when the gpio group owns /dev/gpiomem and it configures
// the internal pull-up for every switch pin.
package rpio

import (
	"fmt"

	gorpio "github.com/stianeikeland/go-rpio/v4"

	"github.com/pedalier/pedalier/gpio"
)

func init() {
	gpio.Register("rpio", func() gpio.Driver { return &Driver{} })
}

// Driver maps gpio pins onto the go-rpio memory-mapped register file.
type Driver struct {
	open bool
}

func (d *Driver) Name() string { return "rpio" }

func (d *Driver) Open() error {
	if d.open {
		return fmt.Errorf("rpio: already open")
	}
	if err := gorpio.Open(); err != nil {
		return fmt.Errorf("rpio: opening /dev/gpiomem: %w", err)
	}
	d.open = true
	return nil
}

func (d *Driver) Close() error {
	if !d.open {
		return nil
	}
	d.open = false
	if err := gorpio.Close(); err != nil {
		return fmt.Errorf("rpio: %w", err)
	}
	return nil
}

func (d *Driver) Input(bcm uint8) (gpio.Input, error) {
	if !d.open {
		return nil, fmt.Errorf("rpio: not open")
	}
	pin := gorpio.Pin(bcm)
	pin.Input()
	pin.PullUp()
	return input(pin), nil
}

func (d *Driver) Output(bcm uint8) (gpio.Output, error) {
	if !d.open {
		return nil, fmt.Errorf("rpio: not open")
	}
	pin := gorpio.Pin(bcm)
	pin.Output()
	pin.Low()
	return output(pin), nil
}

type input gorpio.Pin

func (in input) Read() gpio.Level {
	if gorpio.Pin(in).Read() == gorpio.Low {
		return gpio.Low
	}
	return gpio.High
}

type output gorpio.Pin

func (out output) Set(on bool) error {
	if on {
		gorpio.Pin(out).High()
	} else {
		gorpio.Pin(out).Low()
	}
	return nil
}
