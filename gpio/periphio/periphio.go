// Package periphio drives GPIO through the periph.io host drivers. It covers
// boards beyond the Raspberry Pi as long as periph knows the chip; pins are
// addressed by their BCM-style number via the periph registry.
package periphio

import (
	"fmt"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/pedalier/pedalier/gpio"
)

func init() {
	gpio.Register("periph", func() gpio.Driver { return &Driver{} })
}

// Driver resolves pins from the periph.io pin registry.
type Driver struct {
	open bool
}

func (d *Driver) Name() string { return "periph" }

func (d *Driver) Open() error {
	if d.open {
		return fmt.Errorf("periph: already open")
	}
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph: host init: %w", err)
	}
	d.open = true
	return nil
}

func (d *Driver) Close() error {
	d.open = false
	return nil
}

func (d *Driver) pin(bcm uint8) (pgpio.PinIO, error) {
	if !d.open {
		return nil, fmt.Errorf("periph: not open")
	}
	name := fmt.Sprintf("GPIO%d", bcm)
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("periph: no pin named %s", name)
	}
	return pin, nil
}

func (d *Driver) Input(bcm uint8) (gpio.Input, error) {
	pin, err := d.pin(bcm)
	if err != nil {
		return nil, err
	}
	if err := pin.In(pgpio.PullUp, pgpio.NoEdge); err != nil {
		return nil, fmt.Errorf("periph: configuring %s as pulled-up input: %w", pin.Name(), err)
	}
	return input{pin}, nil
}

func (d *Driver) Output(bcm uint8) (gpio.Output, error) {
	pin, err := d.pin(bcm)
	if err != nil {
		return nil, err
	}
	if err := pin.Out(pgpio.Low); err != nil {
		return nil, fmt.Errorf("periph: configuring %s as output: %w", pin.Name(), err)
	}
	return output{pin}, nil
}

type input struct {
	pin pgpio.PinIO
}

func (in input) Read() gpio.Level {
	if in.pin.Read() == pgpio.Low {
		return gpio.Low
	}
	return gpio.High
}

type output struct {
	pin pgpio.PinIO
}

func (out output) Set(on bool) error {
	level := pgpio.Low
	if on {
		level = pgpio.High
	}
	if err := out.pin.Out(level); err != nil {
		return fmt.Errorf("periph: writing %s: %w", out.pin.Name(), err)
	}
	return nil
}
