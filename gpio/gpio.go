// Package gpio defines the pin access contract the pedalboard polls through,
// plus a named driver registry so the concrete backend (memory-mapped Pi
// registers, the portable periph.io host drivers, an in-memory fake, or the
// stdin simulator) is selected by configuration at startup.
package gpio

// Level is the electrical state of a pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Pressed interprets a level read from a pull-up wired switch: the contact
// shorts the pin to ground, so low means pressed.
func (l Level) Pressed() bool {
	return l == Low
}

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Input is a single digital input pin configured with its pull-up enabled.
// Reads cannot fail in this hardware model; setup errors surface from
// Driver.Input instead.
type Input interface {
	Read() Level
}

// Output is a single digital output pin (status lamps).
type Output interface {
	Set(on bool) error
}

// Driver provides pins by BCM number. Open must be called once before any
// Input/Output call and Close once after the last; drivers are not required
// to support reopening.
type Driver interface {
	// Open claims whatever system resource backs the pins.
	Open() error
	// Close releases it. Pins obtained from the driver are invalid afterwards.
	Close() error
	// Input configures the pin as an input with pull-up and returns it.
	Input(bcm uint8) (Input, error)
	// Output configures the pin as an output, initially off, and returns it.
	Output(bcm uint8) (Output, error)
	// Name reports the registry name the driver was registered under.
	Name() string
}
