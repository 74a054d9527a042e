package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pedalier/pedalier/backend/keyboard"
	"github.com/pedalier/pedalier/backend/midiout"
	"github.com/pedalier/pedalier/gpio"
	"github.com/pedalier/pedalier/internal/console"
	"github.com/pedalier/pedalier/internal/lamp"
	"github.com/pedalier/pedalier/internal/log"
	"github.com/pedalier/pedalier/mode"
	"github.com/pedalier/pedalier/pedal"
)

// GpioConfig selects the pin driver.
type GpioConfig struct {
	Driver string `help:"GPIO driver (rpio, periph, mem, term)" default:"rpio" env:"PEDALIER_GPIO_DRIVER"`
}

// PollConfig paces the loop.
type PollConfig struct {
	Interval time.Duration `help:"Poll period" default:"10ms" env:"PEDALIER_POLL_INTERVAL"`
}

// ModeConfig controls the boot-time mode decision.
type ModeConfig struct {
	Pin    uint8         `help:"Selector pin (BCM)" default:"25" env:"PEDALIER_MODE_PIN"`
	Settle time.Duration `help:"Delay before the selector pin is sampled" default:"100ms" env:"PEDALIER_MODE_SETTLE"`
	Low    string        `help:"Mode a grounded selector picks" enum:"keyboard,midi" default:"midi" env:"PEDALIER_MODE_LOW"`
	Force  string        `help:"Skip the selector pin and force a mode" enum:",keyboard,midi" default:"" env:"PEDALIER_MODE_FORCE"`
}

// MidiConfig carries the note parameters for MIDI mode.
type MidiConfig struct {
	Port     string `help:"Output port, matched as substring (empty picks the first hardware port)" default:"" env:"PEDALIER_MIDI_PORT"`
	Channel  uint8  `help:"Channel 1-16" default:"1" env:"PEDALIER_MIDI_CHANNEL"`
	Velocity uint8  `help:"Note-on velocity 1-127" default:"64" env:"PEDALIER_MIDI_VELOCITY"`
}

// KeyboardConfig points at the HID gadget for keyboard mode.
type KeyboardConfig struct {
	Device  string        `help:"HID gadget device node" default:"/dev/hidg0" env:"PEDALIER_HID_DEVICE"`
	Timeout time.Duration `help:"How long one report may wait for the host" default:"250ms" env:"PEDALIER_HID_TIMEOUT"`
}

// LampConfig wires the two status lamps.
type LampConfig struct {
	Enabled  bool  `help:"Drive the status lamps" default:"true" env:"PEDALIER_LAMP_ENABLED"`
	Keyboard uint8 `help:"Keyboard lamp pin (BCM)" default:"23" env:"PEDALIER_LAMP_KEYBOARD"`
	Midi     uint8 `help:"MIDI lamp pin (BCM)" default:"24" env:"PEDALIER_LAMP_MIDI"`
}

// Run bridges the pedalboard to the host: decide the mode once, bind the
// matching handler pair, and poll until interrupted.
type Run struct {
	Gpio     GpioConfig     `embed:"" prefix:"gpio."`
	Poll     PollConfig     `embed:"" prefix:"poll."`
	Mode     ModeConfig     `embed:"" prefix:"mode."`
	Midi     MidiConfig     `embed:"" prefix:"midi."`
	Keyboard KeyboardConfig `embed:"" prefix:"keyboard."`
	Lamp     LampConfig     `embed:"" prefix:"lamp."`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, rawLogger)
}

// Start wires the board and blocks in the polling loop until ctx is done.
func (r *Run) Start(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	layout := pedal.StandardLayout()

	driver, err := gpio.New(r.Gpio.Driver)
	if err != nil {
		return err
	}
	if err := driver.Open(); err != nil {
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Warn("closing gpio driver", "error", err)
		}
	}()
	logger.Info("gpio driver open", "driver", driver.Name())

	inputs, err := configureInputs(driver, layout)
	if err != nil {
		return err
	}

	m, err := r.resolveMode(ctx, driver, logger)
	if err != nil {
		return err
	}

	var panel *lamp.Panel
	if r.Lamp.Enabled {
		panel, err = r.openPanel(driver)
		if err != nil {
			return err
		}
		panel.ShowMode(m)
		defer panel.Off()
	}

	var dispatcher mode.Dispatcher
	switch m {
	case mode.Keyboard:
		gadget, err := keyboard.OpenGadget(r.Keyboard.Device, r.Keyboard.Timeout)
		if err != nil {
			return err
		}
		defer func() { _ = gadget.Close() }()

		sender := keyboard.NewSender(gadget, rawLogger)
		// Leave no key hanging on the host when the loop stops mid-press.
		defer func() {
			if err := sender.ReleaseAll(); err != nil {
				logger.Warn("releasing keys on shutdown", "error", err)
			}
		}()

		if err := dispatcher.Bind(keyboard.NewHandler(layout, sender, logger)); err != nil {
			return err
		}
		logger.Info("keyboard mode", "device", r.Keyboard.Device)

	case mode.MIDI:
		port, err := midiout.OpenPort(r.Midi.Port, rawLogger)
		if err != nil {
			return err
		}
		defer midiout.CloseDriver()
		defer func() { _ = port.Close() }()

		handler, err := midiout.NewHandler(layout, port, midiout.Options{
			Channel:  r.Midi.Channel,
			Velocity: r.Midi.Velocity,
		}, panel, logger)
		if err != nil {
			return err
		}
		// All Notes Off so nothing rings past shutdown.
		defer func() {
			if err := handler.Silence(); err != nil {
				logger.Warn("silencing on shutdown", "error", err)
			}
		}()

		if err := dispatcher.Bind(handler); err != nil {
			return err
		}
		logger.Info("midi mode", "port", port.Name(), "channel", r.Midi.Channel, "velocity", r.Midi.Velocity)
	}

	cons, err := console.New(console.Config{
		Layout:     layout,
		Inputs:     inputs,
		Dispatcher: &dispatcher,
		Interval:   r.Poll.Interval,
	}, logger)
	if err != nil {
		return err
	}
	return cons.Run(ctx)
}

// resolveMode applies the forced mode if set, otherwise samples the selector
// pin once after the settle delay.
func (r *Run) resolveMode(ctx context.Context, driver gpio.Driver, logger *slog.Logger) (mode.Mode, error) {
	if r.Mode.Force != "" {
		m, err := mode.Parse(r.Mode.Force)
		if err != nil {
			return 0, err
		}
		logger.Info("mode forced", "mode", m.String())
		return m, nil
	}

	lowMeans, err := mode.Parse(r.Mode.Low)
	if err != nil {
		return 0, err
	}
	pin, err := driver.Input(r.Mode.Pin)
	if err != nil {
		return 0, fmt.Errorf("configuring selector pin %d: %w", r.Mode.Pin, err)
	}
	sel := &mode.Selector{
		Pin:    pin,
		Policy: mode.Policy{LowMeans: lowMeans},
		Settle: r.Mode.Settle,
	}
	m, err := sel.Select(ctx)
	if err != nil {
		return 0, err
	}
	logger.Info("mode selected", "mode", m.String(), "pin", r.Mode.Pin, "low_means", lowMeans.String())
	return m, nil
}

func (r *Run) openPanel(driver gpio.Driver) (*lamp.Panel, error) {
	kb, err := driver.Output(r.Lamp.Keyboard)
	if err != nil {
		return nil, fmt.Errorf("configuring keyboard lamp pin %d: %w", r.Lamp.Keyboard, err)
	}
	md, err := driver.Output(r.Lamp.Midi)
	if err != nil {
		return nil, fmt.Errorf("configuring midi lamp pin %d: %w", r.Lamp.Midi, err)
	}
	return &lamp.Panel{Keyboard: kb, Midi: md}, nil
}

func configureInputs(driver gpio.Driver, layout pedal.Layout) ([]gpio.Input, error) {
	inputs := make([]gpio.Input, len(layout))
	for i, pin := range layout.Pins() {
		in, err := driver.Input(pin)
		if err != nil {
			return nil, fmt.Errorf("configuring pedal %d on pin %d: %w", i, pin, err)
		}
		inputs[i] = in
	}
	return inputs, nil
}
