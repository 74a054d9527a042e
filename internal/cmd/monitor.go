package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pedalier/pedalier/backend/keyboard"
	"github.com/pedalier/pedalier/gpio"
	"github.com/pedalier/pedalier/internal/console"
	"github.com/pedalier/pedalier/mode"
	"github.com/pedalier/pedalier/pedal"
)

// Monitor runs the polling loop with handlers that only log, for checking
// the wiring of a freshly built board before connecting a host.
type Monitor struct {
	Gpio GpioConfig `embed:"" prefix:"gpio."`
	Poll PollConfig `embed:"" prefix:"poll."`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return m.Start(ctx, logger)
}

// Start polls and logs until ctx is done.
func (m *Monitor) Start(ctx context.Context, logger *slog.Logger) error {
	layout := pedal.StandardLayout()

	driver, err := gpio.New(m.Gpio.Driver)
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

	var dispatcher mode.Dispatcher
	if err := dispatcher.Bind(&logHandlers{layout: layout, logger: logger}); err != nil {
		return err
	}

	cons, err := console.New(console.Config{
		Layout:     layout,
		Inputs:     inputs,
		Dispatcher: &dispatcher,
		Interval:   m.Poll.Interval,
	}, logger)
	if err != nil {
		return err
	}
	logger.Info("monitoring, press pedals to see transitions")
	return cons.Run(ctx)
}

// logHandlers is the diagnostic handler pair: every transition becomes one
// log line naming the pedal every way it can be addressed.
type logHandlers struct {
	layout pedal.Layout
	logger *slog.Logger
}

func (lh *logHandlers) OnDown(index int) error {
	p := lh.layout[index]
	lh.logger.Info("pedal down",
		"pedal", index,
		"pin", p.Pin,
		"note", pedal.PitchName(p.Pitch),
		"key", keyboard.KeyName(p.Key),
	)
	return nil
}

func (lh *logHandlers) OnUp(index int) error {
	p := lh.layout[index]
	lh.logger.Info("pedal up",
		"pedal", index,
		"pin", p.Pin,
		"note", pedal.PitchName(p.Pitch),
		"key", keyboard.KeyName(p.Key),
	)
	return nil
}
