package cmd_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedalier/pedalier/internal/cmd"
	"github.com/pedalier/pedalier/internal/log"

	_ "github.com/pedalier/pedalier/gpio/memio" // Register the in-memory driver
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testRun(gadgetPath string) *cmd.Run {
	return &cmd.Run{
		Gpio: cmd.GpioConfig{Driver: "mem"},
		Poll: cmd.PollConfig{Interval: 2 * time.Millisecond},
		Mode: cmd.ModeConfig{
			Pin:    25,
			Settle: time.Millisecond,
			Low:    "midi",
			Force:  "keyboard",
		},
		Keyboard: cmd.KeyboardConfig{Device: gadgetPath, Timeout: 100 * time.Millisecond},
		Lamp:     cmd.LampConfig{Enabled: true, Keyboard: 23, Midi: 24},
	}
}

func TestRunKeyboardModeEndToEnd(t *testing.T) {
	gadget := filepath.Join(t.TempDir(), "hidg0")
	require.NoError(t, os.WriteFile(gadget, nil, 0o644))

	r := testRun(gadget)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, r.Start(ctx, discardLogger(), log.NewRaw(nil)))

	// No pedal was pressed, so the only report is the empty one flushed by
	// ReleaseAll at shutdown.
	data, err := os.ReadFile(gadget)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), data)
}

func TestRunSelectorPicksKeyboardWhenFloating(t *testing.T) {
	gadget := filepath.Join(t.TempDir(), "hidg0")
	require.NoError(t, os.WriteFile(gadget, nil, 0o644))

	// No forced mode: the mem driver's selector pin floats high, and with
	// low meaning midi that resolves to keyboard mode.
	r := testRun(gadget)
	r.Mode.Force = ""

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, r.Start(ctx, discardLogger(), log.NewRaw(nil)))

	data, err := os.ReadFile(gadget)
	require.NoError(t, err)
	assert.Len(t, data, 8, "keyboard mode was selected and shut down cleanly")
}

func TestRunUnknownDriver(t *testing.T) {
	r := testRun("/dev/null")
	r.Gpio.Driver = "no-such-driver"

	err := r.Start(context.Background(), discardLogger(), log.NewRaw(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gpio driver")
}

func TestMonitorRunsUntilCancelled(t *testing.T) {
	m := &cmd.Monitor{
		Gpio: cmd.GpioConfig{Driver: "mem"},
		Poll: cmd.PollConfig{Interval: 2 * time.Millisecond},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, m.Start(ctx, discardLogger()))
}
