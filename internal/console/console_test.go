package console_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedalier/pedalier/gpio"
	"github.com/pedalier/pedalier/gpio/memio"
	"github.com/pedalier/pedalier/internal/console"
	"github.com/pedalier/pedalier/mode"
	"github.com/pedalier/pedalier/pedal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// syncRecorder collects handler calls across goroutines.
type syncRecorder struct {
	mu    sync.Mutex
	downs []int
	ups   []int
}

func (r *syncRecorder) OnDown(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.downs = append(r.downs, index)
	return nil
}

func (r *syncRecorder) OnUp(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ups = append(r.ups, index)
	return nil
}

func (r *syncRecorder) snapshot() (downs, ups []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.downs...), append([]int(nil), r.ups...)
}

type fixture struct {
	driver *memio.Driver
	layout pedal.Layout
	rec    *syncRecorder
}

func startConsole(t *testing.T) *fixture {
	t.Helper()

	d := memio.New()
	require.NoError(t, d.Open())
	t.Cleanup(func() { _ = d.Close() })

	layout := pedal.StandardLayout()
	inputs := make([]gpio.Input, len(layout))
	for i, pin := range layout.Pins() {
		in, err := d.Input(pin)
		require.NoError(t, err)
		inputs[i] = in
	}

	rec := &syncRecorder{}
	var dispatcher mode.Dispatcher
	require.NoError(t, dispatcher.Bind(rec))

	c, err := console.New(console.Config{
		Layout:     layout,
		Inputs:     inputs,
		Dispatcher: &dispatcher,
		Interval:   2 * time.Millisecond,
	}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case <-c.Ready():
	case <-time.After(time.Second):
		t.Fatal("console never became ready")
	}

	f := &fixture{driver: d, layout: layout, rec: rec}
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Error("console did not stop")
		}
	})
	return f
}

func TestPressAndReleaseDispatch(t *testing.T) {
	f := startConsole(t)
	pin := f.layout[0].Pin

	f.driver.Press(pin)
	assert.Eventually(t, func() bool {
		downs, _ := f.rec.snapshot()
		return len(downs) == 1 && downs[0] == 0
	}, time.Second, time.Millisecond, "press reaches the handler once")

	f.driver.Release(pin)
	assert.Eventually(t, func() bool {
		_, ups := f.rec.snapshot()
		return len(ups) == 1 && ups[0] == 0
	}, time.Second, time.Millisecond, "release reaches the handler once")

	// A held level produces no further calls.
	time.Sleep(20 * time.Millisecond)
	downs, ups := f.rec.snapshot()
	assert.Equal(t, []int{0}, downs)
	assert.Equal(t, []int{0}, ups)
}

func TestChordDispatchesEveryPedal(t *testing.T) {
	f := startConsole(t)

	f.driver.Press(f.layout[0].Pin)
	f.driver.Press(f.layout[4].Pin)
	f.driver.Press(f.layout[7].Pin)

	assert.Eventually(t, func() bool {
		downs, _ := f.rec.snapshot()
		return len(downs) == 3
	}, time.Second, time.Millisecond)

	downs, _ := f.rec.snapshot()
	assert.ElementsMatch(t, []int{0, 4, 7}, downs)
}

func TestPedalHeldAtStartup(t *testing.T) {
	d := memio.New()
	require.NoError(t, d.Open())
	t.Cleanup(func() { _ = d.Close() })

	layout := pedal.StandardLayout()
	d.Press(layout[3].Pin) // held before the loop starts

	inputs := make([]gpio.Input, len(layout))
	for i, pin := range layout.Pins() {
		in, err := d.Input(pin)
		require.NoError(t, err)
		inputs[i] = in
	}

	rec := &syncRecorder{}
	var dispatcher mode.Dispatcher
	require.NoError(t, dispatcher.Bind(rec))

	c, err := console.New(console.Config{
		Layout:     layout,
		Inputs:     inputs,
		Dispatcher: &dispatcher,
		Interval:   2 * time.Millisecond,
	}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	assert.Eventually(t, func() bool {
		downs, _ := rec.snapshot()
		return len(downs) == 1 && downs[0] == 3
	}, time.Second, time.Millisecond, "a pedal held across boot still sounds")

	cancel()
	require.NoError(t, <-done)
}

func TestUnboundDispatcherKeepsPolling(t *testing.T) {
	d := memio.New()
	require.NoError(t, d.Open())
	t.Cleanup(func() { _ = d.Close() })

	layout := pedal.StandardLayout()
	inputs := make([]gpio.Input, len(layout))
	for i, pin := range layout.Pins() {
		in, err := d.Input(pin)
		require.NoError(t, err)
		inputs[i] = in
	}

	c, err := console.New(console.Config{
		Layout:     layout,
		Inputs:     inputs,
		Dispatcher: &mode.Dispatcher{},
		Interval:   2 * time.Millisecond,
	}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	d.Press(layout[0].Pin)
	assert.NoError(t, c.Run(ctx), "transitions with no handlers are dropped, not fatal")
}

func TestConfigValidation(t *testing.T) {
	layout := pedal.StandardLayout()
	var dispatcher mode.Dispatcher

	tests := []struct {
		name string
		cfg  console.Config
	}{
		{"empty layout", console.Config{Dispatcher: &dispatcher}},
		{"input count mismatch", console.Config{Layout: layout, Inputs: make([]gpio.Input, 2), Dispatcher: &dispatcher}},
		{"nil dispatcher", console.Config{Layout: layout, Inputs: make([]gpio.Input, len(layout))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := console.New(tt.cfg, discardLogger())
			assert.Error(t, err)
		})
	}
}
