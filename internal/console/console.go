// Package console runs the polling loop at the center of the board: read
// every switch, detect edges, hand each transition to the dispatcher. The
// loop owns all pin reads and the scanner, so nothing here needs locking.
package console

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pedalier/pedalier/gpio"
	"github.com/pedalier/pedalier/mode"
	"github.com/pedalier/pedalier/pedal"
	"github.com/pedalier/pedalier/scan"
)

// DefaultInterval is the poll period. 10ms sits well under the shortest
// staccato a foot can play and above switch bounce time.
const DefaultInterval = 10 * time.Millisecond

// Config carries everything the loop needs. Inputs must line up with the
// layout, one configured pin per pedal index.
type Config struct {
	Layout     pedal.Layout
	Inputs     []gpio.Input
	Dispatcher *mode.Dispatcher
	Interval   time.Duration
}

// Console is the polling loop. Build with New, start with Run.
type Console struct {
	layout     pedal.Layout
	inputs     []gpio.Input
	scanner    *scan.Scanner
	dispatcher *mode.Dispatcher
	interval   time.Duration
	logger     *slog.Logger
	ready      chan struct{}
}

// New validates the wiring and builds the loop around a fresh scanner, so
// a pedal held at startup registers as a Down on the first cycle.
func New(cfg Config, logger *slog.Logger) (*Console, error) {
	if len(cfg.Layout) == 0 {
		return nil, fmt.Errorf("console: empty layout")
	}
	if len(cfg.Inputs) != len(cfg.Layout) {
		return nil, fmt.Errorf("console: %d inputs for %d pedals", len(cfg.Inputs), len(cfg.Layout))
	}
	if cfg.Dispatcher == nil {
		return nil, fmt.Errorf("console: nil dispatcher")
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Console{
		layout:     cfg.Layout,
		inputs:     cfg.Inputs,
		scanner:    scan.New(len(cfg.Layout)),
		dispatcher: cfg.Dispatcher,
		interval:   interval,
		logger:     logger,
		ready:      make(chan struct{}),
	}, nil
}

// Ready returns a channel that is closed once the loop is polling. Intended
// for tests and for callers that sequence startup logging.
func (c *Console) Ready() <-chan struct{} {
	return c.ready
}

// Run polls until the context is done. Call it once; the loop keeps its
// cadence with a ticker, and a cycle that overruns simply absorbs the missed
// ticks.
func (c *Console) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	reads := make([]bool, len(c.inputs))
	close(c.ready)
	c.logger.Info("polling", "pedals", len(c.layout), "interval", c.interval)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("polling stopped")
			return nil
		case <-ticker.C:
			c.cycle(reads)
		}
	}
}

func (c *Console) cycle(reads []bool) {
	for i, in := range c.inputs {
		reads[i] = in.Read().Pressed()
	}
	for _, tr := range c.scanner.Scan(reads) {
		p := c.layout[tr.Index]
		c.logger.Debug("transition",
			"pedal", tr.Index,
			"note", pedal.PitchName(p.Pitch),
			"direction", tr.Direction.String(),
		)
		if err := c.dispatcher.Dispatch(tr); err != nil {
			c.logger.Error("dispatch failed", "pedal", tr.Index, "direction", tr.Direction.String(), "error", err)
		}
	}
}
