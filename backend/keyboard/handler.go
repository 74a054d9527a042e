// Package keyboard plays pedal transitions as USB HID boot keyboard events
// through a Linux configfs gadget.
package keyboard

import (
	"fmt"
	"log/slog"

	"github.com/pedalier/pedalier/pedal"
)

// Handler maps pedal indexes onto the layout's usage codes and forwards the
// press and release events to an Output. It implements the transition
// handler contract for keyboard mode.
type Handler struct {
	layout pedal.Layout
	out    Output
	logger *slog.Logger
}

// NewHandler builds the keyboard-mode handler for a pedal layout.
func NewHandler(layout pedal.Layout, out Output, logger *slog.Logger) *Handler {
	return &Handler{layout: layout, out: out, logger: logger}
}

func (h *Handler) OnDown(index int) error {
	p := h.layout[index]
	h.logger.Debug("key down", "pedal", index, "key", KeyName(p.Key))
	if err := h.out.Press(p.Key); err != nil {
		return fmt.Errorf("pedal %d down: %w", index, err)
	}
	return nil
}

func (h *Handler) OnUp(index int) error {
	p := h.layout[index]
	h.logger.Debug("key up", "pedal", index, "key", KeyName(p.Key))
	if err := h.out.Release(p.Key); err != nil {
		return fmt.Errorf("pedal %d up: %w", index, err)
	}
	return nil
}
