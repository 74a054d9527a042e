package midiout

import (
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2"

	"github.com/pedalier/pedalier/internal/lamp"
	"github.com/pedalier/pedalier/pedal"
)

// Options carry the note parameters for MIDI mode. Channel is the human
// numbering 1-16; Velocity applies to every note-on, since pedal switches
// have no velocity sensing.
type Options struct {
	Channel  uint8
	Velocity uint8
}

// Handler maps pedal indexes onto the layout's pitches and sends note-on and
// note-off messages. Each send is bracketed by the panel's activity flicker.
// It implements the transition handler contract for MIDI mode.
type Handler struct {
	layout   pedal.Layout
	out      Output
	channel  uint8 // wire numbering 0-15
	velocity uint8
	panel    *lamp.Panel
	logger   *slog.Logger
}

// NewHandler builds the MIDI-mode handler for a pedal layout. panel may be
// nil on boards without lamps.
func NewHandler(layout pedal.Layout, out Output, opts Options, panel *lamp.Panel, logger *slog.Logger) (*Handler, error) {
	if opts.Channel < 1 || opts.Channel > 16 {
		return nil, fmt.Errorf("midi: channel %d out of range 1-16", opts.Channel)
	}
	if opts.Velocity < 1 || opts.Velocity > 127 {
		return nil, fmt.Errorf("midi: velocity %d out of range 1-127", opts.Velocity)
	}
	return &Handler{
		layout:   layout,
		out:      out,
		channel:  opts.Channel - 1,
		velocity: opts.Velocity,
		panel:    panel,
		logger:   logger,
	}, nil
}

func (h *Handler) OnDown(index int) error {
	p := h.layout[index]
	h.logger.Debug("note on", "pedal", index, "note", pedal.PitchName(p.Pitch), "velocity", h.velocity)
	err := h.panel.Activity(func() error {
		return h.out.Send(midi.NoteOn(h.channel, p.Pitch, h.velocity))
	})
	if err != nil {
		return fmt.Errorf("pedal %d down: %w", index, err)
	}
	return nil
}

func (h *Handler) OnUp(index int) error {
	p := h.layout[index]
	h.logger.Debug("note off", "pedal", index, "note", pedal.PitchName(p.Pitch))
	err := h.panel.Activity(func() error {
		return h.out.Send(midi.NoteOff(h.channel, p.Pitch))
	})
	if err != nil {
		return fmt.Errorf("pedal %d up: %w", index, err)
	}
	return nil
}

// Silence sends All Notes Off on the handler's channel so nothing rings past
// shutdown when a pedal is still down.
func (h *Handler) Silence() error {
	h.logger.Debug("all notes off", "channel", h.channel+1)
	return h.out.Send(midi.ControlChange(h.channel, 123, 0))
}
