package keyboard

import (
	"fmt"
	"io"

	"github.com/pedalier/pedalier/internal/log"
)

// Output accepts key state changes and delivers them to the host.
type Output interface {
	// Press reports a usage code going down.
	Press(code uint8) error
	// Release reports a usage code coming up.
	Release(code uint8) error
}

// Sender renders key state changes into boot reports and writes each one to
// the underlying writer, normally the HID gadget device node. Every written
// report is also handed to the raw logger.
type Sender struct {
	w     io.Writer
	raw   log.RawLogger
	state InputState
}

// NewSender wraps a report writer. rawLogger may be a no-op logger but not
// nil.
func NewSender(w io.Writer, rawLogger log.RawLogger) *Sender {
	return &Sender{w: w, raw: rawLogger}
}

func (s *Sender) Press(code uint8) error {
	if !s.state.Press(code) {
		return fmt.Errorf("keyboard: no free slot for key %s, press dropped", KeyName(code))
	}
	return s.flush()
}

func (s *Sender) Release(code uint8) error {
	s.state.Release(code)
	return s.flush()
}

// ReleaseAll clears every slot and sends the empty report, so no key is left
// hanging on the host when the process shuts down mid-press.
func (s *Sender) ReleaseAll() error {
	s.state = InputState{}
	return s.flush()
}

func (s *Sender) flush() error {
	report := s.state.BuildReport()
	if _, err := s.w.Write(report); err != nil {
		return fmt.Errorf("keyboard: writing report: %w", err)
	}
	s.raw.Log("hid", report)
	return nil
}
