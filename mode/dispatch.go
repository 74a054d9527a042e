package mode

import (
	"fmt"

	"github.com/pedalier/pedalier/pedal"
)

// Handlers receives pedal transitions for one output personality. Both
// methods take the pedal index; the handler owns the mapping from index to
// key or note.
type Handlers interface {
	// OnDown is called once when a pedal goes from released to pressed.
	OnDown(index int) error
	// OnUp is called once when a pedal goes from pressed to released.
	OnUp(index int) error
}

// Dispatcher routes transitions to the handler pair bound at startup.
// Bind must happen before the polling loop starts; Dispatch is then called
// from the loop goroutine only, so no locking is done here.
type Dispatcher struct {
	handlers Handlers
}

// Bind installs the handler pair. Binding twice is a programming error and
// is rejected; the mode never changes while the process runs.
func (d *Dispatcher) Bind(h Handlers) error {
	if d.handlers != nil {
		return fmt.Errorf("dispatcher already bound")
	}
	if h == nil {
		return fmt.Errorf("nil handlers")
	}
	d.handlers = h
	return nil
}

// Bound reports whether a handler pair is installed.
func (d *Dispatcher) Bound() bool {
	return d.handlers != nil
}

// Dispatch forwards one transition to the bound handlers. With nothing
// bound the transition is dropped without error; a board without a mode yet
// simply stays silent.
func (d *Dispatcher) Dispatch(t pedal.Transition) error {
	if d.handlers == nil {
		return nil
	}
	switch t.Direction {
	case pedal.Down:
		return d.handlers.OnDown(t.Index)
	case pedal.Up:
		return d.handlers.OnUp(t.Index)
	default:
		return fmt.Errorf("unknown direction %d", t.Direction)
	}
}
