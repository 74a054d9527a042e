package pedal

// Direction of a pedal edge.
type Direction int

const (
	// Down means the pedal went from released to pressed.
	Down Direction = iota
	// Up means the pedal went from pressed to released.
	Up
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Transition is one observed pedal edge. It is produced by the scanner,
// handed to the dispatcher and never stored.
type Transition struct {
	Index     int
	Direction Direction
}
