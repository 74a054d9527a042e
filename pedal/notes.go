package pedal

import "fmt"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName renders a MIDI note number in scientific pitch notation
// (60 = C4). Used in diagnostics and the layout printout only.
func PitchName(pitch uint8) string {
	if pitch > 127 {
		return fmt.Sprintf("?%d", pitch)
	}
	return fmt.Sprintf("%s%d", noteNames[pitch%12], int(pitch/12)-1)
}
