package keyboard

// ReportSize is the length of a boot-protocol keyboard input report.
const ReportSize = 8

// InputState tracks which usage codes are held and renders boot-protocol
// reports. The boot report carries six key slots, so six simultaneous keys
// are the ceiling in keyboard mode; a seventh press is refused rather than
// flagging phantom rollover. Two pedals bound to the same usage code
// collapse into one slot.
type InputState struct {
	Modifiers uint8
	slots     [6]uint8
}

// Press claims a slot for a usage code. Reports whether the code is held
// after the call: pressing a held code is a no-op that reports true, a full
// slot table reports false.
func (st *InputState) Press(code uint8) bool {
	if code == 0 {
		return false
	}
	free := -1
	for i, s := range st.slots {
		if s == code {
			return true
		}
		if s == 0 && free < 0 {
			free = i
		}
	}
	if free < 0 {
		return false
	}
	st.slots[free] = code
	return true
}

// Release clears the slot holding a usage code. Releasing a code that is not
// held does nothing.
func (st *InputState) Release(code uint8) {
	for i, s := range st.slots {
		if s == code {
			st.slots[i] = 0
		}
	}
}

// Held reports whether a usage code occupies a slot.
func (st *InputState) Held(code uint8) bool {
	for _, s := range st.slots {
		if s == code && code != 0 {
			return true
		}
	}
	return false
}

// BuildReport encodes the state into the 8-byte boot keyboard report.
//
// Report layout (8 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved (0x00)
//	Bytes 2-7: Key slots
func (st InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = st.Modifiers
	b[1] = 0x00 // Reserved
	copy(b[2:], st.slots[:])
	return b
}
