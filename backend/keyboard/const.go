package keyboard

// Modifier key bitmasks
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// HID Usage codes for keyboard keys (USB HID Keyboard/Keypad usage page).
// The subset a pedal map can realistically bind: letters, the number row,
// and the punctuation needed to continue the bottom-row piano convention
// past the letter m.
const (
	// Letters A-Z
	KeyA = 0x04
	KeyB = 0x05
	KeyC = 0x06
	KeyD = 0x07
	KeyE = 0x08
	KeyF = 0x09
	KeyG = 0x0A
	KeyH = 0x0B
	KeyI = 0x0C
	KeyJ = 0x0D
	KeyK = 0x0E
	KeyL = 0x0F
	KeyM = 0x10
	KeyN = 0x11
	KeyO = 0x12
	KeyP = 0x13
	KeyQ = 0x14
	KeyR = 0x15
	KeyS = 0x16
	KeyT = 0x17
	KeyU = 0x18
	KeyV = 0x19
	KeyW = 0x1A
	KeyX = 0x1B
	KeyY = 0x1C
	KeyZ = 0x1D

	// Numbers 1-0 (top row)
	Key1 = 0x1E
	Key2 = 0x1F
	Key3 = 0x20
	Key4 = 0x21
	Key5 = 0x22
	Key6 = 0x23
	Key7 = 0x24
	Key8 = 0x25
	Key9 = 0x26
	Key0 = 0x27

	// Special keys
	KeyEnter      = 0x28
	KeyEscape     = 0x29
	KeyBackspace  = 0x2A
	KeyTab        = 0x2B
	KeySpace      = 0x2C
	KeyMinus      = 0x2D // - and _
	KeyEqual      = 0x2E // = and +
	KeySemicolon  = 0x33 // ; and :
	KeyApostrophe = 0x34 // ' and "
	KeyComma      = 0x36 // , and <
	KeyPeriod     = 0x37 // . and >
	KeySlash      = 0x38 // / and ?
)

// keyNames maps usage codes to the labels used in logs and in the layout
// listing. Letters and digits print as themselves.
var keyNames = map[uint8]string{
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeySpace:      "space",
	KeyMinus:      "-",
	KeyEqual:      "=",
	KeySemicolon:  ";",
	KeyApostrophe: "'",
	KeyComma:      ",",
	KeyPeriod:     ".",
	KeySlash:      "/",
}

// KeyName returns a printable label for a usage code.
func KeyName(code uint8) string {
	if code >= KeyA && code <= KeyZ {
		return string(rune('a' + code - KeyA))
	}
	if code >= Key1 && code <= Key9 {
		return string(rune('1' + code - Key1))
	}
	if code == Key0 {
		return "0"
	}
	if name, ok := keyNames[code]; ok {
		return name
	}
	return hexLabel(code)
}

func hexLabel(code uint8) string {
	const hexdigits = "0123456789abcdef"
	return "0x" + string(hexdigits[code>>4]) + string(hexdigits[code&0x0f])
}
