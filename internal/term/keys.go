package term

import "unicode/utf8"

// Key identifies a decoded key press.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyCtrlD
	KeyBackspace
	KeyTab
)

// KeyEvent is one decoded key press. Rune is set only for KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Is reports whether the event is the given special key.
func (e KeyEvent) Is(key Key) bool {
	return e.Key == key
}

// Char returns the rune of a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// ParseKeys decodes raw terminal input into key events.
//
// Escape sequences (arrows, function keys) are collapsed into a single
// KeyEscape so they never masquerade as printable keys; the demo has no use
// for them.
func ParseKeys(data []byte) []KeyEvent {
	var events []KeyEvent
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == 0x1b:
			events = append(events, KeyEvent{Key: KeyEscape})
			i += escapeLen(data[i:])
			continue
		case b == 0x7f:
			events = append(events, KeyEvent{Key: KeyBackspace})
		case b < 0x20:
			if key := controlToKey(b); key != KeyNone {
				events = append(events, KeyEvent{Key: key})
			}
		default:
			r, size := utf8.DecodeRune(data[i:])
			events = append(events, KeyEvent{Key: KeyRune, Rune: r})
			i += size
			continue
		}
		i++
	}
	return events
}

// escapeLen returns how many bytes the escape sequence at the start of data
// spans: CSI and SS3 sequences up to their final byte, Alt+key as two bytes,
// and a lone ESC as one.
func escapeLen(data []byte) int {
	if len(data) < 2 {
		return 1
	}
	switch data[1] {
	case '[':
		for j := 2; j < len(data); j++ {
			if data[j] >= 0x40 && data[j] <= 0x7e {
				return j + 1
			}
		}
		return len(data)
	case 'O':
		if len(data) >= 3 {
			return 3
		}
		return len(data)
	case 0x1b:
		return 1
	default:
		return 2
	}
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x03:
		return KeyCtrlC
	case 0x04:
		return KeyCtrlD
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a, 0x0d:
		return KeyEnter
	default:
		return KeyNone
	}
}
