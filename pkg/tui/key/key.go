// ABOUTME: Defines the Key type: a tagged event that is either a literal rune or a named key.
// ABOUTME: Navigation keys carry no rune; literal characters never alias navigation values.

package key

import "fmt"

// Key represents one decoded keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // set only for KeyRune events
}

// KeyType enumerates the kinds of key events the editor can receive.
type KeyType int

const (
	KeyRune     KeyType = iota // literal character, including control codes
	KeyUp                      // arrow up
	KeyDown                    // arrow down
	KeyLeft                    // arrow left
	KeyRight                   // arrow right
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyHome                    // Home
	KeyEnd                     // End
	KeyDelete                  // Delete key
	KeyEscape                  // bare or unrecognized escape
)

// Ctrl maps a letter to its control code, e.g. Ctrl('q') == 0x11.
func Ctrl(r rune) rune {
	return r & 0x1f
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyDelete:   "Delete",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Rune < 0x20 {
			return fmt.Sprintf("Ctrl+%c", '@'+k.Rune)
		}
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
