// ABOUTME: Streaming decoder turning a raw byte source into Key events.
// ABOUTME: Partial escape sequences degrade to KeyEscape instead of blocking or erroring.

package key

import "fmt"

const asciiEsc = 0x1b

// ByteSource yields one input byte at a time. ok is false when no byte
// arrived within the source's read timeout; err is reserved for hard read
// failures. pkg/tui/terminal.Terminal satisfies this interface.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder reads bytes from a source and assembles them into Key events.
// It holds no state between calls: an escape sequence is consumed whole
// within a single Next call or resolved to a bare KeyEscape.
type Decoder struct {
	src ByteSource
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next blocks until one complete key event is available. Timeouts while
// idle simply poll again; a timeout in the middle of an escape sequence
// resolves the pending bytes to KeyEscape.
func (d *Decoder) Next() (Key, error) {
	for {
		b, ok, err := d.src.ReadByte()
		if err != nil {
			return Key{}, fmt.Errorf("reading key: %w", err)
		}
		if !ok {
			continue
		}
		if b != asciiEsc {
			return Key{Type: KeyRune, Rune: rune(b)}, nil
		}
		return d.decodeEscape()
	}
}

// decodeEscape has consumed ESC and inspects what follows. Anything that
// is not a recognized CSI or SS3 sequence is a bare escape.
func (d *Decoder) decodeEscape() (Key, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("reading escape sequence: %w", err)
	}
	if !ok {
		return Key{Type: KeyEscape}, nil
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		return Key{Type: KeyEscape}, nil
	}
}

// decodeCSI has consumed ESC [ and expects a final letter or a digit
// followed by '~'.
func (d *Decoder) decodeCSI() (Key, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("reading escape sequence: %w", err)
	}
	if !ok {
		return Key{Type: KeyEscape}, nil
	}

	if b >= '0' && b <= '9' {
		return d.decodeTilde(b)
	}

	switch b {
	case 'A':
		return Key{Type: KeyUp}, nil
	case 'B':
		return Key{Type: KeyDown}, nil
	case 'C':
		return Key{Type: KeyRight}, nil
	case 'D':
		return Key{Type: KeyLeft}, nil
	case 'H':
		return Key{Type: KeyHome}, nil
	case 'F':
		return Key{Type: KeyEnd}, nil
	default:
		return Key{Type: KeyEscape}, nil
	}
}

// decodeTilde has consumed ESC [ <digit> and expects the closing '~'.
func (d *Decoder) decodeTilde(digit byte) (Key, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("reading escape sequence: %w", err)
	}
	if !ok || b != '~' {
		return Key{Type: KeyEscape}, nil
	}

	switch digit {
	case '1', '7':
		return Key{Type: KeyHome}, nil
	case '3':
		return Key{Type: KeyDelete}, nil
	case '4', '8':
		return Key{Type: KeyEnd}, nil
	case '5':
		return Key{Type: KeyPageUp}, nil
	case '6':
		return Key{Type: KeyPageDown}, nil
	default:
		return Key{Type: KeyEscape}, nil
	}
}

// decodeSS3 has consumed ESC O, sent by some terminals in application mode.
func (d *Decoder) decodeSS3() (Key, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return Key{}, fmt.Errorf("reading escape sequence: %w", err)
	}
	if !ok {
		return Key{Type: KeyEscape}, nil
	}

	switch b {
	case 'A':
		return Key{Type: KeyUp}, nil
	case 'B':
		return Key{Type: KeyDown}, nil
	case 'C':
		return Key{Type: KeyRight}, nil
	case 'D':
		return Key{Type: KeyLeft}, nil
	case 'H':
		return Key{Type: KeyHome}, nil
	case 'F':
		return Key{Type: KeyEnd}, nil
	default:
		return Key{Type: KeyEscape}, nil
	}
}
