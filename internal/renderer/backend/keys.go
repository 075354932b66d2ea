package backend

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// keyReader decodes keys from a raw-mode byte stream.
//
// A lone ESC is reported as soon as nothing follows it in the buffer. Over
// slow links the rest of an escape sequence can arrive in a later read, so
// after a lone ESC a buffered "[" or "O" continues that sequence instead of
// starting a new key.
type keyReader struct {
	r       *bufio.Reader
	escaped bool
}

func newKeyReader(rd io.Reader) *keyReader {
	return &keyReader{r: bufio.NewReader(rd)}
}

// next returns the next key event.
func (k *keyReader) next() (Event, error) {
	if k.escaped {
		k.escaped = false
		if k.resumable() {
			return readEscape(k.r)
		}
	}

	ev, err := readEvent(k.r)
	if err == nil && ev.Key == KeyEscape {
		k.escaped = true
	}
	return ev, err
}

// resumable reports whether the pending input continues an escape sequence.
// It blocks until at least one byte is available, as the next read would.
func (k *keyReader) resumable() bool {
	b, err := k.r.Peek(1)
	if err != nil {
		return false
	}
	return (b[0] == '[' || b[0] == 'O') && k.r.Buffered() > 1
}

// readEvent decodes one key from a raw-mode byte stream.
//
// Recognized escape sequences are the common xterm/vt forms:
// CSI A-D (arrows), CSI H/F and SS3 H/F (Home/End), and CSI n~ for
// Home (1, 7), Delete (3), End (4, 8), PageUp (5) and PageDown (6).
// A lone ESC with nothing buffered after it is the Escape key.
func readEvent(r *bufio.Reader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Event{}, readError(err)
	}

	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == '\r' || b == '\n':
		return KeyEvent(KeyEnter, 0), nil
	case b == '\t':
		return KeyEvent(KeyTab, 0), nil
	case b == 0x7f || b == 0x08:
		return KeyEvent(KeyBackspace, 0), nil
	case b >= 0x01 && b <= 0x1a:
		ev := KeyEvent(KeyCtrl, rune('a'+b-1))
		ev.Mod = ModCtrl
		return ev, nil
	case b < utf8.RuneSelf:
		return KeyEvent(KeyRune, rune(b)), nil
	}

	if err := r.UnreadByte(); err != nil {
		return Event{}, err
	}
	ru, _, err := r.ReadRune()
	if err != nil {
		return Event{}, readError(err)
	}
	return KeyEvent(KeyRune, ru), nil
}

// readEscape decodes the bytes following an ESC.
func readEscape(r *bufio.Reader) (Event, error) {
	if r.Buffered() == 0 {
		return KeyEvent(KeyEscape, 0), nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return KeyEvent(KeyEscape, 0), nil
	}

	switch b {
	case '[':
		return readCSI(r)
	case 'O':
		c, err := r.ReadByte()
		if err != nil {
			return KeyEvent(KeyEscape, 0), nil
		}
		return finalKey(c), nil
	default:
		// Alt chord: ESC followed by the key.
		if err := r.UnreadByte(); err != nil {
			return Event{}, err
		}
		ev, err := readEvent(r)
		ev.Mod |= ModAlt
		return ev, err
	}
}

// readCSI reads parameter bytes up to the final byte of a CSI sequence.
func readCSI(r *bufio.Reader) (Event, error) {
	var params []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			return KeyEvent(KeyNone, 0), nil
		}
		if c >= 0x40 && c <= 0x7e {
			if c == '~' {
				return tildeKey(string(params)), nil
			}
			return finalKey(c), nil
		}
		params = append(params, c)
	}
}

// finalKey maps the final byte of CSI/SS3 sequences.
func finalKey(c byte) Event {
	switch c {
	case 'A':
		return KeyEvent(KeyUp, 0)
	case 'B':
		return KeyEvent(KeyDown, 0)
	case 'C':
		return KeyEvent(KeyRight, 0)
	case 'D':
		return KeyEvent(KeyLeft, 0)
	case 'H':
		return KeyEvent(KeyHome, 0)
	case 'F':
		return KeyEvent(KeyEnd, 0)
	default:
		return KeyEvent(KeyNone, 0)
	}
}

// tildeKey maps the numeric parameter of CSI n~ sequences.
func tildeKey(param string) Event {
	switch param {
	case "1", "7":
		return KeyEvent(KeyHome, 0)
	case "3":
		return KeyEvent(KeyDelete, 0)
	case "4", "8":
		return KeyEvent(KeyEnd, 0)
	case "5":
		return KeyEvent(KeyPageUp, 0)
	case "6":
		return KeyEvent(KeyPageDown, 0)
	default:
		return KeyEvent(KeyNone, 0)
	}
}

// readError converts end of input into ErrClosed.
func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrClosed
	}
	return err
}
