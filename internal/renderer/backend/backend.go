// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"errors"

	"github.com/dshills/candle/internal/renderer/core"
)

// ErrClosed is returned by PollEvent once the backend has shut down or its
// input stream has ended.
var ErrClosed = errors.New("backend closed")

// ErrActive is returned by PrintFinal while the backend still owns the screen.
var ErrActive = errors.New("backend still active")

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants. Control chords use KeyCtrl with the lower-case letter in
// the Rune field, so Ctrl-Q is {Key: KeyCtrl, Rune: 'q'}.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyCtrl     // Control chord (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyCtrl:
		return "Ctrl"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// KeyEvent is a convenience constructor for key events.
func KeyEvent(k Key, r rune) Event {
	return Event{Type: EventKey, Key: k, Rune: r}
}

// FinalPrinter is implemented by backends whose Shutdown wipes the screen,
// such as one drawing on the alternate screen. PrintFinal writes one line
// to the restored terminal and is only valid after Shutdown.
type FinalPrinter interface {
	PrintFinal(text string, style core.Style) error
}

// Backend defines the interface for terminal backends.
//
// Drawing coordinates are 0-based cells. MoveCursor takes 1-based terminal
// coordinates, the way cursor addressing is expressed on the wire.
// Output may be buffered until Flush.
type Backend interface {
	// Init enters raw mode and prepares the screen.
	// Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal. Safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Clear clears the entire screen and homes the write position.
	Clear() error

	// ClearLine blanks one screen row.
	ClearLine(row int) error

	// DrawText writes text starting at the given cell. Text beyond the right
	// edge is clipped. The style applies to this run only.
	DrawText(col, row int, text string, style core.Style) error

	// MoveCursor positions the terminal cursor (1-based).
	MoveCursor(col, row int) error

	// HideCursor hides the terminal cursor.
	HideCursor() error

	// ShowCursor shows the terminal cursor at its last position.
	ShowCursor() error

	// Flush writes all buffered output as one frame.
	Flush() error

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() (Event, error)
}
