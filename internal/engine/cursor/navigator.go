package cursor

import "github.com/dshills/candle/internal/engine/document"

// State is the top-level editor state driven by navigation commands.
type State uint8

const (
	StateRunning State = iota
	StateQuitting
)

// String returns the state name.
func (s State) String() string {
	if s == StateQuitting {
		return "quitting"
	}
	return "running"
}

// Move applies a single command to pos and returns the new position.
// viewHeight is the number of usable text rows, used by page moves.
// Quit and unknown commands return pos unchanged, clamped.
func Move(pos Position, cmd Command, doc document.TextBuffer, viewHeight int) Position {
	x, y := pos.X, pos.Y
	rows := doc.Len()

	switch cmd {
	case CommandUp:
		y = SaturatingSub(y, 1)
	case CommandDown:
		y = min(y+1, rows)
	case CommandLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = doc.RowLen(y)
		}
	case CommandRight:
		if x < doc.RowLen(y) {
			x++
		} else if y < rows {
			y++
			x = 0
		}
	case CommandPageUp:
		y = SaturatingSub(y, max(0, viewHeight))
	case CommandPageDown:
		y = min(y+max(0, viewHeight), rows)
	case CommandHome:
		x = 0
	case CommandEnd:
		x = doc.RowLen(y)
	}

	return Clamp(NewPosition(x, y), doc)
}

// Clamp limits pos.X to the length of the row at pos.Y.
// Rows that do not exist, including the sentinel row past the end, have
// length 0.
func Clamp(pos Position, doc document.TextBuffer) Position {
	if n := doc.RowLen(pos.Y); pos.X > n {
		pos.X = n
	}
	return pos
}

// Navigator owns the cursor position and the running/quitting state.
type Navigator struct {
	pos   Position
	state State
}

// NewNavigator creates a navigator at the origin in the running state.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Position returns the current cursor position.
func (n *Navigator) Position() Position {
	return n.pos
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// Quitting returns true once a quit command has been applied.
func (n *Navigator) Quitting() bool {
	return n.state == StateQuitting
}

// Apply executes cmd against doc and reports whether the position changed.
// After a quit command every further command is ignored.
func (n *Navigator) Apply(cmd Command, doc document.TextBuffer, viewHeight int) bool {
	if n.state == StateQuitting {
		return false
	}
	if cmd == CommandQuit {
		n.state = StateQuitting
		return false
	}

	next := Move(n.pos, cmd, doc, viewHeight)
	changed := !next.Equals(n.pos)
	n.pos = next
	return changed
}
