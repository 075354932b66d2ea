package cursor

import "fmt"

// Position is a document coordinate.
// X is a grapheme-cluster column within a row, Y is a row index.
// Neither coordinate is ever negative.
type Position struct {
	X int
	Y int
}

// NewPosition creates a position, clamping negative coordinates to 0.
func NewPosition(x, y int) Position {
	return Position{X: max(0, x), Y: max(0, y)}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Equals returns true if two positions are the same.
func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// SaturatingSub returns a - b, or 0 if b > a.
func SaturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
