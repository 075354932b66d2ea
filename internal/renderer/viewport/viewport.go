// Package viewport provides the scroll engine that keeps the cursor visible.
package viewport

import "github.com/dshills/candle/internal/engine/cursor"

// ReservedRows is the number of terminal rows taken by the status and
// message lines.
const ReservedRows = 2

// Size is a rectangle of terminal cells.
type Size struct {
	Width  int
	Height int
}

// Usable returns the text area left after reserving rows at the bottom.
// Neither dimension goes below zero.
func (s Size) Usable(reserved int) Size {
	return Size{
		Width:  max(0, s.Width),
		Height: cursor.SaturatingSub(s.Height, reserved),
	}
}

// Viewport tracks the top-left document coordinate shown at the top-left
// of the text area.
type Viewport struct {
	offset cursor.Position
	size   Size
}

// New creates a viewport with the given usable text area.
func New(size Size) *Viewport {
	v := &Viewport{}
	v.Resize(size)
	return v
}

// Offset returns the first visible document coordinate.
func (v *Viewport) Offset() cursor.Position {
	return v.offset
}

// Size returns the usable text area.
func (v *Viewport) Size() Size {
	return v.size
}

// Width returns the number of visible columns.
func (v *Viewport) Width() int {
	return v.size.Width
}

// Height returns the number of visible rows.
func (v *Viewport) Height() int {
	return v.size.Height
}

// Resize updates the usable text area. The offset is kept; the next Scroll
// brings the cursor back into view.
func (v *Viewport) Resize(size Size) {
	v.size = Size{Width: max(0, size.Width), Height: max(0, size.Height)}
}

// ScrollTo places the top-left of the text area at offset.
func (v *Viewport) ScrollTo(offset cursor.Position) {
	v.offset = offset
}

// Scroll adjusts the offset by the minimal amount needed to make pos
// visible and reports whether the offset changed. It never re-centers and
// never scrolls past the cursor.
func (v *Viewport) Scroll(pos cursor.Position) bool {
	prev := v.offset
	v.offset.Y = scrollAxis(pos.Y, v.offset.Y, v.size.Height)
	v.offset.X = scrollAxis(pos.X, v.offset.X, v.size.Width)
	return !prev.Equals(v.offset)
}

// scrollAxis applies the reveal rule on one axis.
// A zero extent pins the offset to the cursor.
func scrollAxis(p, off, extent int) int {
	if extent <= 0 || p < off {
		return p
	}
	if p >= off+extent {
		return cursor.SaturatingSub(p, extent) + 1
	}
	return off
}

// DocumentRow converts a screen row of the text area to a document row.
func (v *Viewport) DocumentRow(screenRow int) int {
	return v.offset.Y + screenRow
}

// ColumnRange returns the document columns [start, end) that fit the width.
func (v *Viewport) ColumnRange() (start, end int) {
	return v.offset.X, v.offset.X + v.size.Width
}

// ScreenPosition converts a document coordinate to a 1-based terminal cell
// as used by cursor addressing.
func (v *Viewport) ScreenPosition(pos cursor.Position) (col, row int) {
	return cursor.SaturatingSub(pos.X, v.offset.X) + 1, cursor.SaturatingSub(pos.Y, v.offset.Y) + 1
}
