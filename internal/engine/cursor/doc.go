// Package cursor provides cursor positioning and navigation over a document.
//
// The cursor package handles:
//
//   - Position: a document coordinate (grapheme column, row index)
//   - Command: the closed set of navigation commands
//   - Move: the pure transition function for a single command
//   - Navigator: the stateful cursor owned by the editor, including the
//     running/quitting state
//
// Navigation Model:
//
// Columns are grapheme-cluster indices. Left at the start of a row wraps to
// the end of the previous row and Right at the end of a row wraps to the
// start of the next. The cursor may move one row past the last row of the
// document; that sentinel row has length 0. After every move the column is
// clamped to the length of the row the cursor addresses:
//
//	nav := cursor.NewNavigator()
//	nav.Apply(cursor.CommandDown, doc, viewHeight)
//	nav.Apply(cursor.CommandEnd, doc, viewHeight)
//	pos := nav.Position()
//
// Thread Safety:
//
// Position is an immutable value type. Navigator is not safe for
// concurrent use; it is owned by the single editor loop.
package cursor
