// Package renderer draws frames of a document onto a terminal backend.
//
// A frame is always produced in the same order:
//
//  1. hide the cursor and clear the screen
//  2. on quit, draw the farewell line and stop
//  3. draw each visible text row, the welcome banner or the placeholder
//  4. draw the status bar and the blank message bar
//  5. place and show the cursor, then flush
//
// The renderer holds no document state between frames. Everything it needs
// (cursor, scroll offset, terminal size, quit flag) is passed in a
// FrameState, so a frame is a pure function of its inputs plus the backend.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	err := r.Render(doc, renderer.FrameState{Size: viewport.Size{Width: w, Height: h}})
//
// Subpackages:
//   - backend: terminal abstraction (tcell, raw ANSI, in-memory)
//   - core: cells, styles and colors shared by the backends
//   - statusline: status bar and message bar
//   - viewport: scroll offset tracking
package renderer
