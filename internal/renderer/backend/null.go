package backend

import (
	"fmt"
	"strings"

	"github.com/dshills/candle/internal/renderer/core"
)

// NullBackend is an in-memory backend for testing.
// It keeps a cell grid, records every operation in order and can be told to
// fail a given operation.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	initialized   bool
	shutdown      bool
	flushes       int
	ops           []string
	final         []string
	failures      map[string]error
	events        []Event
}

// NewNullBackend creates a null backend with the given dimensions.
// Negative dimensions are treated as zero.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:         max(0, width),
		height:        max(0, height),
		cursorX:       1,
		cursorY:       1,
		cursorVisible: true,
		failures:      make(map[string]error),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

// record logs op and returns the injected failure for its kind, if any.
func (b *NullBackend) record(kind, op string) error {
	b.ops = append(b.ops, op)
	return b.failures[kind]
}

func (b *NullBackend) Init() error {
	if err := b.record("init", "init"); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.ops = append(b.ops, "shutdown")
	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) Clear() error {
	if err := b.record("clear", "clear"); err != nil {
		return err
	}
	for y := range b.cells {
		b.clearRow(y)
	}
	b.cursorX, b.cursorY = 1, 1
	return nil
}

func (b *NullBackend) ClearLine(row int) error {
	if err := b.record("clear-line", fmt.Sprintf("clear-line:%d", row)); err != nil {
		return err
	}
	if row >= 0 && row < b.height {
		b.clearRow(row)
	}
	return nil
}

func (b *NullBackend) clearRow(y int) {
	for x := range b.cells[y] {
		b.cells[y][x] = core.EmptyCell()
	}
}

func (b *NullBackend) DrawText(col, row int, text string, style core.Style) error {
	if err := b.record("draw", fmt.Sprintf("draw:%d", row)); err != nil {
		return err
	}
	if row < 0 || row >= b.height {
		return nil
	}
	x := col
	for _, cell := range core.CellsFromString(text, style) {
		if x >= b.width {
			break
		}
		if x >= 0 {
			b.cells[row][x] = cell
		}
		x++
	}
	return nil
}

func (b *NullBackend) MoveCursor(col, row int) error {
	if err := b.record("move-cursor", fmt.Sprintf("move-cursor:%d,%d", col, row)); err != nil {
		return err
	}
	b.cursorX, b.cursorY = col, row
	return nil
}

func (b *NullBackend) HideCursor() error {
	if err := b.record("hide-cursor", "hide-cursor"); err != nil {
		return err
	}
	b.cursorVisible = false
	return nil
}

func (b *NullBackend) ShowCursor() error {
	if err := b.record("show-cursor", "show-cursor"); err != nil {
		return err
	}
	b.cursorVisible = true
	return nil
}

func (b *NullBackend) Flush() error {
	if err := b.record("flush", "flush"); err != nil {
		return err
	}
	b.flushes++
	return nil
}

// PrintFinal records a line written after Shutdown.
func (b *NullBackend) PrintFinal(text string, style core.Style) error {
	if err := b.record("print-final", "print-final"); err != nil {
		return err
	}
	if !b.shutdown {
		return ErrActive
	}
	b.final = append(b.final, text)
	return nil
}

// PollEvent returns queued events in order, then ErrClosed.
func (b *NullBackend) PollEvent() (Event, error) {
	if err := b.failures["poll"]; err != nil {
		return Event{}, err
	}
	if len(b.events) == 0 {
		return Event{}, ErrClosed
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.width, b.height = max(0, ev.Width), max(0, ev.Height)
		b.allocate()
	}
	return ev, nil
}

// PostEvent queues an event for PollEvent.
func (b *NullBackend) PostEvent(events ...Event) {
	b.events = append(b.events, events...)
}

// FailOn makes every later operation of the given kind return err.
// Kinds: init, clear, clear-line, draw, move-cursor, hide-cursor,
// show-cursor, flush, poll, print-final.
func (b *NullBackend) FailOn(kind string, err error) {
	b.failures[kind] = err
}

// Ops returns the recorded operations.
func (b *NullBackend) Ops() []string {
	return append([]string(nil), b.ops...)
}

// ResetOps clears the operation log.
func (b *NullBackend) ResetOps() {
	b.ops = b.ops[:0]
}

// Line returns the text of a screen row including trailing blanks.
func (b *NullBackend) Line(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	return core.StringFromCells(b.cells[row])
}

// TrimmedLine returns the text of a screen row without trailing blanks.
func (b *NullBackend) TrimmedLine(row int) string {
	return strings.TrimRight(b.Line(row), " ")
}

// CellAt returns the cell at the given position.
func (b *NullBackend) CellAt(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// CursorPosition returns the 1-based cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Flushes returns how many frames were flushed.
func (b *NullBackend) Flushes() int {
	return b.flushes
}

// Initialized reports whether Init succeeded.
func (b *NullBackend) Initialized() bool {
	return b.initialized
}

// Final returns the lines passed to PrintFinal.
func (b *NullBackend) Final() []string {
	return append([]string(nil), b.final...)
}

// IsShutdown reports whether Shutdown was called.
func (b *NullBackend) IsShutdown() bool {
	return b.shutdown
}
