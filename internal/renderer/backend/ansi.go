package backend

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/dshills/candle/internal/renderer/core"
)

// ErrNotTerminal is returned by ANSI.Init when the input is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// ANSI escape sequences.
const (
	seqClearAll    = "\x1b[2J"
	seqHome        = "\x1b[H"
	seqClearLine   = "\x1b[2K"
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
	seqResetStyle  = "\x1b[0m"
	seqResetColors = "\x1b[39m\x1b[49m"
)

// ANSI implements Backend by writing escape sequences to a raw-mode terminal.
// It is a plain byte stream: no screen model, no diffing. Resizes are not
// reported as events; Size re-reads the window size on every call.
type ANSI struct {
	in     *os.File
	out    *os.File
	keys   *keyReader
	w      *bufio.Writer
	state  *term.State
	width  int
	height int
}

// NewANSI creates a backend reading keys from in and writing to out.
func NewANSI(in, out *os.File) *ANSI {
	return &ANSI{
		in:   in,
		out:  out,
		keys: newKeyReader(in),
		w:    bufio.NewWriterSize(out, 16*1024),
	}
}

// Init puts the input terminal into raw mode and reads the window size.
func (a *ANSI) Init() error {
	fd := int(a.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	w, h, err := term.GetSize(int(a.out.Fd()))
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	a.width, a.height = w, h

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	a.state = state
	return nil
}

// Shutdown resets styling, shows the cursor and restores the terminal mode.
func (a *ANSI) Shutdown() {
	if a.state == nil {
		return
	}
	_, _ = a.w.WriteString(seqResetStyle + seqShowCursor)
	_ = a.w.Flush()
	_ = term.Restore(int(a.in.Fd()), a.state)
	a.state = nil
}

// Size returns the window size, falling back to the last known size when
// the query fails.
func (a *ANSI) Size() (int, int) {
	if w, h, err := term.GetSize(int(a.out.Fd())); err == nil {
		a.width, a.height = w, h
	}
	return a.width, a.height
}

func (a *ANSI) Clear() error {
	_, err := a.w.WriteString(seqClearAll + seqHome)
	return err
}

func (a *ANSI) ClearLine(row int) error {
	_, err := a.w.WriteString(cursorGoto(1, row+1) + seqClearLine)
	return err
}

func (a *ANSI) DrawText(col, row int, text string, style core.Style) error {
	avail := a.width - col
	if avail <= 0 || text == "" {
		return nil
	}
	if runewidth.StringWidth(text) > avail {
		text = runewidth.Truncate(text, avail, "")
	}

	_, err := a.w.WriteString(cursorGoto(col+1, row+1) + styled(text, style))
	return err
}

func (a *ANSI) MoveCursor(col, row int) error {
	_, err := a.w.WriteString(cursorGoto(col, row))
	return err
}

func (a *ANSI) HideCursor() error {
	_, err := a.w.WriteString(seqHideCursor)
	return err
}

func (a *ANSI) ShowCursor() error {
	_, err := a.w.WriteString(seqShowCursor)
	return err
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

func (a *ANSI) PollEvent() (Event, error) {
	return a.keys.next()
}

// cursorGoto returns the CUP sequence for 1-based coordinates.
func cursorGoto(col, row int) string {
	return "\x1b[" + strconv.Itoa(max(1, row)) + ";" + strconv.Itoa(max(1, col)) + "H"
}

// styled wraps text in the SGR sequence for style followed by a reset.
// Default-styled text is returned unchanged.
func styled(text string, style core.Style) string {
	if style.IsDefault() {
		return text
	}
	return sgr(style) + text + seqResetStyle + seqResetColors
}

// sgr returns the select-graphic-rendition sequence for a style.
func sgr(s core.Style) string {
	seq := ""
	if s.Attributes.Has(core.AttrBold) {
		seq += "\x1b[1m"
	}
	if s.Attributes.Has(core.AttrDim) {
		seq += "\x1b[2m"
	}
	if s.Attributes.Has(core.AttrUnderline) {
		seq += "\x1b[4m"
	}
	if s.Attributes.Has(core.AttrReverse) {
		seq += "\x1b[7m"
	}
	if !s.Foreground.IsDefault() {
		seq += fmt.Sprintf("\x1b[38;2;%d;%d;%dm", s.Foreground.R, s.Foreground.G, s.Foreground.B)
	}
	if !s.Background.IsDefault() {
		seq += fmt.Sprintf("\x1b[48;2;%d;%d;%dm", s.Background.R, s.Background.G, s.Background.B)
	}
	return seq
}
