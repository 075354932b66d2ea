// Package statusline provides the status bar and message bar drawn below
// the text area.
package statusline

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/candle/internal/renderer/backend"
	"github.com/dshills/candle/internal/renderer/core"
)

// NoName is shown in place of the file name for unnamed documents.
const NoName = "[No Name]"

// DefaultNameCap is the maximum display width of the file name.
const DefaultNameCap = 20

// Default status bar colors.
var (
	DefaultBackground = core.ColorFromRGB(0xef, 0xef, 0xef)
	DefaultForeground = core.ColorFromRGB(0x3f, 0x3f, 0x3f)
)

// Options configures a StatusLine.
type Options struct {
	// NameCap limits the file name to this many cells. Zero or less means
	// no limit.
	NameCap int

	// Style is applied to the whole status bar.
	Style core.Style
}

// DefaultOptions returns the default status bar options.
func DefaultOptions() Options {
	return Options{
		NameCap: DefaultNameCap,
		Style: core.DefaultStyle().
			WithBackground(DefaultBackground).
			WithForeground(DefaultForeground),
	}
}

// StatusLine renders the file name and line count bar.
type StatusLine struct {
	filename   string
	totalLines int
	opts       Options
}

// New creates a new status line.
func New(opts Options) *StatusLine {
	return &StatusLine{opts: opts}
}

// SetFilename updates the displayed filename. Empty means unnamed.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = max(0, total)
}

// Style returns the status bar style.
func (s *StatusLine) Style() core.Style {
	return s.opts.Style
}

// Text returns the status bar content, padded or truncated to exactly width
// cells.
func (s *StatusLine) Text(width int) string {
	if width <= 0 {
		return ""
	}

	name := s.filename
	if name == "" {
		name = NoName
	}
	if s.opts.NameCap > 0 && runewidth.StringWidth(name) > s.opts.NameCap {
		name = runewidth.Truncate(name, s.opts.NameCap, "")
	}

	text := name + " - " + strconv.Itoa(s.totalLines) + " lines"
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "")
	}
	return runewidth.FillRight(text, width)
}

// Render clears the given row and draws the status bar on it.
func (s *StatusLine) Render(b backend.Backend, row, width int) error {
	if err := b.ClearLine(row); err != nil {
		return err
	}
	return b.DrawText(0, row, s.Text(width), s.opts.Style)
}

// RenderMessage clears the message bar row. The message bar is always blank.
func (s *StatusLine) RenderMessage(b backend.Backend, row int) error {
	return b.ClearLine(row)
}
