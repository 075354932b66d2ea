package renderer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/candle/internal/engine/cursor"
	"github.com/dshills/candle/internal/engine/document"
	"github.com/dshills/candle/internal/renderer/backend"
	"github.com/dshills/candle/internal/renderer/core"
	"github.com/dshills/candle/internal/renderer/statusline"
	"github.com/dshills/candle/internal/renderer/viewport"
)

// Version is shown in the welcome banner.
const Version = "0.1.0"

// Options configures the renderer.
type Options struct {
	// Welcome is shown a third of the way down an empty document.
	Welcome string

	// Farewell is the only line drawn in the quit frame.
	Farewell string

	// Placeholder is drawn on rows past the end of the document.
	Placeholder string

	// Status bar
	NameCap     int
	StatusStyle core.Style

	FarewellStyle core.Style
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	status := statusline.DefaultOptions()
	return Options{
		Welcome:       "Candle editor -- version " + Version,
		Farewell:      "Quitting Candle, Goodbye.",
		Placeholder:   "",
		NameCap:       status.NameCap,
		StatusStyle:   status.Style,
		FarewellStyle: core.DefaultStyle().WithForeground(core.ColorCyan),
	}
}

// FrameState is everything a frame depends on besides the document.
type FrameState struct {
	// Cursor is the cursor in document coordinates.
	Cursor cursor.Position

	// Offset is the top-left visible document position.
	Offset cursor.Position

	// Size is the full terminal size, status and message rows included.
	Size viewport.Size

	// Quitting selects the farewell frame.
	Quitting bool
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options
	status  *statusline.StatusLine
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		opts:    opts,
		status: statusline.New(statusline.Options{
			NameCap: opts.NameCap,
			Style:   opts.StatusStyle,
		}),
	}
}

// Backend returns the backend frames are drawn on.
func (r *Renderer) Backend() backend.Backend {
	return r.backend
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// FrameError reports the pipeline step that failed.
type FrameError struct {
	Step string
	Err  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

func stepErr(step string, err error) error {
	if err == nil {
		return nil
	}
	return &FrameError{Step: step, Err: err}
}

// Render draws one complete frame and flushes it. The first backend error
// aborts the frame and is returned as a *FrameError.
func (r *Renderer) Render(doc document.TextBuffer, st FrameState) error {
	b := r.backend

	if err := b.HideCursor(); err != nil {
		return stepErr("hide cursor", err)
	}
	if err := b.Clear(); err != nil {
		return stepErr("clear", err)
	}

	if st.Quitting {
		return r.renderFarewell(st.Size.Width)
	}

	usable := st.Size.Usable(viewport.ReservedRows)
	view := viewport.New(usable)
	view.ScrollTo(st.Offset)
	if err := r.renderRows(doc, view); err != nil {
		return err
	}

	name, _ := doc.Name()
	r.status.SetFilename(name)
	r.status.SetTotalLines(doc.Len())
	if err := r.status.Render(b, usable.Height, st.Size.Width); err != nil {
		return stepErr("status bar", err)
	}
	if err := r.status.RenderMessage(b, usable.Height+1); err != nil {
		return stepErr("message bar", err)
	}

	col, row := view.ScreenPosition(st.Cursor)
	if err := b.MoveCursor(col, row); err != nil {
		return stepErr("move cursor", err)
	}
	if err := b.ShowCursor(); err != nil {
		return stepErr("show cursor", err)
	}
	return stepErr("flush", b.Flush())
}

func (r *Renderer) renderFarewell(width int) error {
	b := r.backend
	if err := b.Clear(); err != nil {
		return stepErr("clear", err)
	}
	if err := b.DrawText(0, 0, fit(r.opts.Farewell, width), r.opts.FarewellStyle); err != nil {
		return stepErr("farewell", err)
	}
	return stepErr("flush", b.Flush())
}

// renderRows draws the text area: one row per usable screen line.
func (r *Renderer) renderRows(doc document.TextBuffer, view *viewport.Viewport) error {
	b := r.backend
	width := view.Width()
	start, end := view.ColumnRange()
	bannerRow := view.Height() / 3

	for screenRow := 0; screenRow < view.Height(); screenRow++ {
		if err := b.ClearLine(screenRow); err != nil {
			return stepErr("clear line", err)
		}

		var text string
		if row := doc.Row(view.DocumentRow(screenRow)); row != nil {
			text = row.Render(start, end)
		} else if doc.IsEmpty() && screenRow == bannerRow {
			text = r.banner(width)
		} else {
			text = fit(r.opts.Placeholder, width)
		}

		if text == "" {
			continue
		}
		if err := b.DrawText(0, screenRow, text, core.DefaultStyle()); err != nil {
			return stepErr("draw row", err)
		}
	}
	return nil
}

// banner returns the welcome message centered in width cells.
func (r *Renderer) banner(width int) string {
	msg := fit(r.opts.Welcome, width)
	pad := (width - runewidth.StringWidth(msg)) / 2
	if pad <= 0 {
		return msg
	}
	return strings.Repeat(" ", pad) + msg
}

// fit truncates s to at most width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
