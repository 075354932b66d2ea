package statusline

import (
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/candle/internal/renderer/backend"
	"github.com/dshills/candle/internal/renderer/core"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		lines    int
		width    int
		want     string
	}{
		{"unnamed", "", 0, 20, "[No Name] - 0 lines "},
		{"named", "main.go", 42, 20, "main.go - 42 lines  "},
		{"exact", "a", 1, 11, "a - 1 lines"},
		{"truncated", "main.go", 42, 10, "main.go - "},
		{"name cap", "abcdefghijklmnopqrstuvwxyz.txt", 3, 40, "abcdefghijklmnopqrst - 3 lines" + strings.Repeat(" ", 10)},
		{"zero width", "x", 1, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultOptions())
			s.SetFilename(tt.filename)
			s.SetTotalLines(tt.lines)

			if got := s.Text(tt.width); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTextWidthAlwaysExact(t *testing.T) {
	s := New(DefaultOptions())
	s.SetFilename("日本語のファイル名.txt")
	s.SetTotalLines(12345)

	for width := 1; width <= 60; width++ {
		if got := runewidth.StringWidth(s.Text(width)); got != width {
			t.Errorf("width %d: text is %d cells wide", width, got)
		}
	}
}

func TestTextNoNameCap(t *testing.T) {
	opts := DefaultOptions()
	opts.NameCap = 0
	s := New(opts)
	s.SetFilename("a-rather-long-file-name.txt")
	s.SetTotalLines(1)

	if got := strings.TrimRight(s.Text(60), " "); got != "a-rather-long-file-name.txt - 1 lines" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestRender(t *testing.T) {
	b := backend.NewNullBackend(30, 5)
	s := New(DefaultOptions())
	s.SetTotalLines(7)

	if err := s.Render(b, 3, 30); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := b.Line(3); got != "[No Name] - 7 lines"+strings.Repeat(" ", 11) {
		t.Errorf("unexpected status line %q", got)
	}

	want := core.DefaultStyle().WithBackground(DefaultBackground).WithForeground(DefaultForeground)
	if !b.CellAt(29, 3).Style.Equals(want) {
		t.Error("padding should carry the status style")
	}

	ops := b.Ops()
	if len(ops) != 2 || ops[0] != "clear-line:3" || ops[1] != "draw:3" {
		t.Errorf("expected clear then draw, got %v", ops)
	}
}

func TestRenderError(t *testing.T) {
	b := backend.NewNullBackend(30, 5)
	boom := errors.New("boom")
	b.FailOn("clear-line", boom)

	s := New(DefaultOptions())
	if err := s.Render(b, 3, 30); !errors.Is(err, boom) {
		t.Errorf("expected injected error, got %v", err)
	}
	for _, op := range b.Ops() {
		if op == "draw:3" {
			t.Error("nothing should be drawn after a failed clear")
		}
	}
}

func TestRenderMessage(t *testing.T) {
	b := backend.NewNullBackend(10, 5)
	b.DrawText(0, 4, "leftover", core.DefaultStyle())

	s := New(DefaultOptions())
	if err := s.RenderMessage(b, 4); err != nil {
		t.Fatalf("RenderMessage failed: %v", err)
	}
	if got := b.TrimmedLine(4); got != "" {
		t.Errorf("expected blank message bar, got %q", got)
	}
}
