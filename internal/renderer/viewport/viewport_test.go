package viewport

import (
	"math/rand/v2"
	"testing"

	"github.com/dshills/candle/internal/engine/cursor"
)

func TestSizeUsable(t *testing.T) {
	tests := []struct {
		in   Size
		want Size
	}{
		{Size{80, 24}, Size{80, 22}},
		{Size{10, 2}, Size{10, 0}},
		{Size{10, 1}, Size{10, 0}},
		{Size{0, 0}, Size{0, 0}},
	}

	for _, tt := range tests {
		if got := tt.in.Usable(ReservedRows); got != tt.want {
			t.Errorf("%+v.Usable(%d): expected %+v, got %+v", tt.in, ReservedRows, tt.want, got)
		}
	}
}

func TestNewViewport(t *testing.T) {
	v := New(Size{80, 22})

	if v.Width() != 80 {
		t.Errorf("expected width 80, got %d", v.Width())
	}
	if v.Height() != 22 {
		t.Errorf("expected height 22, got %d", v.Height())
	}
	if !v.Offset().Equals(cursor.Position{}) {
		t.Errorf("expected offset (0,0), got %s", v.Offset())
	}
}

func TestScrollDown(t *testing.T) {
	v := New(Size{80, 22})

	if v.Scroll(cursor.Position{X: 0, Y: 21}) {
		t.Error("last visible row should not scroll")
	}

	if !v.Scroll(cursor.Position{X: 0, Y: 30}) {
		t.Fatal("row 30 should scroll")
	}
	if got := v.Offset().Y; got != 9 {
		t.Errorf("expected offset.y 9, got %d", got)
	}
}

func TestScrollUp(t *testing.T) {
	v := New(Size{80, 22})
	v.Scroll(cursor.Position{Y: 50})

	v.Scroll(cursor.Position{Y: 40})
	if got := v.Offset().Y; got != 29 {
		t.Errorf("row 40 still visible, expected offset.y 29, got %d", got)
	}

	v.Scroll(cursor.Position{Y: 10})
	if got := v.Offset().Y; got != 10 {
		t.Errorf("expected offset.y 10 after scrolling up, got %d", got)
	}
}

func TestScrollHorizontal(t *testing.T) {
	v := New(Size{20, 10})

	v.Scroll(cursor.Position{X: 25})
	if got := v.Offset().X; got != 6 {
		t.Errorf("expected offset.x 6, got %d", got)
	}

	v.Scroll(cursor.Position{X: 3})
	if got := v.Offset().X; got != 3 {
		t.Errorf("expected offset.x 3, got %d", got)
	}
}

func TestScrollZeroArea(t *testing.T) {
	v := New(Size{0, 0})
	v.Scroll(cursor.Position{X: 4, Y: 7})

	if !v.Offset().Equals(cursor.Position{X: 4, Y: 7}) {
		t.Errorf("zero area should pin offset to cursor, got %s", v.Offset())
	}
}

func TestScrollInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	v := New(Size{17, 9})

	for i := 0; i < 2000; i++ {
		if rng.IntN(50) == 0 {
			v.Resize(Size{1 + rng.IntN(40), 1 + rng.IntN(30)})
		}
		pos := cursor.Position{X: rng.IntN(200), Y: rng.IntN(500)}
		v.Scroll(pos)

		off := v.Offset()
		if !(off.Y <= pos.Y && pos.Y < off.Y+v.Height()) {
			t.Fatalf("step %d: row %d outside [%d, %d)", i, pos.Y, off.Y, off.Y+v.Height())
		}
		if !(off.X <= pos.X && pos.X < off.X+v.Width()) {
			t.Fatalf("step %d: column %d outside [%d, %d)", i, pos.X, off.X, off.X+v.Width())
		}
	}
}

func TestScreenPosition(t *testing.T) {
	v := New(Size{80, 22})
	v.Scroll(cursor.Position{X: 100, Y: 30})

	col, row := v.ScreenPosition(cursor.Position{X: 100, Y: 30})
	if col != 80 || row != 22 {
		t.Errorf("expected (80, 22), got (%d, %d)", col, row)
	}

	start, end := v.ColumnRange()
	if start != 21 || end != 101 {
		t.Errorf("expected column range [21, 101), got [%d, %d)", start, end)
	}
	if got := v.DocumentRow(0); got != 9 {
		t.Errorf("expected first document row 9, got %d", got)
	}
}
