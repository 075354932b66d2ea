package backend

import (
	"io"
	"os"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/candle/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
// tcell draws on the alternate screen, so Shutdown discards the last frame;
// PrintFinal writes to the normal screen afterwards.
type Terminal struct {
	screen        tcell.Screen
	out           io.Writer
	cursorX       int
	cursorY       int
	cursorVisible bool
	closed        bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	t := newTerminalWithScreen(screen)
	t.out = os.Stdout
	return t, nil
}

// newTerminalWithScreen wraps an existing screen, such as a simulation
// screen in tests.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, out: io.Discard, cursorX: 1, cursorY: 1}
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}

// PrintFinal writes a styled line to the normal screen after Shutdown.
func (t *Terminal) PrintFinal(text string, style core.Style) error {
	if !t.closed {
		return ErrActive
	}
	_, err := io.WriteString(t.out, styled(text, style)+"\n")
	return err
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) Clear() error {
	t.screen.Clear()
	t.cursorX, t.cursorY = 1, 1
	return nil
}

func (t *Terminal) ClearLine(row int) error {
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
	return nil
}

func (t *Terminal) DrawText(col, row int, text string, style core.Style) error {
	width, _ := t.screen.Size()
	ts := convertStyle(style)

	x := col
	state := -1
	for len(text) > 0 && x < width {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		t.screen.SetContent(x, row, runes[0], runes[1:], ts)
		x += core.ClusterWidth(cluster)
	}
	return nil
}

func (t *Terminal) MoveCursor(col, row int) error {
	t.cursorX, t.cursorY = col, row
	if t.cursorVisible {
		t.screen.ShowCursor(col-1, row-1)
	}
	return nil
}

func (t *Terminal) HideCursor() error {
	t.cursorVisible = false
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) ShowCursor() error {
	t.cursorVisible = true
	t.screen.ShowCursor(t.cursorX-1, t.cursorY-1)
	return nil
}

func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) PollEvent() (Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, ErrClosed
		}
		if converted := convertEvent(ev); converted.Type != EventNone {
			return converted, nil
		}
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// convertKeyEvent maps a tcell key event, folding both the legacy control
// key codes and rune+Ctrl reporting into KeyCtrl.
func convertKeyEvent(e *tcell.EventKey) Event {
	mod := convertMod(e.Modifiers())

	switch k := e.Key(); k {
	case tcell.KeyRune:
		if mod.Has(ModCtrl) && e.Rune() < unicode.MaxASCII {
			return Event{Type: EventKey, Key: KeyCtrl, Rune: unicode.ToLower(e.Rune()), Mod: mod}
		}
		return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune(), Mod: mod}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape, Mod: mod}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter, Mod: mod}
	case tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return Event{Type: EventKey, Key: KeyDelete, Mod: mod}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd, Mod: mod}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp, Mod: mod}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown, Mod: mod}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp, Mod: mod}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight, Mod: mod}
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return Event{Type: EventKey, Key: KeyCtrl, Rune: 'a' + rune(k-tcell.KeyCtrlA), Mod: mod | ModCtrl}
		}
		return Event{Type: EventKey, Key: KeyNone, Mod: mod}
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	return result
}
