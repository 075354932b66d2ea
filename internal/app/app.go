// Package app provides the main application structure and coordination
// for the Candle viewer. It owns the terminal backend, the document, the
// cursor navigator, the viewport and the renderer, and runs the
// read-key / update / redraw loop.
package app

import (
	"fmt"

	"github.com/dshills/candle/internal/engine/cursor"
	"github.com/dshills/candle/internal/engine/document"
	"github.com/dshills/candle/internal/renderer"
	"github.com/dshills/candle/internal/renderer/backend"
	"github.com/dshills/candle/internal/renderer/viewport"
)

// Application is the central coordinator for all Candle components.
type Application struct {
	backend  backend.Backend
	doc      document.TextBuffer
	nav      *cursor.Navigator
	view     *viewport.Viewport
	renderer *renderer.Renderer
	logger   *Logger

	running bool
	frames  int
}

// Options configures the application.
type Options struct {
	// Backend is the terminal the application draws on. Required.
	Backend backend.Backend

	// Document is the text to view. Nil means an empty document.
	Document document.TextBuffer

	// Renderer configures frame contents.
	Renderer renderer.Options

	// Logger receives diagnostics. Nil disables logging.
	Logger *Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}

	doc := opts.Document
	if doc == nil {
		doc = document.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger()
	}

	return &Application{
		backend:  opts.Backend,
		doc:      doc,
		nav:      cursor.NewNavigator(),
		view:     viewport.New(viewport.Size{}),
		renderer: renderer.New(opts.Backend, opts.Renderer),
		logger:   logger,
	}, nil
}

// Run initializes the terminal and runs the main loop until the user quits
// or an I/O error occurs. The terminal is restored on every exit path.
func (app *Application) Run() error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	if err := app.session(); err != nil {
		return err
	}
	if app.nav.Quitting() {
		app.printFarewell()
	}
	return nil
}

// session owns the terminal from Init to Shutdown.
func (app *Application) session() error {
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.backend.Shutdown()

	w, h := app.backend.Size()
	app.logger.Info("terminal ready %dx%d", w, h)

	for {
		if err := app.refresh(); err != nil {
			app.clearScreen()
			app.logger.Error("%v", err)
			return err
		}
		if app.nav.Quitting() {
			app.logger.Info("quit after %d frames", app.frames)
			return nil
		}

		ev, err := app.backend.PollEvent()
		if err != nil {
			app.clearScreen()
			opErr := NewOperationError("read key", "", err).WithContext(fmt.Sprintf("frame %d", app.frames))
			app.logger.Error("%v", opErr)
			return opErr
		}
		app.handleEvent(ev)
	}
}

// refresh takes a size snapshot, scrolls the viewport to the cursor and
// draws one frame.
func (app *Application) refresh() error {
	w, h := app.backend.Size()
	size := viewport.Size{Width: w, Height: h}
	app.view.Resize(size.Usable(viewport.ReservedRows))

	pos := app.nav.Position()
	if app.view.Scroll(pos) {
		app.logger.Debug("scrolled to %s", app.view.Offset())
	}

	err := app.renderer.Render(app.doc, renderer.FrameState{
		Cursor:   pos,
		Offset:   app.view.Offset(),
		Size:     size,
		Quitting: app.nav.Quitting(),
	})
	if err != nil {
		return NewOperationError("render", "", err)
	}
	app.frames++
	return nil
}

// handleEvent applies the command bound to a key. Resize events need no
// work: the next refresh reads the new size.
func (app *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		return
	case backend.EventKey:
	default:
		return
	}

	cmd := CommandForEvent(ev)
	if cmd == cursor.CommandNone {
		return
	}
	if app.nav.Apply(cmd, app.doc, app.view.Height()) {
		app.logger.Debug("%s -> %s", cmd, app.nav.Position())
	}
}

// printFarewell repeats the farewell line on the restored terminal for
// backends whose Shutdown erases the last frame.
func (app *Application) printFarewell() {
	p, ok := app.backend.(backend.FinalPrinter)
	if !ok {
		return
	}
	opts := app.renderer.Options()
	if err := p.PrintFinal(opts.Farewell, opts.FarewellStyle); err != nil {
		app.logger.Warn("farewell: %v", err)
	}
}

// clearScreen blanks the terminal before an error exit. Failures are
// ignored since the original error is what gets reported.
func (app *Application) clearScreen() {
	_ = app.backend.Clear()
	_ = app.backend.Flush()
}

// Cursor returns the cursor position.
func (app *Application) Cursor() cursor.Position {
	return app.nav.Position()
}

// Offset returns the scroll offset.
func (app *Application) Offset() cursor.Position {
	return app.view.Offset()
}

// Quitting returns true once a quit command has been applied.
func (app *Application) Quitting() bool {
	return app.nav.Quitting()
}

// Frames returns how many frames have been drawn.
func (app *Application) Frames() int {
	return app.frames
}

// Document returns the document being viewed.
func (app *Application) Document() document.TextBuffer {
	return app.doc
}
