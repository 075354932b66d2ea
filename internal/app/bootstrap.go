package app

import (
	"fmt"
	"os"

	"github.com/dshills/candle/internal/config"
	"github.com/dshills/candle/internal/engine/document"
	"github.com/dshills/candle/internal/renderer"
	"github.com/dshills/candle/internal/renderer/backend"
	"github.com/dshills/candle/internal/renderer/core"
)

// Setup describes how to assemble an Application from configuration.
type Setup struct {
	// ConfigPath is the TOML config file. Empty uses config.DefaultPath.
	ConfigPath string

	// File is the document to open. Empty opens an empty document.
	File string

	// Overrides are command-line settings keyed by config path. They take
	// precedence over the file and the environment.
	Overrides map[string]any

	// Backend, when set, is used instead of the configured terminal.
	Backend backend.Backend

	// In and Out are the terminal streams for the ANSI backend.
	// They default to os.Stdin and os.Stdout.
	In, Out *os.File
}

// Bootstrap loads configuration, opens the log and the document, and
// creates the terminal backend. The returned cleanup function closes the
// log and must be called after Run returns.
func Bootstrap(s Setup) (*Application, func(), error) {
	opts := []config.Option{}
	if s.ConfigPath != "" {
		opts = append(opts, config.WithFile(s.ConfigPath))
	}
	cfg := config.New(opts...)
	for path, value := range s.Overrides {
		if err := cfg.Set(path, value); err != nil {
			return nil, nil, &InitError{Component: "config", Err: fmt.Errorf("%s: %w", path, err)}
		}
	}
	if err := cfg.Load(); err != nil {
		return nil, nil, &InitError{Component: "config", Err: err}
	}

	logging := cfg.Logging()
	logger, closeLog, err := OpenLogger(logging.File, ParseLogLevel(logging.Level))
	if err != nil {
		return nil, nil, &InitError{Component: "logging", Err: err}
	}
	cleanup := func() { _ = closeLog() }

	if path, found := cfg.File(); found {
		logger.Info("loaded config %s", path)
	}

	doc, err := document.OpenOrDefault(s.File)
	if err != nil {
		logger.WithComponent("document").Warn("%v", err)
	}

	rendererOpts, err := RendererOptions(cfg.UI())
	if err != nil {
		cleanup()
		return nil, nil, &InitError{Component: "config", Err: err}
	}

	b := s.Backend
	if b == nil {
		name := cfg.Terminal().Backend
		b, err = NewBackend(name, s.In, s.Out)
		if err != nil {
			cleanup()
			return nil, nil, &InitError{Component: "terminal", Err: err}
		}
		logger.WithFields(map[string]any{
			"backend": name,
			"source":  cfg.Source("terminal.backend"),
		}).Info("terminal backend selected")
	}

	app, err := New(Options{
		Backend:  b,
		Document: doc,
		Renderer: rendererOpts,
		Logger:   logger,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return app, cleanup, nil
}

// NewBackend creates the named terminal backend.
func NewBackend(name string, in, out *os.File) (backend.Backend, error) {
	switch name {
	case config.BackendTcell:
		t, err := backend.NewTerminal()
		if err != nil {
			return nil, err
		}
		return t, nil
	case config.BackendANSI:
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return backend.NewANSI(in, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// RendererOptions converts display settings into renderer options.
// Empty welcome and farewell texts keep the built-in ones.
func RendererOptions(ui config.UIConfig) (renderer.Options, error) {
	opts := renderer.DefaultOptions()

	bg, err := core.ColorFromHex(ui.StatusBackground)
	if err != nil {
		return opts, fmt.Errorf("ui.statusBackground: %w", err)
	}
	fg, err := core.ColorFromHex(ui.StatusForeground)
	if err != nil {
		return opts, fmt.Errorf("ui.statusForeground: %w", err)
	}
	opts.StatusStyle = core.DefaultStyle().WithBackground(bg).WithForeground(fg)
	opts.NameCap = ui.NameCap
	opts.Placeholder = ui.Placeholder
	if ui.Welcome != "" {
		opts.Welcome = ui.Welcome
	}
	if ui.Farewell != "" {
		opts.Farewell = ui.Farewell
	}
	return opts, nil
}
