package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/dshills/candle/internal/config/loader"
)

// memFS is an in-memory file system for testing.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return fileInfo(path), nil
}

type fileInfo string

func (f fileInfo) Name() string       { return string(f) }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0644 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

var _ loader.FileSystem = memFS(nil)

func TestDefaults(t *testing.T) {
	c := New(WithFile(""), WithEnviron([]string{}))
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := c.Terminal().Backend; got != BackendTcell {
		t.Errorf("expected backend tcell, got %q", got)
	}

	ui := c.UI()
	if ui.StatusBackground != "#EFEFEF" || ui.StatusForeground != "#3F3F3F" {
		t.Errorf("unexpected status colors %q / %q", ui.StatusBackground, ui.StatusForeground)
	}
	if ui.NameCap != 20 {
		t.Errorf("expected name cap 20, got %d", ui.NameCap)
	}
	if ui.Placeholder != "" {
		t.Errorf("expected empty placeholder, got %q", ui.Placeholder)
	}

	logging := c.Logging()
	if logging.Level != "info" || logging.File != "" {
		t.Errorf("unexpected logging config %+v", logging)
	}
}

func TestLoadLayering(t *testing.T) {
	files := memFS{"/cfg/config.toml": `
[terminal]
backend = "ansi"

[ui]
nameCap = 12
placeholder = "~"
`}
	environ := []string{"CANDLE_UI_NAME_CAP=8", "CANDLE_LOG_LEVEL=debug"}

	c := New(WithFS(files), WithFile("/cfg/config.toml"), WithEnviron(environ))
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if path, found := c.File(); path != "/cfg/config.toml" || !found {
		t.Errorf("expected file to be found, got %q %v", path, found)
	}
	if got := c.Terminal().Backend; got != BackendANSI {
		t.Errorf("expected file to set backend, got %q", got)
	}
	if got := c.UI().NameCap; got != 8 {
		t.Errorf("expected environment to override file, got %d", got)
	}
	if got := c.UI().Placeholder; got != "~" {
		t.Errorf("expected placeholder from file, got %q", got)
	}
	if got := c.Source("ui.nameCap"); got != "environment" {
		t.Errorf("expected ui.nameCap from environment, got %q", got)
	}
	if got := c.Source("ui.placeholder"); got != "file" {
		t.Errorf("expected ui.placeholder from file, got %q", got)
	}
}

func TestSetOverridesAllLayers(t *testing.T) {
	c := New(WithFile(""), WithEnviron([]string{"CANDLE_BACKEND=ansi"}))
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := c.Set("terminal.backend", "tcell"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := c.Terminal().Backend; got != BackendTcell {
		t.Errorf("expected flag to win, got %q", got)
	}
	if err := c.Set("", "x"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := New(WithFS(memFS{}), WithFile("/nope.toml"), WithEnviron([]string{}))
	if err := c.Load(); err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if _, found := c.File(); found {
		t.Error("expected file not found")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	c := New(WithFS(memFS{"/bad.toml": "[ui\n"}), WithFile("/bad.toml"), WithEnviron([]string{}))

	err := c.Load()
	var pe *loader.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *loader.ParseError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		path    string
	}{
		{"bad backend", []string{"CANDLE_BACKEND=curses"}, "terminal.backend"},
		{"bad color", []string{"CANDLE_UI_STATUS_BACKGROUND=#12345"}, "ui.statusBackground"},
		{"bad level", []string{"CANDLE_LOG_LEVEL=loud"}, "logging.level"},
		{"negative cap", []string{"CANDLE_UI_NAME_CAP=-3"}, "ui.nameCap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithFile(""), WithEnviron(tt.environ))
			err := c.Load()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("expected error for %s, got %v", tt.path, err)
			}
		})
	}
}

func TestValidateTypeError(t *testing.T) {
	files := memFS{"/c.toml": "[ui]\nnameCap = \"wide\"\n"}
	c := New(WithFS(files), WithFile("/c.toml"), WithEnviron([]string{}))

	err := c.Load()
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if te.Path != "ui.nameCap" || te.Expected != "int" {
		t.Errorf("unexpected type error %+v", te)
	}
}

func TestGetString(t *testing.T) {
	c := New(WithFile(""), WithEnviron([]string{"CANDLE_PLACEHOLDER=1"}))
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := c.UI().Placeholder; got != "1" {
		t.Errorf("expected numeric env value formatted as string, got %q", got)
	}
	if _, err := c.GetString("ui.missing"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("expected ErrSettingNotFound, got %v", err)
	}
	if _, err := c.GetString("ui"); err == nil {
		t.Error("expected type error for a table")
	}
}
