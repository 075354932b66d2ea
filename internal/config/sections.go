package config

import (
	"errors"
	"strings"

	"github.com/dshills/candle/internal/renderer/core"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// Terminal backends.
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// TerminalConfig selects the terminal backend.
type TerminalConfig struct {
	// Backend is "tcell" or "ansi".
	Backend string
}

// UIConfig provides type-safe access to display settings.
type UIConfig struct {
	// StatusBackground and StatusForeground color the status bar.
	StatusBackground string
	StatusForeground string

	// NameCap limits the file name width in the status bar.
	NameCap int

	// Placeholder is drawn on rows past the end of the document.
	Placeholder string

	// Welcome and Farewell replace the built-in banner and quit line
	// when not empty.
	Welcome  string
	Farewell string
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string

	// File is the log destination. Logging is disabled when empty.
	File string
}

// Terminal returns the terminal settings.
func (c *Config) Terminal() TerminalConfig {
	return TerminalConfig{
		Backend: strings.ToLower(c.getStringOr("terminal.backend", BackendTcell)),
	}
}

// UI returns the display settings.
func (c *Config) UI() UIConfig {
	return UIConfig{
		StatusBackground: c.getStringOr("ui.statusBackground", "#EFEFEF"),
		StatusForeground: c.getStringOr("ui.statusForeground", "#3F3F3F"),
		NameCap:          c.getIntOr("ui.nameCap", 20),
		Placeholder:      c.getStringOr("ui.placeholder", ""),
		Welcome:          c.getStringOr("ui.welcome", ""),
		Farewell:         c.getStringOr("ui.farewell", ""),
	}
}

// Logging returns the logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: strings.ToLower(c.getStringOr("logging.level", "info")),
		File:  c.getStringOr("logging.file", ""),
	}
}

// Validate checks every known setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	for _, path := range []string{"terminal.backend", "ui.statusBackground", "ui.statusForeground", "ui.placeholder", "ui.welcome", "ui.farewell", "logging.level", "logging.file"} {
		if _, err := c.GetString(path); err != nil && !errors.Is(err, ErrSettingNotFound) {
			errs = append(errs, err)
		}
	}
	n, err := c.GetInt("ui.nameCap")
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		errs = append(errs, err)
	} else if n < 0 {
		errs = append(errs, &ValidationError{Path: "ui.nameCap", Value: n, Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	switch backend := c.Terminal().Backend; backend {
	case BackendTcell, BackendANSI:
	default:
		errs = append(errs, &ValidationError{Path: "terminal.backend", Value: backend, Message: "must be tcell or ansi"})
	}

	ui := c.UI()
	for path, hex := range map[string]string{
		"ui.statusBackground": ui.StatusBackground,
		"ui.statusForeground": ui.StatusForeground,
	} {
		if _, err := core.ColorFromHex(hex); err != nil {
			errs = append(errs, &ValidationError{Path: path, Value: hex, Message: err.Error()})
		}
	}

	switch level := c.Logging().Level; level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Value: level, Message: "must be debug, info, warn or error"})
	}

	return errors.Join(errs...)
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		return defaultValue
	}
	return v
}
