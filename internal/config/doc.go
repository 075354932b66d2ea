// Package config provides the configuration system for Candle.
//
// # Architecture
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CANDLE_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← $XDG_CONFIG_HOME/candle/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing config file is not an error. A file that fails to parse is.
//
// # Settings
//
//	terminal.backend     "tcell" or "ansi"
//	ui.statusBackground  status bar background, "#RRGGBB"
//	ui.statusForeground  status bar foreground, "#RRGGBB"
//	ui.nameCap           file name width limit in the status bar
//	ui.placeholder       text drawn on rows past the end of the document
//	ui.welcome           banner shown for an empty document
//	ui.farewell          line shown when quitting
//	logging.level        debug, info, warn or error
//	logging.file         log destination; logging is off when empty
//
// # Sub-packages
//
//   - loader: TOML files with @include, environment variables, map merging
//   - layer: priority-ordered layer stack
//
// # Usage
//
//	cfg := config.New(config.WithFile(path))
//	if err := cfg.Load(); err != nil {
//	    return err
//	}
//	ui := cfg.UI()
package config
