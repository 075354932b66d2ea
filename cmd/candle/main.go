// Package main is the entry point for the Candle viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/candle/internal/app"
	"github.com/dshills/candle/internal/renderer"
)

// Version information (set via ldflags during build).
var (
	commit = "unknown"
	date   = "unknown"
)

type cliOptions struct {
	configPath string
	logLevel   string
	logFile    string
	backend    string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 1
	}

	application, cleanup, err := app.Bootstrap(app.Setup{
		ConfigPath: opts.configPath,
		File:       opts.file,
		Overrides:  opts.overrides(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer cleanup()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// overrides returns the config settings given on the command line.
func (o cliOptions) overrides() map[string]any {
	m := make(map[string]any)
	if o.logLevel != "" {
		m["logging.level"] = o.logLevel
	}
	if o.logFile != "" {
		m["logging.file"] = o.logFile
	}
	if o.backend != "" {
		m["terminal.backend"] = o.backend
	}
	return m
}

func parseFlags() (cliOptions, bool) {
	var opts cliOptions
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&opts.backend, "backend", "", "Terminal backend (tcell, ansi)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Candle - terminal text viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: candle [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: arrows, Home/End, PageUp/PageDown move the cursor; Ctrl-Q quits.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Candle %s\n", renderer.Version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		return opts, false
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %d\n", len(args))
		flag.Usage()
		return opts, false
	}
	if len(args) == 1 {
		opts.file = args[0]
	}
	return opts, true
}
