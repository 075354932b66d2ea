package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dshills/candle/internal/config/layer"
	"github.com/dshills/candle/internal/config/loader"
)

// AppName names the config directory and environment prefix.
const AppName = "candle"

// Config provides layered access to the Candle configuration.
type Config struct {
	layers    *layer.Manager
	fs        loader.FileSystem
	file      string
	environ   []string
	fileFound bool
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the config file path. Empty disables the file layer.
func WithFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}

// WithFS sets the file system the config file is read from.
func WithFS(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnviron reads environment overrides from the given KEY=value list
// instead of the process environment.
func WithEnviron(environ []string) Option {
	return func(c *Config) {
		c.environ = environ
	}
}

// New creates a Config holding only the built-in defaults. Call Load to
// read the file and environment layers.
func New(opts ...Option) *Config {
	c := &Config{
		layers: layer.NewManager(),
		fs:     loader.DefaultFS(),
		file:   DefaultPath(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.layers.AddLayer(layer.NewLayerWithData(layer.SourceBuiltin, defaultConfig()))
	c.layers.AddLayer(layer.NewLayer(layer.SourceArgs))
	return c
}

// Load reads the config file and environment layers.
func (c *Config) Load() error {
	if c.file != "" {
		data, err := loader.NewTOMLLoaderWithFS(c.fs, c.file).Load()
		if err != nil {
			return fmt.Errorf("loading config file: %w", err)
		}
		c.fileFound = data != nil
		if data != nil {
			l := layer.NewLayerWithData(layer.SourceFile, data)
			l.Path = c.file
			c.layers.AddLayer(l)
		}
	}

	var env *loader.EnvLoader
	if c.environ != nil {
		env = loader.NewEnvLoaderWithEnviron(loader.DefaultEnvPrefix, c.environ)
	} else {
		env = loader.NewEnvLoader(loader.DefaultEnvPrefix)
	}
	data, err := env.Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	if len(data) > 0 {
		c.layers.AddLayer(layer.NewLayerWithData(layer.SourceEnv, data))
	}

	return c.Validate()
}

// File returns the config file path, and whether the file was found by
// the last Load.
func (c *Config) File() (string, bool) {
	return c.file, c.fileFound
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	return c.layers.Get(path)
}

// Source returns the name of the layer supplying the value at path.
func (c *Config) Source(path string) string {
	return c.layers.WhichLayer(path)
}

// Set overrides a setting in the command-line layer.
func (c *Config) Set(path string, value any) error {
	if len(loader.SplitPath(path)) == 0 {
		return ErrInvalidPath
	}
	return c.layers.Set(layer.SourceArgs.String(), path, value)
}

// GetString returns a string value at the given path. Integers and
// booleans are formatted, since environment values arrive untyped.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case int:
		return strconv.Itoa(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	case string:
		if i, err := strconv.Atoi(val); err == nil {
			return i, nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// DefaultPath returns $XDG_CONFIG_HOME/candle/config.toml, or "" when no
// user config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.toml")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"terminal": map[string]any{
			"backend": BackendTcell,
		},
		"ui": map[string]any{
			"statusBackground": "#EFEFEF",
			"statusForeground": "#3F3F3F",
			"nameCap":          20,
			"placeholder":      "",
			"welcome":          "",
			"farewell":         "",
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
