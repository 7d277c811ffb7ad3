// Package config holds the settings of the graphsearch shell: graph
// capacity, menu display and logging. Values come from built-in defaults,
// then an optional YAML file, then command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsearch/core"
)

// MaxCapacity bounds the capacity a config may request. The shell is an
// exerciser for small graphs; the bound keeps recursive DFS shallow.
const MaxCapacity = 1024

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the resolved shell configuration.
type Config struct {
	// Capacity is the number of vertex slots of the shell's graph.
	Capacity int `yaml:"capacity"`

	// Menu prints the command banner and argument prompts.
	Menu bool `yaml:"menu"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Capacity:  core.DefaultCapacity,
		Menu:      true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads a YAML file on top of Default and validates the result.
// Keys missing from the file keep their default; unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and normalises the case of the string ones.
func (c *Config) Validate() error {
	if c.Capacity < 1 || c.Capacity > MaxCapacity {
		return fmt.Errorf("%w: capacity %d not in [1, %d]", ErrInvalid, c.Capacity, MaxCapacity)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("%w: log level %q: must be debug, info, warn or error", ErrInvalid, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q: must be text or json", ErrInvalid, c.LogFormat)
	}

	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the slog logger described by c, writing to w.
// c must have passed Validate.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[c.LogLevel]}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
