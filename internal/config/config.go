package config

import (
	"strings"

	"github.com/dshills/scribe/internal/engine/buffer"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "scribe.toml"

// Config holds all scribe settings.
type Config struct {
	Buffer BufferConfig `toml:"buffer"`
	Log    LogConfig    `toml:"log"`
}

// BufferConfig configures the text buffer.
type BufferConfig struct {
	// LineEnding is "lf", "crlf" or "cr". Empty means detect from content.
	LineEnding string `toml:"line_ending"`
	// OffsetUnit is "rune" or "grapheme".
	OffsetUnit string `toml:"offset_unit"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			OffsetUnit: buffer.OffsetRunes.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first invalid one.
func (c *Config) Validate() error {
	if c.Buffer.LineEnding != "" {
		if _, err := buffer.ParseLineEnding(c.Buffer.LineEnding); err != nil {
			return &ValidationError{Setting: "buffer.line_ending", Value: c.Buffer.LineEnding, Err: err}
		}
	}
	if _, err := buffer.ParseOffsetUnit(c.Buffer.OffsetUnit); err != nil {
		return &ValidationError{Setting: "buffer.offset_unit", Value: c.Buffer.OffsetUnit, Err: err}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Setting: "log.level", Value: c.Log.Level, Err: errUnknownLevel}
	}
	return nil
}

// BufferOptions converts the buffer settings into buffer options.
// Call Validate first; invalid values fall back to defaults.
func (c *Config) BufferOptions() []buffer.Option {
	var opts []buffer.Option
	if c.Buffer.LineEnding != "" {
		if le, err := buffer.ParseLineEnding(c.Buffer.LineEnding); err == nil {
			opts = append(opts, buffer.WithLineEnding(le))
		}
	}
	if unit, err := buffer.ParseOffsetUnit(c.Buffer.OffsetUnit); err == nil {
		opts = append(opts, buffer.WithOffsetUnit(unit))
	}
	return opts
}
