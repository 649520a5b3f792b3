package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem is an abstraction for reading config files.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Environment variables that override file settings.
const (
	EnvLineEnding = "SCRIBE_LINE_ENDING"
	EnvOffsetUnit = "SCRIBE_OFFSET_UNIT"
	EnvLogLevel   = "SCRIBE_LOG_LEVEL"
)

// Load reads the config file at path on the OS file system, applies
// environment overrides and validates the result. A missing file is not
// an error: defaults are used instead.
func Load(path string) (*Config, error) {
	return LoadFS(OSFS{}, path, os.LookupEnv)
}

// LoadFS is Load with an explicit file system and environment lookup.
// An empty path means DefaultPath.
func LoadFS(fsys FileSystem, path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := fsys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// File doesn't exist, not an error
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := decode(path, data, cfg); err != nil {
			return nil, err
		}
	}

	if lookupEnv != nil {
		applyEnv(cfg, lookupEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader on top of the
// defaults. Environment variables are not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := decode("<reader>", data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses TOML data into cfg. Unknown keys are rejected.
func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// applyEnv overrides settings from environment variables.
// Empty values are treated as valid values, not as unset.
func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLineEnding); ok {
		cfg.Buffer.LineEnding = v
	}
	if v, ok := lookupEnv(EnvOffsetUnit); ok {
		cfg.Buffer.OffsetUnit = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
}
