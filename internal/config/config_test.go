package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/dshills/scribe/internal/engine/buffer"
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

// failingFS fails every read with a permission error.
type failingFS struct{}

func (failingFS) ReadFile(string) ([]byte, error) {
	return nil, fs.ErrPermission
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Buffer.OffsetUnit != "rune" {
		t.Errorf("expected offset unit 'rune', got %q", cfg.Buffer.OffsetUnit)
	}
	if cfg.Buffer.LineEnding != "" {
		t.Errorf("expected empty line ending, got %q", cfg.Buffer.LineEnding)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	files := memFS{
		"/scribe.toml": `
[buffer]
line_ending = "crlf"
offset_unit = "grapheme"

[log]
level = "debug"
`,
	}

	cfg, err := LoadFS(files, "/scribe.toml", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Buffer.LineEnding != "crlf" {
		t.Errorf("expected 'crlf', got %q", cfg.Buffer.LineEnding)
	}
	if cfg.Buffer.OffsetUnit != "grapheme" {
		t.Errorf("expected 'grapheme', got %q", cfg.Buffer.OffsetUnit)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected 'debug', got %q", cfg.Log.Level)
	}
}

func TestLoadFSPartialFileKeepsDefaults(t *testing.T) {
	files := memFS{"scribe.toml": "[log]\nlevel = \"warn\"\n"}

	cfg, err := LoadFS(files, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected 'warn', got %q", cfg.Log.Level)
	}
	if cfg.Buffer.OffsetUnit != "rune" {
		t.Errorf("expected default offset unit, got %q", cfg.Buffer.OffsetUnit)
	}
}

func TestLoadFSMissingFile(t *testing.T) {
	cfg, err := LoadFS(memFS{}, "/nope.toml", nil)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected defaults, got level %q", cfg.Log.Level)
	}
}

func TestLoadFSReadError(t *testing.T) {
	_, err := LoadFS(failingFS{}, "/scribe.toml", nil)
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected wrapped permission error, got %v", err)
	}
}

func TestLoadFSParseError(t *testing.T) {
	files := memFS{"/bad.toml": "[buffer\nline_ending = \"lf\"\n"}

	_, err := LoadFS(files, "/bad.toml", nil)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("expected path '/bad.toml', got %q", perr.Path)
	}
	if perr.Line < 1 {
		t.Errorf("expected a line number, got %d", perr.Line)
	}
}

func TestLoadFSUnknownKey(t *testing.T) {
	files := memFS{"/scribe.toml": "[buffer]\ntab_width = 8\n"}

	_, err := LoadFS(files, "/scribe.toml", nil)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for unknown key, got %v", err)
	}
}

func TestLoadFSValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		setting string
	}{
		{"line ending", "[buffer]\nline_ending = \"nel\"\n", "buffer.line_ending"},
		{"offset unit", "[buffer]\noffset_unit = \"byte\"\n", "buffer.offset_unit"},
		{"log level", "[log]\nlevel = \"loud\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(memFS{"/c.toml": tt.content}, "/c.toml", nil)
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Setting != tt.setting {
				t.Errorf("expected setting %q, got %q", tt.setting, verr.Setting)
			}
		})
	}
}

func TestLoadFSEnvOverrides(t *testing.T) {
	files := memFS{"/scribe.toml": "[log]\nlevel = \"warn\"\n"}
	vars := env(map[string]string{
		EnvLogLevel:   "debug",
		EnvOffsetUnit: "grapheme",
	})

	cfg, err := LoadFS(files, "/scribe.toml", vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("env should override file, got %q", cfg.Log.Level)
	}
	if cfg.Buffer.OffsetUnit != "grapheme" {
		t.Errorf("expected 'grapheme' from env, got %q", cfg.Buffer.OffsetUnit)
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("[buffer]\nline_ending = \"cr\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Buffer.LineEnding != "cr" {
		t.Errorf("expected 'cr', got %q", cfg.Buffer.LineEnding)
	}
}

func TestBufferOptions(t *testing.T) {
	cfg := Default()
	cfg.Buffer.LineEnding = "crlf"
	cfg.Buffer.OffsetUnit = "grapheme"

	b := buffer.NewBufferFromString("aé", cfg.BufferOptions()...)

	if b.LineEnding() != buffer.LineEndingCRLF {
		t.Errorf("expected CRLF, got %s", b.LineEnding())
	}
	if b.OffsetUnit() != buffer.OffsetGraphemes {
		t.Errorf("expected grapheme offsets, got %s", b.OffsetUnit())
	}
	if n, _ := b.LineLength(0); n != 2 {
		t.Errorf("expected length 2, got %d", n)
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 2, Column: 5, Message: "bad"}, "parse error in a.toml at line 2, column 5: bad"},
		{&ParseError{Path: "a.toml", Line: 2, Message: "bad"}, "parse error in a.toml at line 2: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
