package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/engine"
	"github.com/dshills/scribe/internal/engine/buffer"
)

// testOptions returns options that read no config file and capture output.
func testOptions(t *testing.T) (Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Stdin:      strings.NewReader(""),
		Stdout:     &stdout,
		Stderr:     &stderr,
	}, &stdout, &stderr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, opts Options) buffer.Position {
	t.Helper()
	application, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	pos, err := application.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return pos
}

func TestApplication_StickyOffsetScript(t *testing.T) {
	opts, stdout, _ := testOptions(t)
	opts.FilePath = writeFile(t, "notes.txt", "hello world\nhi\nlonger line")
	opts.Start = "0:8"
	opts.Motions = []string{"down", "down"}

	pos := run(t, opts)

	if pos != (buffer.Position{Line: 2, Offset: 8}) {
		t.Errorf("expected (2:8), got %s", pos)
	}
	if stdout.String() != "2:8\n" {
		t.Errorf("expected output %q, got %q", "2:8\n", stdout.String())
	}
}

func TestApplication_Trace(t *testing.T) {
	opts, stdout, _ := testOptions(t)
	opts.FilePath = StdinPath
	opts.Stdin = strings.NewReader("abc\n")
	opts.Motions = []string{"right", "END", "down"}
	opts.Trace = true

	run(t, opts)

	expected := "right\t0:1\nEND\t0:3\ndown\t1:0\n1:0\n"
	if stdout.String() != expected {
		t.Errorf("expected output %q, got %q", expected, stdout.String())
	}
}

func TestApplication_RejectedMotionIsNotAnError(t *testing.T) {
	opts, stdout, stderr := testOptions(t)
	opts.Motions = []string{"left", "up", "right", "down"}

	pos := run(t, opts)

	if !pos.IsZero() {
		t.Errorf("expected (0:0), got %s", pos)
	}
	if stdout.String() != "0:0\n" {
		t.Errorf("expected output %q, got %q", "0:0\n", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no log output, got %q", stderr.String())
	}
}

func TestApplication_Goto(t *testing.T) {
	tests := []struct {
		name     string
		motions  []string
		expected buffer.Position
	}{
		{"valid target", []string{"goto:1:2"}, buffer.Position{Line: 1, Offset: 2}},
		{"past end of line", []string{"goto:1:2", "goto:0:9"}, buffer.Position{Line: 1, Offset: 2}},
		{"missing line", []string{"goto:5:0"}, buffer.Position{}},
		{"then motion", []string{"goto:0:3", "down"}, buffer.Position{Line: 1, Offset: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, _ := testOptions(t)
			opts.FilePath = writeFile(t, "f.txt", "abc\nde")
			opts.Motions = tt.motions

			pos := run(t, opts)
			if pos != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, pos)
			}
		})
	}
}

func TestApplication_UnknownMotion(t *testing.T) {
	opts, stdout, _ := testOptions(t)
	opts.Motions = []string{"up", "sideways", "down"}

	_, err := New(opts)
	if !errors.Is(err, ErrUnknownMotion) {
		t.Fatalf("expected ErrUnknownMotion, got %v", err)
	}

	var serr *StepError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StepError, got %T", err)
	}
	if serr.Index != 1 || serr.Step != "sideways" {
		t.Errorf("expected step 1 'sideways', got %d %q", serr.Index, serr.Step)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", stdout.String())
	}
}

func TestApplication_BadGotoTarget(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.Motions = []string{"goto:one:2"}

	_, err := New(opts)
	if !errors.Is(err, ErrUnknownMotion) {
		t.Errorf("expected ErrUnknownMotion, got %v", err)
	}
}

func TestApplication_InvalidStart(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.Start = "top"

	_, err := New(opts)
	if !errors.Is(err, ErrInvalidStart) {
		t.Errorf("expected ErrInvalidStart, got %v", err)
	}
}

func TestApplication_StartIsNotBoundsChecked(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.FilePath = writeFile(t, "f.txt", "ab\ncd")
	opts.Start = "7:7"
	opts.Motions = []string{"down", "left"}

	pos := run(t, opts)

	if pos != (buffer.Position{Line: 7, Offset: 7}) {
		t.Errorf("expected cursor to stay at (7:7), got %s", pos)
	}
}

func TestApplication_MissingFile(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.FilePath = filepath.Join(t.TempDir(), "nope.txt")

	_, err := New(opts)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}

	var oerr *OperationError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if oerr.Op != "open" {
		t.Errorf("expected op 'open', got %q", oerr.Op)
	}
}

func TestApplication_ConfigFile(t *testing.T) {
	opts, _, stderr := testOptions(t)
	opts.ConfigPath = writeFile(t, "scribe.toml", `
[buffer]
offset_unit = "grapheme"

[log]
level = "debug"
`)
	opts.FilePath = StdinPath
	opts.Stdin = strings.NewReader("e\u0301x\n")
	opts.Motions = []string{"end"}

	pos := run(t, opts)

	if pos != (buffer.Position{Line: 0, Offset: 2}) {
		t.Errorf("expected grapheme offset (0:2), got %s", pos)
	}

	application, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if application.Config().Buffer.OffsetUnit != "grapheme" {
		t.Errorf("expected grapheme offset unit, got %q", application.Config().Buffer.OffsetUnit)
	}

	logs := stderr.String()
	if !strings.Contains(logs, "[DEBUG]") {
		t.Errorf("expected debug logs, got %q", logs)
	}
	if !strings.Contains(logs, "component=engine") {
		t.Errorf("expected engine component logs, got %q", logs)
	}
}

func TestApplication_LogLevelOverride(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.ConfigPath = writeFile(t, "scribe.toml", "[log]\nlevel = \"debug\"\n")
	opts.LogLevel = "error"

	application, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if application.Logger().Level() != LogLevelError {
		t.Errorf("expected ERROR level, got %s", application.Logger().Level())
	}
}

func TestApplication_LogLevelAcceptsConfigSpellings(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"warning", LogLevelWarn},
		{"WARN", LogLevelWarn},
		{"Debug", LogLevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			opts, _, _ := testOptions(t)
			opts.LogLevel = tt.input

			application, err := New(opts)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if application.Logger().Level() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, application.Logger().Level())
			}
		})
	}
}

func TestApplication_VimStyleMotions(t *testing.T) {
	opts, stdout, _ := testOptions(t)
	opts.FilePath = writeFile(t, "f.txt", "abc\nde")
	opts.Motions = []string{"$", "j", "0", "l", "k", "h"}

	pos := run(t, opts)

	if pos != (buffer.Position{Line: 0, Offset: 0}) {
		t.Errorf("expected (0:0), got %s", pos)
	}
	if stdout.String() != "0:0\n" {
		t.Errorf("expected output %q, got %q", "0:0\n", stdout.String())
	}
}

func TestApplication_InvalidLogLevel(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.LogLevel = "loud"

	_, err := New(opts)
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("expected config.ErrValidationFailed, got %v", err)
	}
}

func TestApplication_ConfigParseError(t *testing.T) {
	opts, _, _ := testOptions(t)
	opts.ConfigPath = writeFile(t, "scribe.toml", "[buffer\n")

	_, err := New(opts)

	var perr *config.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected config.ParseError, got %v", err)
	}
}

func TestApplication_EngineIsReadOnly(t *testing.T) {
	opts, _, _ := testOptions(t)

	application, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, err = application.Engine().Insert(buffer.Position{}, "x")
	if !errors.Is(err, engine.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestApplication_Close(t *testing.T) {
	opts, _, _ := testOptions(t)

	application, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := application.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if n := application.Engine().CursorCount(); n != 0 {
		t.Errorf("expected no cursors after Close, got %d", n)
	}
	if err := application.Close(); !errors.Is(err, engine.ErrCursorNotFound) {
		t.Errorf("expected ErrCursorNotFound on second Close, got %v", err)
	}
}
