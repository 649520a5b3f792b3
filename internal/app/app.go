package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/engine"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/cursor"
)

// StdinPath is the file path that reads content from standard input.
const StdinPath = "-"

// gotoPrefix introduces an absolute jump step, as in "goto:2:20".
const gotoPrefix = "goto:"

// Application loads one buffer, places one cursor in it and drives the
// cursor through a motion script.
type Application struct {
	opts   Options
	config *config.Config
	logger *Logger

	engine *engine.Engine
	cursor engine.CursorID
	steps  []step
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	// Empty means config.DefaultPath.
	ConfigPath string

	// FilePath is the file to navigate. Empty starts with an empty
	// buffer; StdinPath reads from Stdin.
	FilePath string

	// Start is the initial cursor position as "line:offset".
	// Empty means 0:0. The position is not checked against the buffer.
	Start string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Trace prints the position after every step.
	Trace bool

	// Motions is the script of steps to run.
	Motions []string

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// step is one parsed entry of a motion script.
type step struct {
	raw    string
	motion cursor.Motion
	target buffer.Position
	jump   bool
}

// New creates a new Application with the given options.
// The whole script is parsed here so a bad step fails before any motion runs.
func New(opts Options) (*Application, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return NewOperationError("load config", app.opts.ConfigPath, err)
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	app.config = cfg

	// 2. Logger
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Log.Level),
		Output: app.opts.Stderr,
		Prefix: "scribe",
	})

	// 3. Script and start position
	start := buffer.Position{}
	if app.opts.Start != "" {
		start, err = buffer.ParsePosition(app.opts.Start)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStart, err)
		}
	}
	app.steps, err = parseScript(app.opts.Motions)
	if err != nil {
		return err
	}

	// 4. Engine
	app.engine, err = app.openEngine()
	if err != nil {
		return err
	}
	app.cursor = app.engine.AddCursor(start.Line, start.Offset)

	app.logger.Debug("loaded %d lines, %d steps from %s", app.engine.LineCount(), len(app.steps), start)
	return nil
}

// openEngine creates the engine over the configured content source.
func (app *Application) openEngine() (*engine.Engine, error) {
	opts := []engine.Option{
		engine.WithBufferOptions(app.config.BufferOptions()...),
		engine.WithLogger(app.logger.WithComponent("engine")),
		engine.WithReadOnly(),
	}

	switch app.opts.FilePath {
	case "":
		return engine.New(opts...), nil
	case StdinPath:
		eng, err := engine.NewFromReader(app.opts.Stdin, opts...)
		if err != nil {
			return nil, NewOperationError("read", "stdin", err)
		}
		return eng, nil
	default:
		f, err := os.Open(app.opts.FilePath)
		if err != nil {
			return nil, NewOperationError("open", app.opts.FilePath, err)
		}
		defer f.Close()

		eng, err := engine.NewFromReader(f, opts...)
		if err != nil {
			return nil, NewOperationError("read", app.opts.FilePath, err)
		}
		return eng, nil
	}
}

// parseScript parses every step of a motion script.
func parseScript(raw []string) ([]step, error) {
	steps := make([]step, 0, len(raw))
	for i, s := range raw {
		st, err := parseStep(s)
		if err != nil {
			return nil, &StepError{Index: i, Step: s, Err: err}
		}
		steps = append(steps, st)
	}
	return steps, nil
}

// parseStep parses a motion name or a "goto:line:offset" jump.
func parseStep(s string) (step, error) {
	trimmed := strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToLower(trimmed), gotoPrefix); ok {
		target, err := buffer.ParsePosition(rest)
		if err != nil {
			return step{}, fmt.Errorf("%w: %w", ErrUnknownMotion, err)
		}
		return step{raw: trimmed, target: target, jump: true}, nil
	}

	m, err := cursor.ParseMotion(trimmed)
	if err != nil {
		return step{}, fmt.Errorf("%w: %q", ErrUnknownMotion, s)
	}
	return step{raw: trimmed, motion: m}, nil
}

// Run executes the script and writes the cursor's final position to
// Stdout as "line:offset". With Trace set, each step's resulting
// position is written first. Steps the buffer rejects leave the cursor
// where it was and are not errors.
func (app *Application) Run() (buffer.Position, error) {
	for _, st := range app.steps {
		pos, err := app.apply(st)
		if err != nil {
			return buffer.Position{}, err
		}
		if app.opts.Trace {
			fmt.Fprintf(app.opts.Stdout, "%s\t%s\n", st.raw, formatPosition(pos))
		}
	}

	pos, err := app.engine.CursorPosition(app.cursor)
	if err != nil {
		return buffer.Position{}, err
	}
	fmt.Fprintln(app.opts.Stdout, formatPosition(pos))
	return pos, nil
}

// apply runs one step against the application's cursor.
func (app *Application) apply(st step) (buffer.Position, error) {
	if st.jump {
		if _, err := app.engine.MoveTo(app.cursor, st.target); err != nil {
			return buffer.Position{}, err
		}
		return app.engine.CursorPosition(app.cursor)
	}

	pos, _, err := app.engine.Move(app.cursor, st.motion)
	return pos, err
}

// Close releases the application's cursor.
func (app *Application) Close() error {
	return app.engine.RemoveCursor(app.cursor)
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the engine holding the buffer and cursor.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// formatPosition renders p the way the CLI prints it.
func formatPosition(p buffer.Position) string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}
