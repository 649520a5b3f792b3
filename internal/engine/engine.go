package engine

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/offset coordinate in the buffer.
	Position = buffer.Position

	// Range is a span between two positions.
	Range = buffer.Range

	// Edit represents an edit operation.
	Edit = buffer.Edit

	// EditResult contains information about a completed edit.
	EditResult = buffer.EditResult

	// Motion names a directional cursor movement.
	Motion = cursor.Motion
)

// CursorID identifies a cursor registered with an Engine.
type CursorID = uuid.UUID

// Logger receives engine lifecycle messages.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Engine owns one shared buffer and the cursors navigating it.
//
// Cursors are registered under a CursorID and addressed by that ID, so
// several views can keep cursors on the same text without sharing Cursor
// values. Edits go straight to the buffer; cursors are not adjusted and
// see the new shape on their next move.
//
// All Engine methods are thread-safe.
type Engine struct {
	mu sync.RWMutex

	buf     *buffer.Buffer
	cursors map[CursorID]*cursor.Cursor
	logger  Logger

	// Configuration
	bufOpts     []buffer.Option
	initContent string
	readOnly    bool
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		cursors: make(map[CursorID]*cursor.Cursor),
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.buf = buffer.NewBufferFromString(e.initContent, e.bufOpts...)
	return e
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)

	var err error
	e.buf, err = buffer.NewBufferFromReader(r, e.bufOpts...)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return e, nil
}

// Buffer returns the shared buffer. Callers may query it directly; edits
// should go through the Engine so read-only mode is honoured.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full buffer content.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the text of a specific line (without newline).
func (e *Engine) LineText(line int) (string, bool) {
	return e.buf.LineText(line)
}

// IsReadOnly returns true if the engine rejects edits.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// Write Operations
// ============================================================================

// Insert inserts text at the given position.
// Returns the position just after the inserted text.
func (e *Engine) Insert(p Position, text string) (Position, error) {
	if e.readOnly {
		return Position{}, ErrReadOnly
	}
	end, err := e.buf.Insert(p, text)
	if err != nil {
		return Position{}, fmt.Errorf("insert at %s: %w", p, err)
	}
	return end, nil
}

// Delete removes the text in the given range.
func (e *Engine) Delete(r Range) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if err := e.buf.Delete(r); err != nil {
		return fmt.Errorf("delete %s: %w", r, err)
	}
	return nil
}

// ApplyEdit applies a single edit to the buffer.
func (e *Engine) ApplyEdit(edit Edit) (EditResult, error) {
	if e.readOnly {
		return EditResult{}, ErrReadOnly
	}
	result, err := e.buf.ApplyEdit(edit)
	if err != nil {
		return EditResult{}, fmt.Errorf("apply %s: %w", edit, err)
	}
	return result, nil
}

// ============================================================================
// Cursor Registry
// ============================================================================

// AddCursor registers a new cursor at the given line and offset.
// Like cursor.New, the initial position is not bounds-checked.
func (e *Engine) AddCursor(line, offset int) CursorID {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.New()
	e.cursors[id] = cursor.New(e.buf, line, offset)
	e.logger.Debug("cursor %s added at (%d:%d)", id, line, offset)
	return id
}

// RemoveCursor unregisters a cursor.
func (e *Engine) RemoveCursor(id CursorID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.cursors[id]; !ok {
		return fmt.Errorf("remove cursor %s: %w", id, ErrCursorNotFound)
	}
	delete(e.cursors, id)
	e.logger.Debug("cursor %s removed", id)
	return nil
}

// Cursor returns the cursor registered under id.
// The returned Cursor is not synchronized; prefer Move and MoveTo when
// other goroutines use the same engine.
func (e *Engine) Cursor(id CursorID) (*cursor.Cursor, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.cursors[id]
	return c, ok
}

// CursorPosition returns the position of a registered cursor.
func (e *Engine) CursorPosition(id CursorID) (Position, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, ok := e.cursors[id]
	if !ok {
		return Position{}, fmt.Errorf("cursor %s: %w", id, ErrCursorNotFound)
	}
	return c.Position(), nil
}

// CursorCount returns the number of registered cursors.
func (e *Engine) CursorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cursors)
}

// CursorIDs returns the registered cursor IDs ordered by cursor position.
// Cursors at the same position are ordered by ID.
func (e *Engine) CursorIDs() []CursorID {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := make([]CursorID, 0, len(e.cursors))
	for id := range e.cursors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := e.cursors[ids[i]].Position(), e.cursors[ids[j]].Position()
		if cmp := pi.Compare(pj); cmp != 0 {
			return cmp < 0
		}
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// Move applies a motion to a registered cursor. It returns the cursor's
// resulting position and whether the motion moved it. A motion the buffer
// rejects is not an error.
func (e *Engine) Move(id CursorID, m Motion) (Position, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.cursors[id]
	if !ok {
		return Position{}, false, fmt.Errorf("move cursor %s: %w", id, ErrCursorNotFound)
	}
	moved := c.Apply(m)
	return c.Position(), moved, nil
}

// MoveTo moves a registered cursor to target. It reports false if the
// buffer rejects target.
func (e *Engine) MoveTo(id CursorID, target Position) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.cursors[id]
	if !ok {
		return false, fmt.Errorf("move cursor %s: %w", id, ErrCursorNotFound)
	}
	return c.MoveTo(target), nil
}

// MoveAll applies a motion to every registered cursor and returns how
// many of them moved.
func (e *Engine) MoveAll(m Motion) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	moved := 0
	for _, c := range e.cursors {
		if c.Apply(m) {
			moved++
		}
	}
	return moved
}
