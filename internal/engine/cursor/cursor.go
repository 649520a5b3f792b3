package cursor

import (
	"fmt"

	"github.com/dshills/scribe/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// TextStore is the query surface a Cursor needs from the text it moves
// through. The store is shared with other collaborators and may change
// between calls; a Cursor re-queries it on every movement.
//
// *buffer.Buffer and *buffer.Snapshot implement TextStore.
type TextStore interface {
	// InBounds reports whether p addresses a character or a valid
	// end-of-line/end-of-content slot in the current content.
	InBounds(p Position) bool

	// LineLength returns the character count of a line, or false if
	// the line does not exist.
	LineLength(line int) (int, bool)
}

// Cursor is a bounds-checked position in a shared TextStore.
//
// Besides its position, a Cursor remembers a sticky offset: the column the
// user intends to stay in while moving vertically. Passing through a short
// line clamps the position to that line's end but keeps the sticky offset,
// so reaching a long enough line restores the original column.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	store        TextStore
	position     Position
	stickyOffset int
}

// New creates a cursor bound to store at the given line and offset.
// The initial position is not bounds-checked.
func New(store TextStore, line, offset int) *Cursor {
	return &Cursor{
		store:        store,
		position:     Position{Line: line, Offset: offset},
		stickyOffset: offset,
	}
}

// Position returns the cursor's current position.
func (c *Cursor) Position() Position {
	return c.position
}

// Line returns the cursor's current line.
func (c *Cursor) Line() int {
	return c.position.Line
}

// Offset returns the cursor's current offset within its line.
func (c *Cursor) Offset() int {
	return c.position.Offset
}

// StickyOffset returns the offset the cursor tries to keep across vertical moves.
func (c *Cursor) StickyOffset() int {
	return c.stickyOffset
}

// Store returns the text store the cursor is bound to.
func (c *Cursor) Store() TextStore {
	return c.store
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor%s sticky=%d", c.position, c.stickyOffset)
}

// MoveTo moves the cursor to target if the store reports it in bounds,
// and remembers target's offset as the sticky offset. It returns false
// and leaves the cursor untouched otherwise.
//
// Every other movement goes through MoveTo.
func (c *Cursor) MoveTo(target Position) bool {
	if !c.store.InBounds(target) {
		return false
	}
	c.position = target
	c.stickyOffset = target.Offset
	return true
}

// MoveUp moves to the previous line, keeping the sticky offset where the
// line is long enough and falling back to its end otherwise.
// Does nothing on the first line.
func (c *Cursor) MoveUp() {
	if c.position.Line == 0 {
		return
	}
	c.moveVertical(c.position.Line - 1)
}

// MoveDown moves to the next line, keeping the sticky offset where the
// line is long enough and falling back to its end otherwise.
// The move is always attempted; whether a next line exists is left to the
// store's bounds check, so a line appended since the last move is reachable.
func (c *Cursor) MoveDown() {
	c.moveVertical(c.position.Line + 1)
}

// moveVertical tries (line, sticky) and falls back to the end of line.
func (c *Cursor) moveVertical(line int) {
	desired := c.stickyOffset
	if c.MoveTo(Position{Line: line, Offset: desired}) {
		return
	}

	length, ok := c.store.LineLength(line)
	if !ok {
		return
	}
	if c.MoveTo(Position{Line: line, Offset: length}) {
		// MoveTo recorded the clamped offset; keep aiming for the
		// original one on the next vertical move.
		c.stickyOffset = desired
	}
}

// MoveLeft moves one character left. Does nothing at the start of a line.
func (c *Cursor) MoveLeft() {
	if c.position.Offset == 0 {
		return
	}
	c.MoveTo(Position{Line: c.position.Line, Offset: c.position.Offset - 1})
}

// MoveRight moves one character right. Does nothing at the end of a line.
func (c *Cursor) MoveRight() {
	c.MoveTo(Position{Line: c.position.Line, Offset: c.position.Offset + 1})
}

// MoveToStartOfLine moves to offset 0 of the current line.
func (c *Cursor) MoveToStartOfLine() {
	c.MoveTo(Position{Line: c.position.Line, Offset: 0})
}

// MoveToEndOfLine moves just past the last character of the current line.
// Does nothing if the store no longer has the current line.
func (c *Cursor) MoveToEndOfLine() {
	length, ok := c.store.LineLength(c.position.Line)
	if !ok {
		return
	}
	c.MoveTo(Position{Line: c.position.Line, Offset: length})
}
