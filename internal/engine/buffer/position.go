package buffer

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Position is a line and offset coordinate into line-structured text.
// Both Line and Offset are 0-indexed. Offset is measured in characters
// from the start of the line, in the buffer's OffsetUnit.
//
// A Position is a plain coordinate: constructing one never validates it.
// Whether it addresses real text is decided by the store it is used with.
type Position struct {
	Line   int // 0-indexed line number
	Offset int // 0-indexed character offset within the line
}

// NewPosition creates a position at the given line and offset.
func NewPosition(line, offset int) Position {
	return Position{Line: line, Offset: offset}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Offset)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Line is compared first; Offset only breaks ties between equal lines,
// so a position on an earlier line is before one on a later line no
// matter how large its offset is.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Equal returns true if both fields match.
func (p Position) Equal(other Position) bool {
	return p == other
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// BeforeOrEqual returns true if p comes before or is equal to other.
func (p Position) BeforeOrEqual(other Position) bool {
	return p.Compare(other) <= 0
}

// AfterOrEqual returns true if p comes after or is equal to other.
func (p Position) AfterOrEqual(other Position) bool {
	return p.Compare(other) >= 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Offset == 0
}

// ParsePosition parses a "line:offset" string such as "2:20".
func ParsePosition(s string) (Position, error) {
	lineStr, offsetStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Position{}, fmt.Errorf("position %q: expected line:offset", s)
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return Position{}, fmt.Errorf("position %q: invalid line: %w", s, err)
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		return Position{}, fmt.Errorf("position %q: invalid offset: %w", s, err)
	}
	if line < 0 || offset < 0 {
		return Position{}, fmt.Errorf("position %q: line and offset must be non-negative", s)
	}

	return Position{Line: line, Offset: offset}, nil
}

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
