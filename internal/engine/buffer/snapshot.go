package buffer

import "strings"

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified. A Snapshot answers the same bounds and line-length
// queries as Buffer, so a cursor can be bound to a frozen view.
type Snapshot struct {
	text       string
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
	offsetUnit OffsetUnit
}

func newSnapshot(text string, rev RevisionID, le LineEnding, unit OffsetUnit) *Snapshot {
	return &Snapshot{
		text:       text,
		lines:      strings.Split(text, "\n"),
		revisionID: rev,
		lineEnding: le,
		offsetUnit: unit,
	}
}

// Text returns the full snapshot content with LF line endings.
func (s *Snapshot) Text() string {
	return s.text
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// LineText returns the text of a specific line (without newline).
func (s *Snapshot) LineText(line int) (string, bool) {
	if line < 0 || line >= len(s.lines) {
		return "", false
	}
	return s.lines[line], true
}

// LineLength returns the number of characters on a line (without newline).
func (s *Snapshot) LineLength(line int) (int, bool) {
	text, ok := s.LineText(line)
	if !ok {
		return 0, false
	}
	return measure(text, s.offsetUnit), true
}

// InBounds reports whether p addresses a character or end-of-line slot.
func (s *Snapshot) InBounds(p Position) bool {
	text, ok := s.LineText(p.Line)
	if !ok {
		return false
	}
	_, ok = runesForOffset(text, p.Offset, s.offsetUnit)
	return ok
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// LineEnding returns the line ending style of the buffer at snapshot time.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}

// OffsetUnit returns what one offset step counts in this snapshot.
func (s *Snapshot) OffsetUnit() OffsetUnit {
	return s.offsetUnit
}
