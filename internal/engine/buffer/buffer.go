package buffer

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding parses "lf", "crlf" or "cr".
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lf":
		return LineEndingLF, nil
	case "crlf":
		return LineEndingCRLF, nil
	case "cr":
		return LineEndingCR, nil
	default:
		return LineEndingLF, errors.New("unknown line ending " + s)
	}
}

// Buffer is a line-addressable text store backed by a gap buffer.
// It answers the bounds and line-length queries a cursor needs, and
// applies edits that change the text's shape underneath those cursors.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       *gapBuffer
	lineStarts []int // rune index of the first rune of each line
	revisionID RevisionID
	lineEnding LineEnding
	offsetUnit OffsetUnit
	gapSize    int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	return NewBufferFromString("", opts...)
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := &Buffer{
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		offsetUnit: OffsetRunes,
		gapSize:    defaultGapSize,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.text = newGapBuffer(normalizeLineEndings(s), b.gapSize)
	b.rebuildLines()
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
// The line ending style is detected from the content unless an option
// overrides it.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first: a CRLF pair may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := string(data)
	opts = append([]Option{WithDetectedLineEnding(text)}, opts...)
	return NewBufferFromString(text, opts...), nil
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// rebuildLines recomputes the line start index. Caller must hold the write lock.
func (b *Buffer) rebuildLines() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	n := b.text.Len()
	for i := 0; i < n; i++ {
		if b.text.At(i) == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}

// lineBounds returns the rune range of a line without its newline.
// Caller must hold a lock and have checked the line exists.
func (b *Buffer) lineBounds(line int) (start, end int) {
	start = b.lineStarts[line]
	if line+1 < len(b.lineStarts) {
		return start, b.lineStarts[line+1] - 1
	}
	return start, b.text.Len()
}

func (b *Buffer) hasLine(line int) bool {
	return line >= 0 && line < len(b.lineStarts)
}

// index converts a position to a rune index. Caller must hold a lock.
func (b *Buffer) index(p Position) (int, bool) {
	if !b.hasLine(p.Line) {
		return 0, false
	}
	start, end := b.lineBounds(p.Line)
	if b.offsetUnit == OffsetRunes {
		if p.Offset < 0 || p.Offset > end-start {
			return 0, false
		}
		return start + p.Offset, true
	}
	n, ok := runesForOffset(b.text.Slice(start, end), p.Offset, b.offsetUnit)
	return start + n, ok
}

// position converts a rune index to a position. Caller must hold a lock.
func (b *Buffer) position(idx int) Position {
	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > idx
	}) - 1
	start := b.lineStarts[line]
	if b.offsetUnit == OffsetRunes {
		return Position{Line: line, Offset: idx - start}
	}
	return Position{Line: line, Offset: measure(b.text.Slice(start, idx), b.offsetUnit)}
}

// Read Operations

// Text returns the full buffer content with LF line endings.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.String()
}

// Encoded returns the full buffer content using the buffer's line ending.
func (b *Buffer) Encoded() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	text := b.text.String()
	if b.lineEnding == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", b.lineEnding.Sequence())
}

// Len returns the total number of runes in the buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.Len()
}

// LineCount returns the number of lines. An empty buffer has one line,
// and a trailing newline starts a final empty line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lineStarts)
}

// LineText returns the text of a specific line (without newline).
// The second result is false if the line does not exist.
func (b *Buffer) LineText(line int) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.hasLine(line) {
		return "", false
	}
	start, end := b.lineBounds(line)
	return b.text.Slice(start, end), true
}

// LineLength returns the number of characters on a line (without newline).
// The second result is false if the line does not exist.
func (b *Buffer) LineLength(line int) (int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.hasLine(line) {
		return 0, false
	}
	start, end := b.lineBounds(line)
	if b.offsetUnit == OffsetRunes {
		return end - start, true
	}
	return measure(b.text.Slice(start, end), b.offsetUnit), true
}

// InBounds reports whether p addresses a character on an existing line,
// or the end-of-line slot just after its last character.
func (b *Buffer) InBounds(p Position) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.index(p)
	return ok
}

// TextRange returns the text between two positions.
func (b *Buffer) TextRange(r Range) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start, end, err := b.resolve(r)
	if err != nil {
		return "", err
	}
	return b.text.Slice(start, end), nil
}

// End returns the position just past the last character.
func (b *Buffer) End() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.position(b.text.Len())
}

// resolve converts a range to rune indices. Caller must hold a lock.
func (b *Buffer) resolve(r Range) (int, int, error) {
	if !r.IsValid() {
		return 0, 0, ErrRangeInvalid
	}
	start, ok := b.index(r.Start)
	if !ok {
		return 0, 0, ErrPositionOutOfRange
	}
	end, ok := b.index(r.End)
	if !ok {
		return 0, 0, ErrPositionOutOfRange
	}
	return start, end, nil
}

// Write Operations

// Insert inserts text at the given position.
// Returns the position just after the inserted text.
func (b *Buffer) Insert(p Position, text string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, ok := b.index(p)
	if !ok {
		return Position{}, ErrPositionOutOfRange
	}

	runes := []rune(normalizeLineEndings(text))
	b.text.Insert(idx, runes)
	b.rebuildLines()
	b.revisionID = NewRevisionID()

	return b.position(idx + len(runes)), nil
}

// Delete removes the text in the given range.
func (b *Buffer) Delete(r Range) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end, err := b.resolve(r)
	if err != nil {
		return err
	}

	b.text.Delete(start, end)
	b.rebuildLines()
	b.revisionID = NewRevisionID()
	return nil
}

// Replace replaces the text in the given range with new text.
// Returns the position just after the replacement text.
func (b *Buffer) Replace(r Range, text string) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end, err := b.resolve(r)
	if err != nil {
		return Position{}, err
	}

	runes := []rune(normalizeLineEndings(text))
	b.text.Delete(start, end)
	b.text.Insert(start, runes)
	b.rebuildLines()
	b.revisionID = NewRevisionID()

	return b.position(start + len(runes)), nil
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end, err := b.resolve(edit.Range)
	if err != nil {
		return EditResult{}, err
	}

	oldText := b.text.Slice(start, end)
	runes := []rune(normalizeLineEndings(edit.NewText))
	b.text.Delete(start, end)
	b.text.Insert(start, runes)
	b.rebuildLines()
	b.revisionID = NewRevisionID()

	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: b.position(start + len(runes))},
		OldText:  oldText,
		Delta:    len(runes) - (end - start),
	}, nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.Len() == 0
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the buffer's line ending style.
// Stored content is unaffected; only Encoded output changes.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// OffsetUnit returns what one offset step counts in this buffer.
func (b *Buffer) OffsetUnit() OffsetUnit {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.offsetUnit
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return newSnapshot(b.text.String(), b.revisionID, b.lineEnding, b.offsetUnit)
}
