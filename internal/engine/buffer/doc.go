// Package buffer provides a thread-safe, line-addressable text store built
// on a gap buffer. It is the text store that cursors navigate.
//
// The buffer package provides:
//
//   - Position, a (line, offset) coordinate with a line-major total order
//   - Bounds and line-length queries used by cursor movement
//   - Insert, delete and replace by position
//   - Offsets counted in runes or in grapheme clusters
//   - Line ending normalization on input
//   - Read-only snapshots for concurrent access
//   - Revision tracking for change management
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello\nWorld")
//
//	buf.InBounds(buffer.Position{Line: 1, Offset: 5}) // true: end of "World"
//	buf.InBounds(buffer.Position{Line: 1, Offset: 6}) // false
//
//	n, ok := buf.LineLength(0) // 5, true
//
//	buf.Insert(buffer.Position{Line: 0, Offset: 5}, ",")
//
// Lines:
//
// Content is split on "\n". An empty buffer has one empty line, and a
// trailing newline starts a final empty line. CRLF and CR are converted
// to LF when text enters the buffer; Encoded renders the buffer's
// configured line ending on the way out.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock. For scenarios
// requiring multiple reads without the possibility of intervening writes,
// use Snapshot() to obtain a consistent read-only view.
package buffer
