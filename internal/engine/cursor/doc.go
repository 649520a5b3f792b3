// Package cursor provides a bounds-checked cursor for navigating a shared
// text store.
//
// The cursor package handles:
//
//   - Absolute moves validated against the store (MoveTo)
//   - Directional moves: up, down, left, right, line start, line end
//   - Sticky offsets that survive vertical moves across short lines
//   - Named motions (Motion) for callers that drive cursors from input
//
// Sticky Offsets:
//
// Moving vertically tries to keep the offset the cursor last settled on.
// When the destination line is too short the cursor lands at its end, but
// the intended offset is kept, so continuing onto a longer line returns to
// the original column:
//
//	First line that is longer.      <- (0:20) after the second MoveUp
//	This is a test.                 <- (1:15) after the first MoveUp
//	Another line that is longer.    <- start at (2:20)
//
// Rejected Moves:
//
// A move the store rejects leaves the cursor exactly where it was. MoveTo
// reports the rejection with its boolean result; the directional moves
// report nothing, since hitting the top of the document or the end of a
// line is routine.
//
// Thread Safety:
//
// The store is expected to be shared and to change between calls; a
// Cursor re-queries it on every move and caches nothing. A Cursor itself
// has no synchronization and should be protected by external locking if
// moved from multiple goroutines.
package cursor
