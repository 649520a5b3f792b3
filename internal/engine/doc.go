// Package engine ties a shared text buffer to the cursors that navigate it.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - buffer: gap-buffer text store with Position, bounds and line queries
//   - cursor: bounds-checked cursor with sticky vertical movement
//
// An Engine owns one buffer and a registry of cursors keyed by CursorID.
// Every cursor holds the same *buffer.Buffer, so an edit made through the
// engine (or by any other holder of the buffer) is visible to every cursor
// on its next move. Cursors are never adjusted when the text changes.
//
// # Thread Safety
//
// All Engine operations are thread-safe. The buffer guards its content with
// a read-write mutex, and the engine serializes registry access and cursor
// movement with its own mutex. A *cursor.Cursor obtained through Cursor()
// is not synchronized.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("First line that is longer.\nThis is a test.\nAnother line that is longer."))
//
//	id := e.AddCursor(2, 20)
//	e.Move(id, cursor.MotionUp) // (1:15), line 1 is shorter
//	e.Move(id, cursor.MotionUp) // (0:20), original offset restored
//
//	e.Insert(engine.Position{Line: 1, Offset: 15}, " More.")
//
// # Loading Files
//
//	f, _ := os.Open("file.txt")
//	defer f.Close()
//	e, _ := engine.NewFromReader(f)
package engine
