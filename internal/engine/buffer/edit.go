package buffer

import "fmt"

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(p Position, text string) Edit {
	return Edit{Range: Range{Start: p, End: p}, NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end Position) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%s, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range)
	}
	return fmt.Sprintf("Replace(%s, %q)", e.Range, e.NewText)
}

// EditResult contains information about a completed edit.
type EditResult struct {
	OldRange Range  // Range that was replaced
	NewRange Range  // Range covered by the new text
	OldText  string // Text that was replaced
	Delta    int    // Change in length, in runes
}
