package buffer

import "fmt"

// Range represents a span of text between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position // Inclusive start position
	End   Position // Exclusive end position
}

// NewRange creates a new Range from start and end positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d-%d:%d)", r.Start.Line, r.Start.Offset, r.End.Line, r.End.Offset)
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start.BeforeOrEqual(r.End)
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return p.AfterOrEqual(r.Start) && p.Before(r.End)
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Normalize returns the range with Start and End swapped if needed.
func (r Range) Normalize() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}
