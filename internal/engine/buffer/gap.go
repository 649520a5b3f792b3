package buffer

// defaultGapSize is the initial gap capacity in runes.
const defaultGapSize = 64

// gapBuffer stores text as runes with a movable gap at the edit point.
// Runes in data[gapStart:gapEnd] are unused. Edits near the previous edit
// only shift the runes between the two points.
//
// gapBuffer is not safe for concurrent use; Buffer guards it.
type gapBuffer struct {
	data     []rune
	gapStart int
	gapEnd   int
}

// newGapBuffer creates a gap buffer holding s with the gap at the end.
func newGapBuffer(s string, gapSize int) *gapBuffer {
	if gapSize <= 0 {
		gapSize = defaultGapSize
	}
	runes := []rune(s)
	data := make([]rune, len(runes)+gapSize)
	copy(data, runes)
	return &gapBuffer{
		data:     data,
		gapStart: len(runes),
		gapEnd:   len(data),
	}
}

// Len returns the number of runes stored.
func (g *gapBuffer) Len() int {
	return len(g.data) - (g.gapEnd - g.gapStart)
}

// At returns the rune at logical index i.
func (g *gapBuffer) At(i int) rune {
	if i < g.gapStart {
		return g.data[i]
	}
	return g.data[i+g.gapEnd-g.gapStart]
}

// Insert inserts runes at logical index pos.
func (g *gapBuffer) Insert(pos int, runes []rune) {
	if len(runes) == 0 {
		return
	}
	g.moveGap(pos)
	g.grow(len(runes))
	copy(g.data[g.gapStart:], runes)
	g.gapStart += len(runes)
}

// Delete removes runes in the logical range [start, end).
func (g *gapBuffer) Delete(start, end int) {
	if start >= end {
		return
	}
	g.moveGap(start)
	g.gapEnd += end - start
}

// Slice returns the text in the logical range [start, end).
func (g *gapBuffer) Slice(start, end int) string {
	if start >= end {
		return ""
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		stop := min(end, g.gapStart)
		out = append(out, g.data[start:stop]...)
		start = stop
	}
	if start < end {
		shift := g.gapEnd - g.gapStart
		out = append(out, g.data[start+shift:end+shift]...)
	}
	return string(out)
}

// String returns the full content.
func (g *gapBuffer) String() string {
	return g.Slice(0, g.Len())
}

// moveGap relocates the gap so that it starts at logical index pos.
func (g *gapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		n := g.gapStart - pos
		copy(g.data[g.gapEnd-n:g.gapEnd], g.data[pos:g.gapStart])
		g.gapStart -= n
		g.gapEnd -= n
	case pos > g.gapStart:
		n := pos - g.gapStart
		copy(g.data[g.gapStart:g.gapStart+n], g.data[g.gapEnd:g.gapEnd+n])
		g.gapStart += n
		g.gapEnd += n
	}
}

// grow ensures the gap can hold at least need runes.
func (g *gapBuffer) grow(need int) {
	if g.gapEnd-g.gapStart >= need {
		return
	}
	size := 2*len(g.data) + need
	data := make([]rune, size)
	copy(data, g.data[:g.gapStart])
	tail := len(g.data) - g.gapEnd
	copy(data[size-tail:], g.data[g.gapEnd:])
	g.data = data
	g.gapEnd = size - tail
}
