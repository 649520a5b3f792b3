package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// OffsetUnit selects what one step of Position.Offset counts.
type OffsetUnit uint8

const (
	// OffsetRunes counts Unicode code points.
	OffsetRunes OffsetUnit = iota
	// OffsetGraphemes counts user-perceived characters (grapheme clusters),
	// so "e" followed by a combining accent is a single step.
	OffsetGraphemes
)

// String returns the config name of the unit.
func (u OffsetUnit) String() string {
	switch u {
	case OffsetRunes:
		return "rune"
	case OffsetGraphemes:
		return "grapheme"
	default:
		return "unknown"
	}
}

// ParseOffsetUnit parses "rune" or "grapheme".
func ParseOffsetUnit(s string) (OffsetUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rune", "runes":
		return OffsetRunes, nil
	case "grapheme", "graphemes":
		return OffsetGraphemes, nil
	default:
		return OffsetRunes, fmt.Errorf("unknown offset unit %q", s)
	}
}

// measure returns the length of line in the given unit.
func measure(line string, unit OffsetUnit) int {
	if unit == OffsetGraphemes {
		return uniseg.GraphemeClusterCount(line)
	}
	return utf8.RuneCountInString(line)
}

// runesForOffset returns how many runes of line precede the given offset.
// The second result is false if line is shorter than offset.
func runesForOffset(line string, offset int, unit OffsetUnit) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	if unit != OffsetGraphemes {
		if offset > utf8.RuneCountInString(line) {
			return 0, false
		}
		return offset, true
	}

	runes, n := 0, 0
	g := uniseg.NewGraphemes(line)
	for n < offset && g.Next() {
		runes += len(g.Runes())
		n++
	}
	if n < offset {
		return 0, false
	}
	return runes, true
}
