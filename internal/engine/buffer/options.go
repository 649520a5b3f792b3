package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the line ending style used when the buffer's
// content is encoded for output. Content is always stored with LF.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithLF configures the buffer to use Unix line endings (\n).
func WithLF() Option {
	return WithLineEnding(LineEndingLF)
}

// WithCRLF configures the buffer to use Windows line endings (\r\n).
func WithCRLF() Option {
	return WithLineEnding(LineEndingCRLF)
}

// WithCR configures the buffer to use old Mac line endings (\r).
func WithCR() Option {
	return WithLineEnding(LineEndingCR)
}

// WithOffsetUnit sets what a single offset step counts.
func WithOffsetUnit(unit OffsetUnit) Option {
	return func(b *Buffer) {
		b.offsetUnit = unit
	}
}

// WithGraphemeOffsets measures offsets in grapheme clusters.
func WithGraphemeOffsets() Option {
	return WithOffsetUnit(OffsetGraphemes)
}

// WithGapSize sets the initial gap capacity of the underlying storage.
func WithGapSize(size int) Option {
	return func(b *Buffer) {
		if size > 0 {
			b.gapSize = size
		}
	}
}

// DetectLineEnding returns a LineEnding based on the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	cr := strings.Count(text, "\r") - crlf
	lf := strings.Count(text, "\n") - crlf

	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// WithDetectedLineEnding sets the buffer's line ending style based on content.
func WithDetectedLineEnding(text string) Option {
	return WithLineEnding(DetectLineEnding(text))
}
