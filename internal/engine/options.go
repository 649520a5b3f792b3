package engine

import (
	"github.com/dshills/scribe/internal/engine/buffer"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithLineEnding sets the line ending style for the engine.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.bufOpts = append(e.bufOpts, buffer.WithLineEnding(ending))
	}
}

// WithOffsetUnit sets what one offset step counts.
func WithOffsetUnit(unit buffer.OffsetUnit) Option {
	return func(e *Engine) {
		e.bufOpts = append(e.bufOpts, buffer.WithOffsetUnit(unit))
	}
}

// WithBufferOptions passes options through to the underlying buffer.
func WithBufferOptions(opts ...buffer.Option) Option {
	return func(e *Engine) {
		e.bufOpts = append(e.bufOpts, opts...)
	}
}

// WithLogger sets the logger used for cursor lifecycle messages.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly; cursors still move.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
