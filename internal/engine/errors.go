package engine

import (
	"errors"

	"github.com/dshills/scribe/internal/engine/buffer"
)

// Errors returned by engine operations.
var (
	// ErrPositionOutOfRange indicates a position is outside the buffer's content.
	ErrPositionOutOfRange = buffer.ErrPositionOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end before start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrCursorNotFound indicates no cursor is registered under the given ID.
	ErrCursorNotFound = errors.New("cursor not found")

	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)
