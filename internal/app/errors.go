// Package app runs scribe: it loads configuration and content, places a
// cursor, and drives it through a sequence of motions.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrUnknownMotion indicates a motion name that cannot be parsed.
	ErrUnknownMotion = errors.New("unknown motion")

	// ErrInvalidStart indicates the starting position could not be parsed.
	ErrInvalidStart = errors.New("invalid start position")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "load config", "read")
	Target string // Target of the operation (e.g., file path, motion)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StepError reports which step of a motion script failed to parse.
type StepError struct {
	Index int    // Zero-based index into the script
	Step  string // The step as written
	Err   error  // Underlying error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d %q: %v", e.Index+1, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
