package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting has an unsupported value.
	ErrValidationFailed = errors.New("validation failed")

	errUnknownLevel = errors.New("unknown log level")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a setting with an unsupported value.
type ValidationError struct {
	// Setting is the dotted setting path, e.g. "buffer.line_ending".
	Setting string
	// Value is the rejected value.
	Value string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Setting, e.Err)
}

// Unwrap returns ErrValidationFailed so callers can match any validation error.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidationFailed, e.Err}
}
