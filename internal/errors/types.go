// Package errors defines the structured error types used across the
// generator: validation failures, filesystem failures, marker corruption,
// and non-fatal external-fetch warnings.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeMarker     ErrorType = "marker"
	ErrorTypeFetch      ErrorType = "fetch"
	ErrorTypeInternal   ErrorType = "internal"
)

// LayoutError is a structured error type with context.
type LayoutError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Path        string
	Recoverable bool
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *LayoutError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *LayoutError) Is(target error) bool {
	var t *LayoutError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithPath attaches the filesystem path the error refers to.
func (e *LayoutError) WithPath(path string) *LayoutError {
	e.Path = path

	return e
}

// NewValidationError creates a validation error. Validation errors are
// fatal: they are reported before any filesystem mutation happens.
func NewValidationError(code, message string) *LayoutError {
	return &LayoutError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewIOError creates an I/O error scoped to a single node.
func NewIOError(code, message string, cause error) *LayoutError {
	return &LayoutError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewMarkerError creates a marker-corruption error. The target file is
// left untouched; there is no safe automatic repair.
func NewMarkerError(code, message string) *LayoutError {
	return &LayoutError{
		Type:        ErrorTypeMarker,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewFetchWarning creates a non-fatal external-fetch warning.
func NewFetchWarning(code, message string, cause error) *LayoutError {
	return &LayoutError{
		Type:        ErrorTypeFetch,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *LayoutError {
	return &LayoutError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsType reports whether err is a LayoutError of the given type.
func IsType(err error, t ErrorType) bool {
	var le *LayoutError
	if errors.As(err, &le) {
		return le.Type == t
	}

	return false
}
