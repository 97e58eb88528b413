// Package errors provides sentinel errors and structured error values for
// the composex CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for user-facing
// configuration failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the compose file path or resource path (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// WithCause chains an underlying error while keeping the sentinel cause
// reachable through errors.Is.
func (e *DetailError) WithCause(cause error) *DetailError {
	if cause != nil {
		e.Cause = fmt.Errorf("%w: %w", e.Cause, cause)
	}
	return e
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) *DetailError {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewAWSError creates an AWS interaction error with details.
func NewAWSError(message string, context map[string]string, hint string) *DetailError {
	return &DetailError{
		Type:    "aws call failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrAWS,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
