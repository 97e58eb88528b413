package cmd

import (
	"errors"

	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
)

// ExitError wraps an error with an exit code. Printed marks errors the
// command layer has already reported, so main does not print them twice.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, xerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, xerrors.ErrLookup):
		return ExitNotFound
	case errors.Is(err, xerrors.ErrAWS):
		return ExitAWSError
	default:
		return ExitGeneralError
	}
}

// wrapRunError maps a synthesis error onto its exit code, keeping the
// original error chain intact.
func wrapRunError(err error) error {
	if err == nil {
		return nil
	}
	return NewExitError(err, ExitCodeFromError(err))
}
