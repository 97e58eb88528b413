package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"validation sentinel", fmt.Errorf("bad: %w", xerrors.ErrValidation), ExitValidationError},
		{"lookup sentinel", fmt.Errorf("gone: %w", xerrors.ErrLookup), ExitNotFound},
		{"aws sentinel", fmt.Errorf("denied: %w", xerrors.ErrAWS), ExitAWSError},
		{"exit error wins", NewExitError(fmt.Errorf("bad: %w", xerrors.ErrValidation), ExitAWSError), ExitAWSError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := xerrors.NewValidationError("bad zone", "x-cloudmap.internal", "")
	err := NewExitError(cause, ExitValidationError)

	assert.ErrorIs(t, err, xerrors.ErrValidation)
	assert.Equal(t, cause.Error(), err.Error())
}

func TestWrapRunError(t *testing.T) {
	assert.Nil(t, wrapRunError(nil))

	err := wrapRunError(fmt.Errorf("gone: %w", xerrors.ErrLookup))
	var exitErr *ExitError
	assert.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
