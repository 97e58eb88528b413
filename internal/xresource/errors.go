package xresource

import (
	"fmt"

	xerrors "github.com/tomas-polach/ecs-composex/internal/errors"
)

// LookupError reports a requested output key with no matching attribute on a
// resource. It is fatal to the current registration: the configuration is
// invalid and must be surfaced to the user.
type LookupError struct {
	ModuleName   string
	ResourceName string
	Key          string
	ValidKeys    []string
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s.%s - ReturnValue %s not found. Available: %v",
		e.ModuleName, e.ResourceName, e.Key, e.ValidKeys)
}

// Unwrap ties LookupError into the shared lookup sentinel so callers can use
// errors.Is.
func (e *LookupError) Unwrap() error {
	return xerrors.ErrLookup
}

// NewLookupError builds a LookupError for an unmatched key on a resource.
func NewLookupError(r *Resource, key string) *LookupError {
	return &LookupError{
		ModuleName:   r.ModuleName,
		ResourceName: r.Name,
		Key:          key,
		ValidKeys:    r.OutputTitles(),
	}
}
