package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid compose or x-cloudmap declaration.
	ErrValidation = errors.New("validation error")

	// ErrLookup indicates a requested key has no matching resource output
	// or AWS-side counterpart.
	ErrLookup = errors.New("lookup error")

	// ErrAWS indicates a failure talking to the AWS APIs during resource
	// resolution.
	ErrAWS = errors.New("aws error")
)
