// Package cmd provides command implementations for the composex CLI.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates compose file validation failed.
	ExitValidationError = 2

	// ExitAWSError indicates an AWS API call failed.
	ExitAWSError = 3

	// ExitNotFound indicates a namespace, resource or attribute was not
	// found.
	ExitNotFound = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitAWSError:
		return "AWS Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
