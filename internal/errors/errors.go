package errors

import "fmt"

// ErrorCode represents the CLI exit codes
type ErrorCode int

const (
	// CodeGeneric represents a generic failure (code 1)
	CodeGeneric ErrorCode = 1
	// CodeUsage represents invalid arguments or flag combinations (code 2)
	CodeUsage ErrorCode = 2
	// CodeAPIFailure represents a request the exaroton API rejected (code 3)
	CodeAPIFailure ErrorCode = 3
	// CodeAuth represents a missing, invalid or expired API token (code 4)
	CodeAuth ErrorCode = 4
	// CodeNoProfile represents commands executed without any stored profile (code 5)
	CodeNoProfile ErrorCode = 5
)

// CLIError represents a CLI error with a specific exit code
type CLIError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewGenericError creates a new generic error (code 1)
func NewGenericError(message string, cause error) *CLIError {
	return &CLIError{
		Code:    CodeGeneric,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates a new usage error (code 2)
func NewUsageError(message string) *CLIError {
	return &CLIError{
		Code:    CodeUsage,
		Message: message,
	}
}

// NewAPIError creates a new API failure error (code 3)
func NewAPIError(message string, cause error) *CLIError {
	return &CLIError{
		Code:    CodeAPIFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewAuthError creates a new authentication error (code 4)
func NewAuthError(message string, cause error) *CLIError {
	return &CLIError{
		Code:    CodeAuth,
		Message: message,
		Cause:   cause,
	}
}

// NewProfileError creates a new missing-profile error (code 5)
func NewProfileError(message string) *CLIError {
	return &CLIError{
		Code:    CodeNoProfile,
		Message: message,
	}
}
