package exaroton

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error reported by the remote API, either as an HTTP error
// status or as a {success: false} envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exaroton: API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("exaroton: %s (status %d)", e.Message, e.StatusCode)
}

func newAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

// IsNotFound reports whether err is an API error for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API error for a rejected or
// insufficient API token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}
