package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code and a client-safe message.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates a new HTTPError. The code defaults to the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
