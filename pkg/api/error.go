package api

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when an error response carries no message field.
const DefaultErrorMessage = "an error occurred"

// ErrorResponse is the backend's error body shape.
// Every non-2xx response is expected to look like this.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"` // field-level validation complaints
}

// Error is the typed outcome of a non-2xx response. It always preserves
// the HTTP status and the backend's own message so callers can decide
// between showing the message and forcing re-authentication.
type Error struct {
	Message    string
	Errors     []string
	StatusCode int
}

func (e *Error) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("server error (%d): %s: %v", e.StatusCode, e.Message, e.Errors)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend,
// meaning the session is invalid and the caller should re-login.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// AckResponse is returned by endpoints that acknowledge an action
// without handing back a resource (message submission, deletes).
type AckResponse struct {
	Message string `json:"message"`
}
