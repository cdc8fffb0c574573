package errors

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned by the request client when the backend
// answers 401. The client has already cleared the session and notified the
// user; callers must treat it as "request aborted", not as a failure to
// report again.
var ErrSessionExpired = errors.New("session expired")

// ErrValidation is returned by form controllers when a draft fails local
// validation. No request has been issued.
var ErrValidation = errors.New("validation failed")

// APIError is a non-2xx, non-401 backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// NewAPIError builds an APIError from a status code and the backend's
// best-effort message field (may be empty).
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// IsSessionExpired reports whether err is the 401 sentinel.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
