// Package apperr defines the HTTP error taxonomy shared by the service
// layer and the route handlers. Every Error carries the status code it
// should be served with; the generic responder turns anything else into
// a 500 with the underlying message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error with a fixed HTTP status. Message is either a string
// or a list of strings (schema validation failures).
type Error struct {
	Message any
	Status  int
}

func (e *Error) Error() string {
	switch m := e.Message.(type) {
	case string:
		return m
	case []string:
		if len(m) > 0 {
			return m[0]
		}
		return http.StatusText(e.Status)
	default:
		return fmt.Sprint(m)
	}
}

// BadRequest reports a 400. Message may be a string or a []string of
// validation messages.
func BadRequest(message any) *Error {
	if message == nil {
		message = "Bad Request"
	}
	return &Error{Message: message, Status: http.StatusBadRequest}
}

// Unauthorized reports a 401.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return &Error{Message: message, Status: http.StatusUnauthorized}
}

// Forbidden reports a 403. Reserved: no current route raises it.
func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return &Error{Message: message, Status: http.StatusForbidden}
}

// NotFound reports a 404.
func NotFound(message string) *Error {
	if message == "" {
		message = "Not Found"
	}
	return &Error{Message: message, Status: http.StatusNotFound}
}

// From extracts the status and message to serve for err. Errors without a
// declared status map to 500 with their own message.
func From(err error) (int, any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, err.Error()
}
