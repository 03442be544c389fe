package handler

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

var (
	// ErrNilResponse is reported when a handler returns a nil Response.
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError carries an HTTP status code and a stable machine-readable key.
type HTTPError struct {
	Code int
	Key  string
}

// Error implements error.
func (e HTTPError) Error() string { return e.Key }

// Message returns the standard status text for the code.
func (e HTTPError) Message() string { return http.StatusText(e.Code) }

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable   = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// ValidationError maps field names to their validation messages.
type ValidationError url.Values

// NewValidationError returns an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add appends a message for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether field has any messages.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// Error lists the first message of every field, sorted by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
