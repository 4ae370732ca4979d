package errors

import (
	"net/http"
	"strings"
)

// NewValidation wraps field-level validation failures into a single
// bad-request exception. Nothing is persisted when one of these is returned.
func NewValidation(fields ...string) *Exception {
	return &Exception{
		Message:    strings.Join(fields, "; "),
		StatusCode: http.StatusBadRequest,
	}
}

// IsValidation reports whether err is a bad-request class exception.
func IsValidation(err error) bool {
	return StatusCode(err) == http.StatusBadRequest
}
