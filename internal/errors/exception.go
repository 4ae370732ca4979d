package errors

import (
	"errors"
	"net/http"
)

// Exception is a typed result for expected failures: not-found lookups,
// rejected input, invalid sessions. Callers branch on the class via
// StatusCode instead of string matching.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode maps an error to its HTTP class; anything untyped is a 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
