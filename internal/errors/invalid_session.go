package errors

import "net/http"

var ErrInvalidSession = &Exception{
	Message:    "invalid or expired session",
	StatusCode: http.StatusUnauthorized,
}
