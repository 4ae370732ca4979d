package errors

import "net/http"

var ErrInvalidFilter = &Exception{
	Message:    "unknown filter category",
	StatusCode: http.StatusBadRequest,
}
