package utils

import "fmt"

// APIError membawa status HTTP bersama pesan yang aman untuk klien.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(code int, format string, args ...interface{}) *APIError {
	return &APIError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// BadRequest -> 400 (validasi / state konflik)
func BadRequest(format string, args ...interface{}) *APIError {
	return NewAPIError(400, format, args...)
}

// NotFound -> 404
func NotFound(format string, args ...interface{}) *APIError {
	return NewAPIError(404, format, args...)
}
