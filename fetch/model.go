package fetch

import (
	"errors"
	"fmt"
)

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [StatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrCallbackMismatch is the sentinel error wrapped by [CallbackError]
	// when a JSONP response body is not wrapped in the expected callback.
	ErrCallbackMismatch = errors.New("jsonp callback mismatch")
)

// StatusError is returned when the HTTP response status code
// is not 200 OK.
type StatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// CallbackError is returned when a JSONP response body cannot be
// unwrapped with the callback name the request carried.
type CallbackError struct {
	Callback string
	Body     string
	Err      error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("%v: expected %s(...), body: %s", e.Err, e.Callback, e.Body)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
