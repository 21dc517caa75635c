package backend

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is against these to classify a failed call.
var (
	ErrNetwork = errors.New("backend unreachable")
	ErrTimeout = errors.New("backend timed out")
	ErrStatus  = errors.New("backend returned error status")
	ErrDecode  = errors.New("malformed backend response")
)

// Error describes a failed backend call.
type Error struct {
	Kind   error
	Method string
	Path   string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StatusCode returns the HTTP status of a failed call, or 0 when the failure
// happened before a response was received.
func StatusCode(err error) int {
	var be *Error
	if errors.As(err, &be) {
		return be.Status
	}
	return 0
}
