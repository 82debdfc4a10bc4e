package filter

import (
	"errors"
	"fmt"
)

// ErrOperationFailed is matched by every *Error.
var ErrOperationFailed = errors.New("filter operation failed")

// Error is the single error kind reported by filters in this module.
type Error struct {
	Message string
	// Err is the underlying cause, typically a package level sentinel of the
	// concrete filter. It may be nil.
	Err error
}

// New returns an *Error carrying msg and no underlying cause.
func New(msg string) *Error {
	return &Error{Message: msg}
}

// Wrap returns an *Error with a formatted message and err as its cause.
func Wrap(err error, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "filter: " + e.Message
	}
	return "filter: " + e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrOperationFailed}
	}
	return []error{ErrOperationFailed, e.Err}
}
