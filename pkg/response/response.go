package response

import (
	"errors"
	"fmt"
)

// Error carries the HTTP status that a failure maps to. The same type is
// produced by server-side services and by the HTTP client when it decodes a
// non-2xx reply, so callers can branch on Code without caring which side of
// the wire the error came from.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

func NewErrorf(code int, format string, args ...interface{}) error {
	return &Error{code, fmt.Errorf(format, args...)}
}

// StatusOf returns the status code attached to err, or 0 when err is not a
// response error.
func StatusOf(err error) int {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return 0
}

// Detail returns the message of a response error, or "" for anything else.
func Detail(err error) string {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Err.Error()
	}
	return ""
}
