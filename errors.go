package jsonpath

import (
	"errors"
	"fmt"
)

// Error is the single diagnostic type the package raises. Parse errors
// carry Input and a byte Offset into it; evaluation errors (which should
// be unreachable against a well-typed AST) carry neither.
type Error struct {
	Message string
	Input   string
	Offset  int

	hasOffset bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.hasOffset {
		return fmt.Sprintf("jsonpath: %s (offset %d)", e.Message, e.Offset)
	}
	return fmt.Sprintf("jsonpath: %s", e.Message)
}

func parseErrorf(input string, offset int, format string, args ...any) *Error {
	return &Error{
		Message:   fmt.Sprintf(format, args...),
		Input:     input,
		Offset:    offset,
		hasOffset: true,
	}
}

func evalErrorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// AsError reports whether err is (or wraps) a *jsonpath.Error, returning it
// when so.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
