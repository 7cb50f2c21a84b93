// Package errors collects the error helpers used across cdoexpr. Plain errors
// come from fmt, wrapping and stack traces from github.com/pkg/errors, and
// domain failures carry a Reason so callers can tell them apart.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorf is re-exported from fmt
var Errorf = fmt.Errorf

// New is an alias to Errorf
var New = Errorf

// WrapfOrNil annotates err with a message, or returns nil if err is nil.
func WrapfOrNil(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}

// Wrapf is WrapfOrNil if err != nil, and Errorf otherwise: it never returns nil
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return WrapfOrNil(err, format, args...)
}

// Reasonf builds an error tagged with the given reason.
func Reasonf(r Reason, format string, args ...interface{}) error {
	return reasonError{
		reason: r,
		msg:    fmt.Sprintf(format, args...),
	}
}

type reasonError struct {
	reason Reason
	msg    string
}

func (e reasonError) Error() string {
	return e.reason.String() + ": " + e.msg
}

func (e reasonError) Reason() Reason {
	return e.reason
}

// Is reports a match against the bare Reason value, so errors.Is(err, NonMonotonic) works.
func (e reasonError) Is(target error) bool {
	r, ok := target.(Reason)
	return ok && r == e.reason
}
