package errors

import (
	"strings"
)

// Errors is a non-empty list of errors. A nil Errors means no error occurred,
// so callers compare against nil exactly as they would for a single error.
type Errors interface {
	error
	// Slice returns a copy of the underlying (non-nil) errors.
	Slice() []error
	// Len is always > 0.
	Len() int

	sliceNoCopy() []error
	append(e error) Errors
}

type errorList []error

func (l errorList) append(e error) Errors {
	return errorList(append(l, e))
}

func (l errorList) sliceNoCopy() []error {
	return []error(l)
}

func (l errorList) Slice() []error {
	return append([]error(nil), l...)
}

func (l errorList) Len() int {
	return len(l)
}

func (l errorList) Error() string {
	msgs := make([]string, 0, len(l))
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Append adds err (possibly nil) to errs (possibly nil). A nil err leaves errs
// unchanged; an Errors err is flattened into errs.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	if errs == nil {
		errs = errorList(nil)
	}
	if nested, _ := err.(Errors); nested != nil {
		for _, e := range nested.sliceNoCopy() {
			errs = errs.append(e)
		}
		return errs
	}
	return errs.append(err)
}

// combine merges e and f into a single error, returning nil if both are nil.
func combine(e, f error) error {
	switch e := e.(type) {
	case nil:
		return f
	case Errors:
		// copy e so the caller's backing array is not shared
		return Append(errorList(e.Slice()), f)
	default:
		if f == nil {
			return e
		}
		return Append(errorList{e}, f)
	}
}

// Defer runs f and merges its error into *err, for deferred Close calls:
//
//	defer errors.Defer(&err, f.Close)
func Defer(err *error, f func() error) {
	*err = combine(*err, f())
}
