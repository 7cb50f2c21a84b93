package errors

import "fmt"

// Reason identifies why a translation failed. A Reason is also a valid error value.
type Reason int

// List of failure reasons.
const (
	// Unknown error reason.
	Unknown Reason = iota
	// NonMonotonic bins are neither strictly increasing nor strictly decreasing.
	NonMonotonic
	// IndexCount is a map index list that is not one longer than the bins.
	IndexCount
	// EmptyInput is an input with nothing to translate.
	EmptyInput
	// Unbalanced if/else keywords in a conditional block.
	Unbalanced
	// ConditionCount is a keyword stream that needs more conditions than were parsed.
	ConditionCount
	// LeafCount is a tree whose leaves do not match the parsed value lines.
	LeafCount
	// MissingNode is a dump that references a node id it never defines.
	MissingNode
	// NodeCycle is a dump whose child ids loop back to an ancestor.
	NodeCycle
	// MixedTargets is a conditional block assigning to more than one name.
	MixedTargets
	// UnknownMode is an ensemble mode that is not recognized.
	UnknownMode
)

var reasonString = map[Reason]string{
	Unknown:        "unknown",
	NonMonotonic:   "bins not monotonic",
	IndexCount:     "map index count mismatch",
	EmptyInput:     "empty input",
	Unbalanced:     "unbalanced if/else",
	ConditionCount: "condition count mismatch",
	LeafCount:      "leaf count mismatch",
	MissingNode:    "missing node",
	NodeCycle:      "node cycle",
	MixedTargets:   "mixed assignment targets",
	UnknownMode:    "unknown ensemble mode",
}

// String representation of a Reason.
func (r Reason) String() string {
	if s, ok := reasonString[r]; ok {
		return s
	}
	return fmt.Sprintf("invalid reason (%d)", r)
}

// Error returns the string representation of the Reason
// as error message.
func (r Reason) Error() string {
	return r.String()
}

// Reason returns itself as the error Reason.
func (r Reason) Reason() Reason {
	return r
}

// ErrorReason returns the reason attached to err. Wrapped errors are unwrapped
// through both Cause() and Unwrap(), and every member of an Errors list is
// checked; the first known reason wins. It returns Unknown otherwise.
func ErrorReason(err error) Reason {
	for err != nil {
		if rr, ok := err.(interface{ Reason() Reason }); ok {
			return rr.Reason()
		}
		if errs, ok := err.(Errors); ok {
			for _, e := range errs.sliceNoCopy() {
				if r := ErrorReason(e); r != Unknown {
					return r
				}
			}
			return Unknown
		}
		switch e := err.(type) {
		case interface{ Cause() error }:
			err = e.Cause()
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		default:
			return Unknown
		}
	}
	return Unknown
}
