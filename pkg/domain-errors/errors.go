// Package domainerrors provides coded errors for domain invariant and input
// validation failures. Infrastructure facts (not found, concurrent
// modification) live in pkg/platform/sentinel; this package is for errors the
// domain model itself raises.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error so callers can branch on the kind of
// violation without string matching.
type Code string

const (
	// CodeInvalidInput marks a rejected argument: nil or blank required
	// fields, malformed parse input.
	CodeInvalidInput Code = "invalid_input"

	// CodeValidation marks a payload that could not be mapped back to a
	// domain object (reconstruction from external data).
	CodeValidation Code = "validation"

	// CodeInvariantViolation marks a state change that would break a domain
	// invariant, such as a death date preceding a birth date.
	CodeInvariantViolation Code = "invariant_violation"

	// CodeNotFound marks a lookup miss surfaced at the domain layer.
	CodeNotFound Code = "not_found"

	// CodeConflict marks a detected conflicting mutation.
	CodeConflict Code = "conflict"

	// CodeUnsupported marks an operation a specialized type disables.
	CodeUnsupported Code = "unsupported"

	// CodeInternal marks a failure that is not the caller's fault.
	CodeInternal Code = "internal"
)

// Error is a domain error with a classification code. It supports errors.Is /
// errors.As and unwraps to its cause when created via Wrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message while preserving it for
// errors.Is / errors.Unwrap. Returns nil when err is nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in err's chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		if err == nil {
			return false
		}
	}
	return false
}

// Is is shorthand for HasCode, mirroring the errors.Is call shape.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of the outermost domain error in err's chain, or
// CodeInternal when err carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
