package syclop

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the categories described in spec §7.
const (
	// Configuration errors, reported at setup as fatal.
	ErrCodeInvalidDecomposition Code = "INVALID_DECOMPOSITION"
	ErrCodeInvalidProbability   Code = "INVALID_PROBABILITY"
	ErrCodeInvalidCount         Code = "INVALID_COUNT"
	ErrCodeInvalidExtender      Code = "INVALID_EXTENDER"

	// Insufficient-input errors, non-fatal: callers may retry after adding
	// start/goal states.
	ErrCodeNoValidStarts Code = "NO_VALID_STARTS"
	ErrCodeNoGoalRegion  Code = "NO_GOAL_REGION"
)

// Error is a structured error with a machine-readable code and an optional
// wrapped cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error with the given code, wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
