// Package xerrors provides structured error types for the parlay toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Aggregation of validation failures into a single error value
//
// # Error Codes
//
// Error codes name the failing stage or rule:
//   - PARSE_ERROR: malformed surface text in any of the three notations
//   - CANNOT_REPRESENT: a conversion target cannot express the source graph
//   - MISSING_DEPENDENCY / CIRCULAR_DEPENDENCY: validator findings
//
// # Usage
//
//	err := xerrors.New(xerrors.CodeParse, "unexpected %q at offset %d", ch, off)
//	if xerrors.Is(err, xerrors.CodeParse) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := xerrors.Wrap(xerrors.CodeRender, origErr, "render %s", path)
package xerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Surface and conversion errors
	CodeParse           Code = "PARSE_ERROR"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeCannotRepresent Code = "CANNOT_REPRESENT"

	// Validator findings
	CodeMissingDependency  Code = "MISSING_DEPENDENCY"
	CodeCircularDependency Code = "CIRCULAR_DEPENDENCY"

	// Output errors
	CodeRender Code = "RENDER_ERROR"

	// Unexpected internal errors
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// List aggregates multiple structured errors into one error value.
// The validator uses it to report every violation in a single pass
// instead of stopping at the first one.
type List []*Error

// Error concatenates the messages of all contained errors, one per line.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Filter returns the subset of errors carrying the given code.
// The relative order of the input is preserved.
func (l List) Filter(code Code) List {
	var out List
	for _, e := range l {
		if e.Code == code {
			out = append(out, e)
		}
	}
	return out
}
