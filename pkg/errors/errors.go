// Package errors provides structured error types for the dataplot tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the serve mode
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the tool's failure taxonomy: usage errors (bad flags,
// uncompilable patterns, bad style strings), file read errors, and render
// errors. Lines lacking enough numeric tokens are not errors at all; they
// are skipped and counted.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUsage, "invalid legend position %q", pos)
//	if errors.Is(err, errors.ErrCodeUsage) {
//	    // Handle usage error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileRead, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeUsage covers malformed flags, uncompilable regex patterns,
	// and unknown style or legend strings. No partial output is written.
	ErrCodeUsage Code = "USAGE_ERROR"

	// ErrCodeFileRead covers input paths that cannot be opened or read.
	ErrCodeFileRead Code = "FILE_READ_ERROR"

	// ErrCodeRender covers unwritable output paths and image formats the
	// drawing backend does not support.
	ErrCodeRender Code = "RENDER_ERROR"
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
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
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
// For *Error types, returns the message without the cause chain.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
