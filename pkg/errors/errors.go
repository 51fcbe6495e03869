// Package errors provides structured error types for itdepends.
//
// Every failure in the pipeline is fatal at the point of detection. The
// error code names the stage that failed so the CLI can report it:
//   - INPUT_ERROR: the tree file could not be read
//   - PARSE_ERROR: the tree document is malformed or incomplete
//   - NETWORK_ERROR: transport failure or non-success registry status
//   - RESPONSE_FORMAT_ERROR: the registry body has an unexpected shape
//   - OUTPUT_ERROR: the report could not be written
//   - INVALID_CONFIG: the configuration file or environment is invalid
//
// # Usage
//
//	err := errors.New(errors.ErrCodeParse, "missing groupId at %s", path)
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // Handle parse failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "GET %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per pipeline stage.
const (
	ErrCodeInput          Code = "INPUT_ERROR"
	ErrCodeParse          Code = "PARSE_ERROR"
	ErrCodeNetwork        Code = "NETWORK_ERROR"
	ErrCodeResponseFormat Code = "RESPONSE_FORMAT_ERROR"
	ErrCodeOutput         Code = "OUTPUT_ERROR"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
)

var stages = map[Code]string{
	ErrCodeInput:          "read input",
	ErrCodeParse:          "parse tree",
	ErrCodeNetwork:        "query registry",
	ErrCodeResponseFormat: "decode registry response",
	ErrCodeOutput:         "write report",
	ErrCodeInvalidConfig:  "load config",
}

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

// Stage returns the pipeline stage that produced err, e.g. "parse tree".
// Returns empty string for errors without a known code.
func Stage(err error) string {
	return stages[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Prefix returns err with its message prefixed by the formatted text.
// The code and cause of an *Error are kept; other errors are wrapped with
// fmt.Errorf and %w.
func Prefix(err error, format string, args ...any) error {
	prefix := fmt.Sprintf(format, args...)
	var e *Error
	if !errors.As(err, &e) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return &Error{Code: e.Code, Message: prefix + ": " + e.Message, Cause: e.Cause}
}
