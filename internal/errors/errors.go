package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDataRead      = "DATA_READ"
	CodeDataParse     = "DATA_PARSE"
	CodeDataWrite     = "DATA_WRITE"
)

// PyError is a structured error with a code and actionable suggestion.
type PyError struct {
	Code       string // machine-readable code (e.g. DATA_PARSE)
	Message    string // human-readable description
	Suggestion string // actionable fix
	Err        error  // wrapped underlying error
}

// Error implements the error interface.
func (e *PyError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap supports errors.Is / errors.As.
func (e *PyError) Unwrap() error {
	return e.Err
}

// New creates a PyError with the given code and message.
func New(code, message string) *PyError {
	return &PyError{Code: code, Message: message}
}

// Wrap creates a PyError wrapping an existing error.
func Wrap(code, message string, err error) *PyError {
	return &PyError{Code: code, Message: message, Err: err}
}

// Wrapf creates a PyError wrapping err with a formatted message.
func Wrapf(code string, err error, format string, args ...any) *PyError {
	return &PyError{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// WithSuggestion sets the suggestion and returns the same error.
func (e *PyError) WithSuggestion(suggestion string) *PyError {
	e.Suggestion = suggestion
	return e
}

// Is checks whether target matches this error's code.
func (e *PyError) Is(target error) bool {
	var pe *PyError
	if errors.As(target, &pe) {
		return e.Code == pe.Code
	}
	return false
}

// AsCode extracts the PyError code from an error, or "" if not a PyError.
func AsCode(err error) string {
	var pe *PyError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// Suggestion extracts the suggestion from an error, or "" if not a PyError.
func Suggestion(err error) string {
	var pe *PyError
	if errors.As(err, &pe) {
		return pe.Suggestion
	}
	return ""
}
