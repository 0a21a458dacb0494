// Package errors provides coded errors for stable matching in tests and
// callers. The sgr core itself only propagates sink I/O errors; these codes
// cover the theme/config layer, where user input can actually be wrong.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Theme configuration errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrColorParse   ErrorCode = "COLOR_PARSE"
	ErrStyleUnknown ErrorCode = "STYLE_UNKNOWN"
)

// SgrError represents a structured error with code and message
type SgrError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *SgrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SgrError) Unwrap() error {
	return e.Wrapped
}

// Is matches two SgrErrors by code
func (e *SgrError) Is(target error) bool {
	var targetErr *SgrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SgrError with the given code and message
func New(code ErrorCode, message string) *SgrError {
	return &SgrError{Code: code, Message: message}
}

// Newf creates a new SgrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SgrError {
	return &SgrError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an SgrError
func Wrap(err error, code ErrorCode, message string) *SgrError {
	if err == nil {
		return nil
	}
	return &SgrError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SgrError {
	if err == nil {
		return nil
	}
	return &SgrError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code ErrorCode) bool {
	var sgrErr *SgrError
	if errors.As(err, &sgrErr) {
		return sgrErr.Code == code
	}
	return false
}
