package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// URL validation errors
	ErrURLMalformed      ErrorCode = "URL_MALFORMED"
	ErrURLInvalidChar    ErrorCode = "URL_INVALID_CHAR"
	ErrLocaleUnknown     ErrorCode = "LOCALE_UNKNOWN"
	ErrSchemeForbidden   ErrorCode = "SCHEME_FORBIDDEN"
	ErrSourceIsDocument  ErrorCode = "SOURCE_IS_DOCUMENT"
	ErrAlreadyRedirected ErrorCode = "ALREADY_REDIRECTED"
	ErrTargetNotFound    ErrorCode = "TARGET_NOT_FOUND"
	ErrSlugMismatch      ErrorCode = "SLUG_MISMATCH"

	// Table errors
	ErrDuplicateSource   ErrorCode = "DUPLICATE_SOURCE"
	ErrURLNotDecoded     ErrorCode = "URL_NOT_DECODED"
	ErrEdgeConflict      ErrorCode = "EDGE_CONFLICT"
	ErrRedirectCycle     ErrorCode = "REDIRECT_CYCLE"
	ErrTableRead         ErrorCode = "TABLE_READ"
	ErrTableWrite        ErrorCode = "TABLE_WRITE"
	ErrTableFormat       ErrorCode = "TABLE_FORMAT"
	ErrTableNotCanonical ErrorCode = "TABLE_NOT_CANONICAL"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Content tree errors
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// RedirError represents a structured error with code and details
type RedirError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RedirError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RedirError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RedirError) Is(target error) bool {
	var targetErr *RedirError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RedirError with the given code and message
func New(code ErrorCode, message string) *RedirError {
	return &RedirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RedirError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RedirError {
	return &RedirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RedirError
func Wrap(err error, code ErrorCode, message string) *RedirError {
	if err == nil {
		return nil
	}
	return &RedirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RedirError {
	if err == nil {
		return nil
	}
	return &RedirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RedirError) WithDetail(key string, value interface{}) *RedirError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var redirErr *RedirError
	if errors.As(err, &redirErr) {
		return redirErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RedirError
func GetErrorCode(err error) ErrorCode {
	var redirErr *RedirError
	if errors.As(err, &redirErr) {
		return redirErr.Code
	}
	return ErrUnknown
}
