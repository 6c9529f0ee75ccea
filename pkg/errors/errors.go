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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Document errors
	ErrEncode  ErrorCode = "ENCODE"
	ErrDecode  ErrorCode = "DECODE"
	ErrCorrupt ErrorCode = "CORRUPT"
	ErrBackup  ErrorCode = "BACKUP"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Protocol errors
	ErrInvalidAction ErrorCode = "INVALID_ACTION"
	ErrNoAction      ErrorCode = "NO_ACTION"
)

// SavedataError represents a structured error with code and details
type SavedataError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SavedataError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SavedataError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SavedataError) Is(target error) bool {
	var targetErr *SavedataError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SavedataError with the given code and message
func New(code ErrorCode, message string) *SavedataError {
	return &SavedataError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SavedataError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SavedataError {
	return &SavedataError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SavedataError
func Wrap(err error, code ErrorCode, message string) *SavedataError {
	if err == nil {
		return nil
	}
	return &SavedataError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SavedataError {
	if err == nil {
		return nil
	}
	return &SavedataError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SavedataError) WithDetail(key string, value interface{}) *SavedataError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sdErr *SavedataError
	if errors.As(err, &sdErr) {
		return sdErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SavedataError
func GetErrorCode(err error) ErrorCode {
	var sdErr *SavedataError
	if errors.As(err, &sdErr) {
		return sdErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SavedataError
func GetErrorDetails(err error) map[string]interface{} {
	var sdErr *SavedataError
	if errors.As(err, &sdErr) {
		return sdErr.Details
	}
	return nil
}
