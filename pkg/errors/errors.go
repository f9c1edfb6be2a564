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

	// Configuration errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfigValid  ErrorCode = "CONFIG_INVALID"
	ErrStoreInvalid ErrorCode = "STORE_INVALID"

	// Record errors
	ErrStructure       ErrorCode = "STRUCTURE"
	ErrMalformedRecord ErrorCode = "MALFORMED_RECORD"
	ErrRestoreConflict ErrorCode = "RESTORE_CONFLICT"

	// FileSystem errors
	ErrPermission    ErrorCode = "PERMISSION"
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrWalk          ErrorCode = "WALK"
)

// DotkeeperError represents a structured error with code and details
type DotkeeperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotkeeperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotkeeperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotkeeperError) Is(target error) bool {
	var targetErr *DotkeeperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotkeeperError with the given code and message
func New(code ErrorCode, message string) *DotkeeperError {
	return &DotkeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotkeeperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotkeeperError {
	return &DotkeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotkeeperError.
// Callers must not pass a nil err: the typed nil would not compare equal
// to a nil error interface.
func Wrap(err error, code ErrorCode, message string) *DotkeeperError {
	if err == nil {
		return nil
	}
	return &DotkeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotkeeperError {
	if err == nil {
		return nil
	}
	return &DotkeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotkeeperError) WithDetail(key string, value interface{}) *DotkeeperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dkErr *DotkeeperError
	if errors.As(err, &dkErr) {
		return dkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotkeeperError
func GetErrorCode(err error) ErrorCode {
	var dkErr *DotkeeperError
	if errors.As(err, &dkErr) {
		return dkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotkeeperError
func GetErrorDetails(err error) map[string]interface{} {
	var dkErr *DotkeeperError
	if errors.As(err, &dkErr) {
		return dkErr.Details
	}
	return nil
}
