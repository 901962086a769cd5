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
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Variable store errors
	ErrStoreRead        ErrorCode = "STORE_READ"
	ErrStoreWrite       ErrorCode = "STORE_WRITE"
	ErrStoreUnsupported ErrorCode = "STORE_UNSUPPORTED"

	// Privilege errors
	ErrElevationRequired ErrorCode = "ELEVATION_REQUIRED"

	// Backup errors
	ErrBackupWrite ErrorCode = "BACKUP_WRITE"
)

// KeeperError represents a structured error with code and details
type KeeperError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *KeeperError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KeeperError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *KeeperError) Is(target error) bool {
	var targetErr *KeeperError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new KeeperError with the given code and message
func New(code ErrorCode, message string) *KeeperError {
	return &KeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new KeeperError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KeeperError {
	return &KeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a KeeperError
func Wrap(err error, code ErrorCode, message string) *KeeperError {
	if err == nil {
		return nil
	}
	return &KeeperError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KeeperError {
	if err == nil {
		return nil
	}
	return &KeeperError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *KeeperError) WithDetail(key string, value interface{}) *KeeperError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var keeperErr *KeeperError
	if errors.As(err, &keeperErr) {
		return keeperErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KeeperError
func GetErrorCode(err error) ErrorCode {
	var keeperErr *KeeperError
	if errors.As(err, &keeperErr) {
		return keeperErr.Code
	}
	return ErrUnknown
}
