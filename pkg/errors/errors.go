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
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Interaction errors
	ErrUserInput ErrorCode = "USER_INPUT"

	// Catalog errors
	ErrFileRead         ErrorCode = "FILE_READ"
	ErrMalformedInput   ErrorCode = "MALFORMED_INPUT"
	ErrCatalogNotLoaded ErrorCode = "CATALOG_NOT_LOADED"
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrNoTemplateChosen ErrorCode = "NO_TEMPLATE_SELECTED"
	ErrEmptyProjectName ErrorCode = "EMPTY_PROJECT_NAME"

	// Materialization errors
	ErrMaterializeIO ErrorCode = "MATERIALIZE_IO"
	ErrPathEscape    ErrorCode = "PATH_ESCAPE"
)

// FactoryError represents a structured error with code and details
type FactoryError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FactoryError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FactoryError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FactoryError) Is(target error) bool {
	var targetErr *FactoryError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FactoryError with the given code and message
func New(code ErrorCode, message string) *FactoryError {
	return &FactoryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FactoryError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FactoryError {
	return &FactoryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FactoryError
func Wrap(err error, code ErrorCode, message string) *FactoryError {
	if err == nil {
		return nil
	}
	return &FactoryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FactoryError {
	if err == nil {
		return nil
	}
	return &FactoryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FactoryError) WithDetail(key string, value interface{}) *FactoryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var factoryErr *FactoryError
	if errors.As(err, &factoryErr) {
		return factoryErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FactoryError
func GetErrorCode(err error) ErrorCode {
	var factoryErr *FactoryError
	if errors.As(err, &factoryErr) {
		return factoryErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FactoryError
func GetErrorDetails(err error) map[string]interface{} {
	var factoryErr *FactoryError
	if errors.As(err, &factoryErr) {
		return factoryErr.Details
	}
	return nil
}

// IsWarning reports whether err is one of the user-correctable conditions
// (missing selection, blank name, unknown template) that are shown as
// warnings instead of errors.
func IsWarning(err error) bool {
	switch GetErrorCode(err) {
	case ErrCatalogNotLoaded, ErrTemplateNotFound, ErrNoTemplateChosen, ErrEmptyProjectName:
		return true
	}
	return false
}

// UserMessage returns err worded for people: the message without its code,
// followed by the wrapped cause when there is one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var factoryErr *FactoryError
	if !errors.As(err, &factoryErr) {
		return err.Error()
	}
	if factoryErr.Wrapped != nil {
		return factoryErr.Message + ": " + UserMessage(factoryErr.Wrapped)
	}
	return factoryErr.Message
}
