package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Environment errors
	ErrCodeNoUser      ErrorCode = "NO_USER"
	ErrCodeNoHome      ErrorCode = "NO_HOME"
	ErrCodeNotAbsolute ErrorCode = "NOT_ABSOLUTE"

	// Configuration root errors
	ErrCodePrefixNotFound ErrorCode = "PREFIX_NOT_FOUND"
	ErrCodeNotDirectory   ErrorCode = "NOT_DIRECTORY"
	ErrCodeStatFailed     ErrorCode = "STAT_FAILED"

	// Launch errors
	ErrCodeNoLoaderName ErrorCode = "NO_LOADER_NAME"
	ErrCodeLaunchFailed ErrorCode = "LAUNCH_FAILED"

	// Command line errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// fatalCodes are the conditions under which a process cannot continue.
var fatalCodes = map[ErrorCode]bool{
	ErrCodeNoUser:         true,
	ErrCodeNoHome:         true,
	ErrCodeNotAbsolute:    true,
	ErrCodePrefixNotFound: true,
	ErrCodeNotDirectory:   true,
	ErrCodeStatFailed:     true,
}

// WineError represents a structured error with context
type WineError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *WineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WineError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *WineError) WithDetail(key string, value interface{}) *WineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *WineError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new WineError
func New(code ErrorCode, message string) *WineError {
	return &WineError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a WineError
func Wrap(err error, code ErrorCode, message string) *WineError {
	return &WineError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific WineError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	wineErr, ok := err.(*WineError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return wineErr.Code
}

// IsFatal reports whether err carries a code that must terminate the process.
func IsFatal(err error) bool {
	return fatalCodes[GetCode(err)]
}

// Message returns the human readable part of err, without the code prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if wineErr, ok := err.(*WineError); ok {
		if wineErr.Cause != nil {
			return fmt.Sprintf("%s: %v", wineErr.Message, wineErr.Cause)
		}
		return wineErr.Message
	}
	if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
		if inner := unwrapper.Unwrap(); GetCode(inner) != "" {
			return Message(inner)
		}
	}
	return err.Error()
}
