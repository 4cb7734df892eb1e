package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput        = errors.New("input is empty or contains only whitespace")
	ErrMalformedSyntax   = errors.New("input is not valid JSON")
	ErrMultipleJSON      = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrTimeout           = errors.New("request timed out")
	ErrConnectionFailure = errors.New("connection failed")
	ErrHTTPStatus        = errors.New("server returned an error status")
	ErrTransport         = errors.New("transport error")
	ErrFileNotFound      = errors.New("file not found")
	ErrFileEmpty         = errors.New("file is empty")
	ErrNoInput           = errors.New("no input provided: please specify a URL with -u, a file with -i, or pipe JSON data to stdin")
	ErrInvalidFilePath   = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeFetch   ErrorType = "fetch"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// SyntaxError carries the position a JSON document failed to parse at.
// It wraps ErrMalformedSyntax so callers can test with errors.Is.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

// Error implements error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
}

// Is reports equivalence to the ErrMalformedSyntax sentinel
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedSyntax
}

// StatusError carries the HTTP status code a fetch failed with.
// It wraps ErrHTTPStatus so callers can test with errors.Is.
type StatusError struct {
	Code int
}

// Error implements error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %d", e.Code)
}

// Is reports equivalence to the ErrHTTPStatus sentinel
func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewFetchError creates a new error related to fetching remote JSON
func NewFetchError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeFetch,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	// Sentinel checks first so the most specific message wins even when
	// the error is wrapped in an AppError.
	if errors.Is(err, ErrTimeout) {
		return "Request timed out. The server took too long to respond."
	}
	if errors.Is(err, ErrConnectionFailure) {
		return "Connection error. Please check your internet connection and the URL."
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("HTTP Error %d: The server returned an error. Please check the URL.", statusErr.Code)
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("Invalid JSON: %s at line %d, column %d", syntaxErr.Msg, syntaxErr.Line, syntaxErr.Column)
	}
	if errors.Is(err, ErrEmptyInput) {
		return "Empty input. Please enter some JSON data."
	}
	if errors.Is(err, ErrMalformedSyntax) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object or array."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a URL with -u, a file with -i, or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeFetch:
			return fmt.Sprintf("Error fetching data: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
