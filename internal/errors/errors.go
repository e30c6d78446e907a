// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidInput indicates malformed or mismatched inputs to a calculation
	TypeInvalidInput Type = "INVALID_INPUT"

	// TypeDivisionByZero indicates a stratified calculation would divide by zero
	TypeDivisionByZero Type = "DIVISION_BY_ZERO"

	// TypeMissingData indicates a requested year or column has no matching row
	TypeMissingData Type = "MISSING_DATA"

	// TypeAlignment indicates two series do not share the same year axis
	TypeAlignment Type = "ALIGNMENT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeParsing indicates an input file could not be parsed
	TypeParsing Type = "PARSING_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidInput creates an invalid input error
func InvalidInput(message string) *Error {
	return New(TypeInvalidInput, message)
}

// InvalidInputf creates a formatted invalid input error
func InvalidInputf(format string, args ...interface{}) *Error {
	return Newf(TypeInvalidInput, format, args...)
}

// DivisionByZero creates a division by zero error
func DivisionByZero(message string) *Error {
	return New(TypeDivisionByZero, message)
}

// MissingData creates a missing data error
func MissingData(format string, args ...interface{}) *Error {
	return Newf(TypeMissingData, format, args...)
}

// Alignment creates an alignment error
func Alignment(format string, args ...interface{}) *Error {
	return Newf(TypeAlignment, format, args...)
}

// Config creates a configuration error
func Config(format string, args ...interface{}) *Error {
	return Newf(TypeConfig, format, args...)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
