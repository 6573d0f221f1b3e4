package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type/category of error
type ErrorType string

const (
	// ErrorTypeInvalidInput is a handler-detected domain violation,
	// such as a negative item ID. Maps to HTTP 400.
	ErrorTypeInvalidInput ErrorType = "invalid_input"

	// ErrorTypeMalformedRequest is a request-shape failure: a
	// parameter or body that is missing or does not parse as its
	// declared type. Maps to HTTP 422.
	ErrorTypeMalformedRequest ErrorType = "malformed_request"

	// ErrorTypeInternal is any unexpected fault. Maps to HTTP 500.
	ErrorTypeInternal ErrorType = "internal_error"
)

// DomainError represents a structured error with additional context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string) *DomainError {
	return &DomainError{
		Type:    ErrorTypeInvalidInput,
		Message: message,
	}
}

// NewMalformedRequestError creates a malformed request error with
// optional per-field details
func NewMalformedRequestError(message string, details map[string]interface{}) *DomainError {
	return &DomainError{
		Type:    ErrorTypeMalformedRequest,
		Message: message,
		Details: details,
	}
}

// NewInternalError creates an internal error wrapping the cause
func NewInternalError(message string, err error) *DomainError {
	return &DomainError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsInvalidInputError checks if the error is an invalid input error
func IsInvalidInputError(err error) bool {
	return GetErrorType(err) == ErrorTypeInvalidInput
}

// IsMalformedRequestError checks if the error is a malformed request error
func IsMalformedRequestError(err error) bool {
	return GetErrorType(err) == ErrorTypeMalformedRequest
}

// IsInternalError checks if the error is an internal error
func IsInternalError(err error) bool {
	return GetErrorType(err) == ErrorTypeInternal
}

// GetErrorType extracts the error type, defaulting to internal
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ErrorTypeInternal
}

// GetErrorDetails extracts the details map from a domain error
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}
