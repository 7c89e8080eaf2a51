package server

import (
	"errors"
	"fmt"
)

// RequestError represents a request the dispatcher rejects before any
// state mutation is attempted.
//
// Request errors are distinct from handler outcomes: a failed lookup (for
// example an unknown login identifier) is a successful dispatch with a
// Success=false result, while a RequestError means the call never reached
// its handler.
type RequestError struct {
	// Code identifies the error category.
	Code RequestErrorCode

	// Message is a human-readable description.
	Message string

	// Endpoint is the URL-like path of the offending request.
	Endpoint string
}

// RequestErrorCode categorizes request errors.
type RequestErrorCode string

const (
	// ErrCodeUnknownRoute indicates the path matches no registered endpoint.
	ErrCodeUnknownRoute RequestErrorCode = "UNKNOWN_ROUTE"

	// ErrCodeInvalidPayload indicates the payload is malformed or fails
	// validation. Returned before any state mutation so no partial side
	// effects can occur.
	ErrCodeInvalidPayload RequestErrorCode = "INVALID_PAYLOAD"
)

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s: %s (endpoint=%s)", e.Code, e.Message, e.Endpoint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownRoute returns true if the error is an unknown-route error.
// Uses errors.As to handle wrapped errors.
func IsUnknownRoute(err error) bool {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Code == ErrCodeUnknownRoute
	}
	return false
}

// IsInvalidPayload returns true if the error is an invalid-payload error.
// Uses errors.As to handle wrapped errors.
func IsInvalidPayload(err error) bool {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Code == ErrCodeInvalidPayload
	}
	return false
}

// NewUnknownRouteError creates a RequestError for an unregistered path.
func NewUnknownRouteError(path string) *RequestError {
	return &RequestError{
		Code:     ErrCodeUnknownRoute,
		Message:  "no such endpoint",
		Endpoint: path,
	}
}

// NewInvalidPayloadError creates a RequestError for a malformed payload.
func NewInvalidPayloadError(endpoint Endpoint, message string) *RequestError {
	return &RequestError{
		Code:     ErrCodeInvalidPayload,
		Message:  message,
		Endpoint: endpoint.Path(),
	}
}
