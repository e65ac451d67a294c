package transport

import (
	"fmt"
)

// ErrorType represents the category of a failed HTTP exchange
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the request was rejected due to rate limiting (HTTP 429)
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx except 429)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeDecode indicates the response body was not valid JSON for the target
	ErrorTypeDecode ErrorType = "decode"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeCanceled indicates the caller canceled the request's context
	ErrorTypeCanceled ErrorType = "canceled"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// Error is returned by HTTPClient for every failed exchange.
type Error struct {
	Type       ErrorType
	StatusCode int
	Message    string
	// Body holds the raw response body for HTTP status errors, if any.
	Body  string
	Cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// Temporary reports whether repeating the same request could succeed.
// The client never retries on its own; this is for callers that want to.
func (e *Error) Temporary() bool {
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypeRateLimit, ErrorTypeServer, ErrorTypeTimeout:
		return true
	}
	return false
}

// NewNetworkError creates a network error
func NewNetworkError(cause error) *Error {
	return &Error{
		Type:    ErrorTypeNetwork,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(cause error) *Error {
	return &Error{
		Type:    ErrorTypeTimeout,
		Message: "request timed out",
		Cause:   cause,
	}
}

// NewCanceledError creates an error for a request abandoned by its caller
func NewCanceledError(cause error) *Error {
	return &Error{
		Type:    ErrorTypeCanceled,
		Message: "request canceled",
		Cause:   cause,
	}
}

// NewDecodeError creates an error for a response body that could not be parsed
func NewDecodeError(cause error) *Error {
	return &Error{
		Type:    ErrorTypeDecode,
		Message: "failed to decode JSON response",
		Cause:   cause,
	}
}

// ClassifyHTTPError classifies an HTTP status code into an appropriate Error
func ClassifyHTTPError(statusCode int) *Error {
	switch {
	case statusCode == 429:
		return &Error{Type: ErrorTypeRateLimit, StatusCode: statusCode, Message: "rate limit exceeded"}
	case statusCode >= 500:
		return &Error{Type: ErrorTypeServer, StatusCode: statusCode, Message: "server returned an error"}
	case statusCode >= 400:
		return &Error{Type: ErrorTypeClient, StatusCode: statusCode, Message: fmt.Sprintf("client error: HTTP %d", statusCode)}
	default:
		return &Error{
			Type:       ErrorTypeUnknown,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		}
	}
}
