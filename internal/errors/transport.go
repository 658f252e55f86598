package errors

import (
	"context"
	"errors"
	"fmt"
)

// TransportError reports a failed request against an upstream HTTP resource.
// It covers network failures, non-2xx statuses and undecodable bodies alike;
// callers must not assume any part of the response was usable.
type TransportError struct {
	URL string
	// StatusCode is zero when no response was received
	StatusCode int
	Cause      error
}

// NewTransportError builds a TransportError for a response with a bad status
func NewTransportError(url string, statusCode int) *TransportError {
	return &TransportError{URL: url, StatusCode: statusCode}
}

// WrapTransport builds a TransportError around a network or decode failure
func WrapTransport(url string, statusCode int, cause error) *TransportError {
	return &TransportError{URL: url, StatusCode: statusCode, Cause: cause}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	switch {
	case e.Cause != nil && e.StatusCode != 0:
		return fmt.Sprintf("request %s failed (status %d): %v", e.URL, e.StatusCode, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("request %s failed: %v", e.URL, e.Cause)
	default:
		return fmt.Sprintf("request %s failed with status %d", e.URL, e.StatusCode)
	}
}

// Unwrap returns the underlying cause, if any
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Code classifies the failure
func (e *TransportError) Code() Code {
	switch {
	case errors.Is(e.Cause, context.Canceled):
		return CodeCanceled
	case errors.Is(e.Cause, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	case e.StatusCode != 0:
		return codeForHTTPStatus(e.StatusCode)
	default:
		return CodeUnavailable
	}
}

func (e *TransportError) meta() map[string]interface{} {
	meta := map[string]interface{}{"url": e.URL}
	if e.StatusCode != 0 {
		meta["http_status"] = e.StatusCode
	}
	return meta
}

// AsTransport extracts a TransportError from anywhere in the chain
func AsTransport(err error) (*TransportError, bool) {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr, true
	}
	return nil, false
}

// IsTransport reports whether err originated from an upstream request
func IsTransport(err error) bool {
	_, ok := AsTransport(err)
	return ok
}
