package common

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Sentinel Errors
// --------------------------------------------------------------------------

// ErrUnexpectedEOF is returned when the remote side closes the socket in the
// middle of a frame, i.e. before the expected number of bytes arrived.
var ErrUnexpectedEOF = errors.New("unexpected end of stream")

// --------------------------------------------------------------------------
// Custom Error Types
// --------------------------------------------------------------------------

// ConnectionError is returned for failures while establishing or configuring
// a connection. It wraps the underlying transport cause.
//
// Connect-time failures are always surfaced to the caller and never retried
// at this layer - retry is a concern of the pooling/command layer above.
type ConnectionError struct {
	Op    string // The failing step, e.g. "dial" or "socket"
	Cause error  // The underlying transport error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error (%s): %v", e.Op, e.Cause)
}

// Unwrap exposes the underlying transport error for errors.Is/errors.As.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError wraps cause into a ConnectionError for the given step.
func NewConnectionError(op string, cause error) *ConnectionError {
	return &ConnectionError{Op: op, Cause: cause}
}

// ParameterError is returned when the caller supplied an invalid request,
// e.g. a batch write entry that contains no write operation. It is caught
// client side rather than deferred to the server.
type ParameterError struct {
	Msg string
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter error: %s", e.Msg)
}

// NewParameterError creates a new ParameterError with the given message.
func NewParameterError(msg string) *ParameterError {
	return &ParameterError{Msg: msg}
}
