package transport

import (
	"errors"
	"fmt"
)

// Common errors for the transport layer
var (
	// ErrListenerClosed indicates the listener has been closed
	ErrListenerClosed = errors.New("listener closed")

	// ErrUnixUnsupported indicates a unix domain socket operation on a
	// platform without unix domain socket support
	ErrUnixUnsupported = errors.New("unix domain sockets are not supported on this platform")
)

// OpError represents a transport error with additional context
type OpError struct {
	Op   string // operation that caused the error: bind, accept, connect
	Addr string // address if relevant
	Err  error  // underlying error
}

func (e *OpError) Error() string {
	if e.Addr != "" {
		return fmt.Sprintf("unisock %s %s: %v", e.Op, e.Addr, e.Err)
	}
	return fmt.Sprintf("unisock %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// newOpError creates a new OpError
func newOpError(op, addr string, err error) *OpError {
	return &OpError{
		Op:   op,
		Addr: addr,
		Err:  err,
	}
}
