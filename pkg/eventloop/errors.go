package eventloop

import "errors"

var (
	// ErrAlreadyRunning is returned by Run when the loop is already being driven.
	ErrAlreadyRunning = errors.New("event loop is already running")

	// ErrClosed is returned by Run once the loop has stopped.
	ErrClosed = errors.New("event loop is closed")
)
