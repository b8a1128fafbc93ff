package live

import "errors"

var (
	ErrSessionNotFound = errors.New("live: session not found")
	ErrUnknownEvent    = errors.New("live: unknown event")
	ErrInvalidSignals  = errors.New("live: invalid signals")
	ErrStreamClosed    = errors.New("live: stream closed")
)
