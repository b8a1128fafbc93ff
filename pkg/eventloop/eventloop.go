package eventloop

import (
	"context"
	"time"
)

// Timer is a pending delayed callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false when it already ran or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Clock is the time source used by work running off the loop.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// Loop serialises callbacks onto a single goroutine. Every callback posted,
// scheduled or returned as a continuation runs on that goroutine, one at a time.
type Loop interface {
	Scheduler
	Clock

	// Post queues fn to run on the loop.
	Post(fn func())

	// Go runs work on its own goroutine. The continuation work returns, if
	// not nil, is posted back onto the loop.
	Go(work func() func())
}
