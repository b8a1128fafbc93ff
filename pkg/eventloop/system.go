package eventloop

import (
	"context"
	"time"
)

// System schedules callbacks on runtime timer goroutines instead of a loop.
// Callbacks may run concurrently with each other.
var System interface {
	Scheduler
	Clock
} = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
