// Package debounce collapses bursts of triggers into one delayed call.
//
// Each trigger cancels the pending call and re-arms the delay, so the wrapped
// function runs once, wait after the last trigger of a burst, with that
// trigger's arguments. Timing comes from an eventloop.Scheduler; pass the
// form's loop to keep calls on the loop goroutine, or eventloop.System
// anywhere else.
package debounce

import (
	"sync"
	"time"

	"github.com/dmitrymomot/contactform/pkg/eventloop"
)

// New returns a trigger that calls fn wait after the most recent trigger.
// Arguments are forwarded unchanged from the trigger that wins.
// A non-positive wait still defers the call to the scheduler.
func New[T any](s eventloop.Scheduler, wait time.Duration, fn func(args ...T)) func(args ...T) {
	var (
		mu      sync.Mutex
		pending eventloop.Timer
	)

	return func(args ...T) {
		mu.Lock()
		defer mu.Unlock()

		if pending != nil {
			pending.Stop()
		}

		var self eventloop.Timer
		self = s.AfterFunc(max(wait, 0), func() {
			mu.Lock()
			if pending == self {
				pending = nil
			}
			mu.Unlock()
			fn(args...)
		})
		pending = self
	}
}

// Func is New for functions without arguments.
func Func(s eventloop.Scheduler, wait time.Duration, fn func()) func() {
	trigger := New(s, wait, func(...struct{}) { fn() })
	return func() { trigger() }
}
