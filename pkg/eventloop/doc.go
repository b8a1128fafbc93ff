// Package eventloop provides the single-threaded execution model the form
// controller relies on.
//
// UI state is never locked. Instead every listener, timer callback and
// continuation runs on one loop goroutine, so two callbacks never overlap.
// Blocking work (the simulated send) leaves the loop through Go and comes
// back as a posted continuation.
//
// Two implementations are provided:
//
//   - EventLoop runs callbacks in real time on the goroutine calling Run.
//   - Manual is driven by tests: Advance moves a virtual clock and Flush
//     drains queued callbacks, so timer-heavy flows run instantly and in a
//     fixed order.
//
// System is a Scheduler and Clock backed directly by the runtime for code that
// lives outside a loop.
//
// # Usage
//
//	loop := eventloop.New(eventloop.WithLogger(log))
//	go loop.Run(ctx)
//
//	loop.AfterFunc(500*time.Millisecond, func() {
//	    // runs on the loop goroutine
//	})
package eventloop
