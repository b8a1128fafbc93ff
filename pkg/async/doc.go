// Package async runs a computation on its own goroutine and exposes the
// outcome as a Future.
//
// The form controller wraps every send in a Future so the sender can be a
// plain blocking function, while the UI keeps going:
//
//	f := async.Async(ctx, submission, sender.Send)
//	// later, off the UI loop
//	receipt, err := f.Await()
//
// Panics inside the computation are recovered and surface as ErrPanicked, so a
// faulty sender reads as an ordinary failed send.
package async
