// Package form implements the contact form controller.
//
// A Controller validates fields on blur and, for name and email, on debounced
// input. It keeps the message character counter current and runs the
// submission workflow: aggregate validation, busy state, an asynchronous send
// through a Sender and the success or failure presentation.
//
// The controller never touches a browser. It writes to a dom.Document and
// receives events through a dom.Registrar, and every callback runs on the
// eventloop.Loop it was created with:
//
//	doc := dom.NewMemory()
//	loop := eventloop.New()
//	go loop.Run(ctx)
//
//	ctrl := form.New(doc, loop, form.WithLogger(log))
//	loop.Post(func() { ctrl.Mount(doc) })
//
// Timings come from Config, which can be loaded from the environment with
// config.Load.
package form
