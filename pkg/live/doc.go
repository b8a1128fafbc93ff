// Package live serves the contact form over HTTP using Datastar.
//
// Every visitor gets a Session: an in-memory document, its own event loop and
// a mounted form.Controller. The browser holds no logic. It posts events with
// its current signals and renders what the stream sends back:
//
//	GET  /                       page with the initial signals, sets the session cookie
//	GET  /stream                 SSE stream of document changes
//	POST /events/{target}/{type} blur, input, submit and keydown events
//
// Element state travels as signals under ui.<id> (classes, text, display,
// disabled, style), field values as top-level signals. Summary HTML is sent as
// an element patch and notices as an executed alert script.
//
// Idle sessions without an open stream are evicted by Run.
package live
