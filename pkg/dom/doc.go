// Package dom defines the document capability consumed by the form controller
// and an in-memory implementation of it.
//
// The controller never talks to a browser directly. It looks elements up by
// id, toggles classes, sets text, HTML and visibility through Document, and
// registers listeners through Registrar. Memory implements both: tests drive
// it with Type, Blur, Submit and KeyDown, and the live host keeps it as the
// authoritative page state, forwarding every Change to the browser.
package dom
