package dom

// EventType names a DOM event the controller listens for.
type EventType string

const (
	EventSubmit  EventType = "submit"
	EventBlur    EventType = "blur"
	EventInput   EventType = "input"
	EventKeyDown EventType = "keydown"
)

// TargetDocument is the target of page-wide listeners such as keyboard shortcuts.
const TargetDocument = "document"

// Event is delivered to listeners. Key, Ctrl and Meta are set for keydown.
type Event struct {
	Type   EventType
	Target string
	Key    string
	Ctrl   bool
	Meta   bool

	defaultPrevented bool
}

// PreventDefault stops the host's default action, e.g. form navigation.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Listener handles a dispatched event.
type Listener func(e *Event)

// Registrar registers listeners on the host document.
type Registrar interface {
	On(target string, typ EventType, fn Listener)
}

// Document is the rendering capability: element lookup by id and the few
// mutations the controller needs. Unknown ids behave as empty elements.
type Document interface {
	Value(id string) string
	SetValue(id, value string)

	AddClass(id, class string)
	RemoveClass(id, class string)
	HasClass(id, class string) bool

	SetText(id, text string)
	SetHTML(id, html string)
	// SetDisplay sets the inline display style: "none", "block", "inline-block".
	SetDisplay(id, display string)
	SetDisabled(id string, disabled bool)
	SetStyle(id, property, value string)

	// Alert shows a blocking user notice.
	Alert(message string)
}
