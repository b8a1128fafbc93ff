package dom

import (
	"maps"
	"slices"
	"sync"
)

// Element is a snapshot of one element held by Memory.
type Element struct {
	ID       string
	Value    string
	Text     string
	HTML     string
	Display  string
	Disabled bool
	Classes  []string
	Style    map[string]string
}

// HasClass reports whether the element carries class.
func (e Element) HasClass(class string) bool {
	return slices.Contains(e.Classes, class)
}

// ChangeKind tells which part of an element changed.
type ChangeKind int

const (
	ChangeValue ChangeKind = iota
	ChangeClass
	ChangeText
	ChangeHTML
	ChangeDisplay
	ChangeDisabled
	ChangeStyle
	ChangeAlert
)

// Change describes one applied mutation. Name is the class or style property,
// On is class presence or the disabled flag, Value carries everything else.
type Change struct {
	Kind  ChangeKind
	ID    string
	Name  string
	Value string
	On    bool
}

// Observer is notified after every mutation that changed state.
type Observer func(Change)

// MemoryOption configures a Memory document.
type MemoryOption func(*Memory)

// WithObserver registers fn to receive changes.
func WithObserver(fn Observer) MemoryOption {
	return func(m *Memory) {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
	}
}

// WithElement seeds an element before the controller mounts.
func WithElement(e Element) MemoryOption {
	return func(m *Memory) {
		el := e
		el.Classes = slices.Clone(e.Classes)
		el.Style = maps.Clone(e.Style)
		m.elements[e.ID] = &el
	}
}

type listenerKey struct {
	target string
	typ    EventType
}

// Memory is an in-process Document and Registrar. It plays the browser for
// tests and keeps the authoritative page state for the live host.
// Mutations are recorded even for ids nobody declared.
type Memory struct {
	mu        sync.Mutex
	elements  map[string]*Element
	listeners map[listenerKey][]Listener
	alerts    []string
	observers []Observer
}

var (
	_ Document  = (*Memory)(nil)
	_ Registrar = (*Memory)(nil)
)

// NewMemory returns an empty document.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		elements:  make(map[string]*Element),
		listeners: make(map[listenerKey][]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) On(target string, typ EventType, fn Listener) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := listenerKey{target, typ}
	m.listeners[k] = append(m.listeners[k], fn)
}

// Dispatch delivers e to the listeners of its target, in registration order.
// It reports whether a listener prevented the default action.
func (m *Memory) Dispatch(e *Event) bool {
	m.mu.Lock()
	ls := slices.Clone(m.listeners[listenerKey{e.Target, e.Type}])
	m.mu.Unlock()

	for _, fn := range ls {
		fn(e)
	}
	return e.DefaultPrevented()
}

// Type replaces the value of id as a user would and fires input.
func (m *Memory) Type(id, value string) {
	m.Sync(id, value)
	m.Dispatch(&Event{Type: EventInput, Target: id})
}

// Blur fires a focus-loss event on id.
func (m *Memory) Blur(id string) {
	m.Dispatch(&Event{Type: EventBlur, Target: id})
}

// Submit fires submit on the form id and reports whether it was prevented.
func (m *Memory) Submit(formID string) bool {
	return m.Dispatch(&Event{Type: EventSubmit, Target: formID})
}

// KeyDown fires a page-wide keydown.
func (m *Memory) KeyDown(key string, ctrl, meta bool) {
	m.Dispatch(&Event{Type: EventKeyDown, Target: TargetDocument, Key: key, Ctrl: ctrl, Meta: meta})
}

// Sync stores a value coming from the user side. Observers are not notified
// because the value already lives there.
func (m *Memory) Sync(id, value string) {
	m.mu.Lock()
	m.element(id).Value = value
	m.mu.Unlock()
}

// Element returns a snapshot of id.
func (m *Memory) Element(id string) (Element, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.elements[id]
	if !ok {
		return Element{ID: id}, false
	}
	return clone(el), true
}

// Snapshot returns every known element keyed by id.
func (m *Memory) Snapshot() map[string]Element {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]Element, len(m.elements))
	for id, el := range m.elements {
		out[id] = clone(el)
	}
	return out
}

// Alerts returns the notices shown so far.
func (m *Memory) Alerts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.alerts)
}

func (m *Memory) Value(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if el, ok := m.elements[id]; ok {
		return el.Value
	}
	return ""
}

func (m *Memory) SetValue(id, value string) {
	m.apply(Change{Kind: ChangeValue, ID: id, Value: value}, func(el *Element) bool {
		return swap(&el.Value, value)
	})
}

func (m *Memory) AddClass(id, class string) {
	m.apply(Change{Kind: ChangeClass, ID: id, Name: class, On: true}, func(el *Element) bool {
		if slices.Contains(el.Classes, class) {
			return false
		}
		el.Classes = append(el.Classes, class)
		return true
	})
}

func (m *Memory) RemoveClass(id, class string) {
	m.apply(Change{Kind: ChangeClass, ID: id, Name: class}, func(el *Element) bool {
		i := slices.Index(el.Classes, class)
		if i < 0 {
			return false
		}
		el.Classes = slices.Delete(el.Classes, i, i+1)
		return true
	})
}

func (m *Memory) HasClass(id, class string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.elements[id]
	return ok && slices.Contains(el.Classes, class)
}

func (m *Memory) SetText(id, text string) {
	m.apply(Change{Kind: ChangeText, ID: id, Value: text}, func(el *Element) bool {
		return swap(&el.Text, text)
	})
}

func (m *Memory) SetHTML(id, html string) {
	m.apply(Change{Kind: ChangeHTML, ID: id, Value: html}, func(el *Element) bool {
		return swap(&el.HTML, html)
	})
}

func (m *Memory) SetDisplay(id, display string) {
	m.apply(Change{Kind: ChangeDisplay, ID: id, Value: display}, func(el *Element) bool {
		return swap(&el.Display, display)
	})
}

func (m *Memory) SetDisabled(id string, disabled bool) {
	m.apply(Change{Kind: ChangeDisabled, ID: id, On: disabled}, func(el *Element) bool {
		return swap(&el.Disabled, disabled)
	})
}

func (m *Memory) SetStyle(id, property, value string) {
	m.apply(Change{Kind: ChangeStyle, ID: id, Name: property, Value: value}, func(el *Element) bool {
		if el.Style == nil {
			el.Style = make(map[string]string)
		}
		if cur, ok := el.Style[property]; ok && cur == value {
			return false
		}
		el.Style[property] = value
		return true
	})
}

func (m *Memory) Alert(message string) {
	m.mu.Lock()
	m.alerts = append(m.alerts, message)
	obs := m.observers
	m.mu.Unlock()

	notify(obs, Change{Kind: ChangeAlert, Value: message})
}

func (m *Memory) apply(c Change, mutate func(*Element) bool) {
	m.mu.Lock()
	changed := mutate(m.element(c.ID))
	obs := m.observers
	m.mu.Unlock()

	if changed {
		notify(obs, c)
	}
}

// element must be called with m.mu held.
func (m *Memory) element(id string) *Element {
	el, ok := m.elements[id]
	if !ok {
		el = &Element{ID: id}
		m.elements[id] = el
	}
	return el
}

func notify(obs []Observer, c Change) {
	for _, fn := range obs {
		fn(c)
	}
}

func swap[T comparable](dst *T, v T) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func clone(el *Element) Element {
	out := *el
	out.Classes = slices.Clone(el.Classes)
	out.Style = maps.Clone(el.Style)
	return out
}
