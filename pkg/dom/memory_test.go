package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/dom"
)

func TestMemory_Mutations(t *testing.T) {
	t.Parallel()

	var changes []dom.Change
	m := dom.NewMemory(dom.WithObserver(func(c dom.Change) { changes = append(changes, c) }))

	m.AddClass("name", "error")
	m.AddClass("name", "error")
	m.SetText("nameErrorText", "Name is required")
	m.SetDisplay("formStats", "block")
	m.SetDisabled("submitBtn", true)
	m.SetStyle("submitBtn", "animation", "shake 0.5s ease-in-out")
	m.SetHTML("statsContent", "<b>x</b>")
	m.SetValue("name", "Jo")
	m.RemoveClass("name", "error")
	m.RemoveClass("name", "error")

	assert.Equal(t, []dom.Change{
		{Kind: dom.ChangeClass, ID: "name", Name: "error", On: true},
		{Kind: dom.ChangeText, ID: "nameErrorText", Value: "Name is required"},
		{Kind: dom.ChangeDisplay, ID: "formStats", Value: "block"},
		{Kind: dom.ChangeDisabled, ID: "submitBtn", On: true},
		{Kind: dom.ChangeStyle, ID: "submitBtn", Name: "animation", Value: "shake 0.5s ease-in-out"},
		{Kind: dom.ChangeHTML, ID: "statsContent", Value: "<b>x</b>"},
		{Kind: dom.ChangeValue, ID: "name", Value: "Jo"},
		{Kind: dom.ChangeClass, ID: "name", Name: "error"},
	}, changes, "no-op mutations must not notify")

	el, ok := m.Element("submitBtn")
	require.True(t, ok)
	assert.True(t, el.Disabled)
	assert.Equal(t, "shake 0.5s ease-in-out", el.Style["animation"])
	assert.Equal(t, "Jo", m.Value("name"))
	assert.False(t, m.HasClass("name", "error"))
}

func TestMemory_SyncDoesNotNotify(t *testing.T) {
	t.Parallel()

	notified := false
	m := dom.NewMemory(dom.WithObserver(func(dom.Change) { notified = true }))

	m.Sync("email", "jo@gmail.com")
	assert.Equal(t, "jo@gmail.com", m.Value("email"))
	assert.False(t, notified)
}

func TestMemory_Dispatch(t *testing.T) {
	t.Parallel()

	m := dom.NewMemory()
	var got []string

	m.On("name", dom.EventInput, func(*dom.Event) { got = append(got, "first:"+m.Value("name")) })
	m.On("name", dom.EventInput, func(*dom.Event) { got = append(got, "second") })
	m.On("name", dom.EventBlur, func(*dom.Event) { got = append(got, "blur") })
	m.On("contactForm", dom.EventSubmit, func(e *dom.Event) { e.PreventDefault() })
	m.On(dom.TargetDocument, dom.EventKeyDown, func(e *dom.Event) {
		got = append(got, e.Key)
		assert.True(t, e.Ctrl)
	})

	m.Type("name", "Jo")
	m.Blur("name")
	m.KeyDown("Enter", true, false)

	assert.Equal(t, []string{"first:Jo", "second", "blur", "Enter"}, got)
	assert.True(t, m.Submit("contactForm"))
	assert.False(t, m.Submit("otherForm"))
}

func TestMemory_SeededElements(t *testing.T) {
	t.Parallel()

	seed := dom.Element{ID: "successMessage", Display: "none", Classes: []string{"card"}}
	m := dom.NewMemory(dom.WithElement(seed))
	seed.Classes[0] = "mutated"

	el, ok := m.Element("successMessage")
	require.True(t, ok)
	assert.Equal(t, "none", el.Display)
	assert.True(t, el.HasClass("card"))

	_, ok = m.Element("missing")
	assert.False(t, ok)
	assert.Contains(t, m.Snapshot(), "successMessage")
}

func TestMemory_Alerts(t *testing.T) {
	t.Parallel()

	var kinds []dom.ChangeKind
	m := dom.NewMemory(dom.WithObserver(func(c dom.Change) { kinds = append(kinds, c.Kind) }))
	m.Alert("Failed to send message. Please try again.")

	assert.Equal(t, []string{"Failed to send message. Please try again."}, m.Alerts())
	assert.Equal(t, []dom.ChangeKind{dom.ChangeAlert}, kinds)
}

func TestMemory_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	m := dom.NewMemory()
	m.AddClass("name", "success")

	snap := m.Snapshot()
	el := snap["name"]
	el.Classes[0] = "changed"

	assert.True(t, m.HasClass("name", "success"))
}
