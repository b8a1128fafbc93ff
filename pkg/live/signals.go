package live

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/contactform/pkg/contact"
	"github.com/dmitrymomot/contactform/pkg/dom"
	"github.com/dmitrymomot/contactform/pkg/form"
)

// trackedClasses are the classes the page binds with data-class.
var trackedClasses = []string{
	form.ClassError,
	form.ClassSuccess,
	form.ClassShow,
	contact.CounterWarning.Class(),
	contact.CounterDanger.Class(),
}

// keyboard mirrors the kbd signal the page fills before posting keydown.
type keyboard struct {
	Key  string `json:"key"`
	Ctrl bool   `json:"ctrl"`
	Meta bool   `json:"meta"`
}

// eventSignals is the part of the client signals the host reads.
type eventSignals struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Message string   `json:"message"`
	Kbd     keyboard `json:"kbd"`
}

func (s eventSignals) values() map[contact.Field]string {
	return map[contact.Field]string{
		contact.FieldName:    s.Name,
		contact.FieldEmail:   s.Email,
		contact.FieldMessage: s.Message,
	}
}

// snapshotSignals builds the complete signal tree for a document snapshot:
// field values at the top level and element state under ui.<id>.
func snapshotSignals(snap map[string]dom.Element) map[string]any {
	ui := make(map[string]any, len(snap))
	for id, el := range snap {
		ui[id] = elementSignals(el)
	}

	out := map[string]any{
		"ui":  ui,
		"kbd": keyboard{},
	}
	for _, f := range contact.Fields {
		out[f.String()] = snap[form.InputID(f)].Value
	}
	return out
}

func elementSignals(el dom.Element) map[string]any {
	classes := make(map[string]bool, len(trackedClasses))
	for _, c := range trackedClasses {
		classes[c] = el.HasClass(c)
	}
	style := map[string]string{}
	maps.Copy(style, el.Style)

	return map[string]any{
		"classes":  classes,
		"text":     el.Text,
		"display":  el.Display,
		"disabled": el.Disabled,
		"style":    style,
	}
}

func uiSignal(id, key string, value any) map[string]any {
	return map[string]any{"ui": map[string]any{id: map[string]any{key: value}}}
}

// changeSignals returns the signal patch for c, or nil when c is not
// rendered through signals.
func changeSignals(c dom.Change) map[string]any {
	switch c.Kind {
	case dom.ChangeValue:
		return map[string]any{c.ID: c.Value}
	case dom.ChangeClass:
		return uiSignal(c.ID, "classes", map[string]bool{c.Name: c.On})
	case dom.ChangeText:
		return uiSignal(c.ID, "text", c.Value)
	case dom.ChangeDisplay:
		return uiSignal(c.ID, "display", c.Value)
	case dom.ChangeDisabled:
		return uiSignal(c.ID, "disabled", c.On)
	case dom.ChangeStyle:
		return uiSignal(c.ID, "style", map[string]string{c.Name: c.Value})
	}
	return nil
}

// sendChange renders one document change on the stream.
func sendChange(sse *datastar.ServerSentEventGenerator, c dom.Change) error {
	switch c.Kind {
	case dom.ChangeHTML:
		return sse.PatchElementTempl(templ.Raw(c.Value),
			datastar.WithSelector("#"+c.ID),
			datastar.WithMode(datastar.ElementPatchModeInner),
		)
	case dom.ChangeAlert:
		msg, err := json.Marshal(c.Value)
		if err != nil {
			return err
		}
		return sse.ExecuteScript(fmt.Sprintf("alert(%s)", msg))
	}

	signals := changeSignals(c)
	if signals == nil {
		return nil
	}
	return sendSignals(sse, signals)
}

func sendSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}
