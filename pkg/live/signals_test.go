package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/dom"
)

func TestChangeSignals(t *testing.T) {
	tests := []struct {
		name   string
		change dom.Change
		want   map[string]any
	}{
		{
			name:   "value",
			change: dom.Change{Kind: dom.ChangeValue, ID: "email", Value: ""},
			want:   map[string]any{"email": ""},
		},
		{
			name:   "class",
			change: dom.Change{Kind: dom.ChangeClass, ID: "name", Name: "error", On: true},
			want:   uiSignal("name", "classes", map[string]bool{"error": true}),
		},
		{
			name:   "disabled",
			change: dom.Change{Kind: dom.ChangeDisabled, ID: "submitBtn", On: true},
			want:   uiSignal("submitBtn", "disabled", true),
		},
		{
			name:   "style",
			change: dom.Change{Kind: dom.ChangeStyle, ID: "submitBtn", Name: "animation", Value: "shake 0.5s ease-in-out"},
			want:   uiSignal("submitBtn", "style", map[string]string{"animation": "shake 0.5s ease-in-out"}),
		},
		{
			name:   "html is not a signal",
			change: dom.Change{Kind: dom.ChangeHTML, ID: "statsContent", Value: "<b>x</b>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, changeSignals(tt.change))
		})
	}
}

func TestSnapshotSignals(t *testing.T) {
	snap := map[string]dom.Element{
		"name":        {ID: "name", Value: "Jo", Classes: []string{"success"}},
		"charCounter": {ID: "charCounter", Text: "2 / 1000 characters"},
	}

	out := snapshotSignals(snap)
	assert.Equal(t, "Jo", out["name"])
	assert.Equal(t, "", out["email"])

	ui, ok := out["ui"].(map[string]any)
	require.True(t, ok)
	name := ui["name"].(map[string]any)
	classes := name["classes"].(map[string]bool)
	assert.True(t, classes["success"])
	assert.False(t, classes["error"])
	assert.Equal(t, "2 / 1000 characters", ui["charCounter"].(map[string]any)["text"])
}

func TestParseEvent(t *testing.T) {
	ev, err := parseEvent("document", "keydown")
	require.NoError(t, err)
	assert.Equal(t, dom.EventKeyDown, ev.Type)

	_, err = parseEvent("document", "submit")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
