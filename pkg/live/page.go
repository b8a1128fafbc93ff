package live

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactform/pkg/contact"
	"github.com/dmitrymomot/contactform/pkg/dom"
	"github.com/dmitrymomot/contactform/pkg/form"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

type fieldView struct {
	field contact.Field
	label string
	input string
}

var fieldViews = []fieldView{
	{contact.FieldName, "Full Name", `<input type="text" id="name" name="name" autocomplete="name">`},
	{contact.FieldEmail, "Email Address", `<input type="email" id="email" name="email" autocomplete="email">`},
	{contact.FieldMessage, "Message", `<textarea id="message" name="message" rows="6" maxlength="1000"></textarea>`},
}

// page renders the contact page for snap. Element state is bound to signals,
// so the markup itself never changes after the first render.
func page(snap map[string]dom.Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(snapshotSignals(snap))
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>Contact Us</title>`)
		b.WriteString(`<script type="module" src="` + datastarScript + `"></script>`)
		b.WriteString(`<style>` + pageStyle + `</style></head>`)

		b.WriteString(`<body data-signals="` + templ.EscapeString(string(signals)) + `" data-init="@get('/stream')"`)
		b.WriteString(` data-on:keydown__window="(evt.ctrlKey || evt.metaKey) &amp;&amp; evt.key === 'Enter' &amp;&amp; ($kbd.key = evt.key, $kbd.ctrl = evt.ctrlKey, $kbd.meta = evt.metaKey, @post('/events/document/keydown'))">`)
		b.WriteString(`<div class="container"><h1>Contact Us</h1>`)

		b.WriteString(`<form id="contactForm" novalidate` + styleAttr(form.FormID, "display") +
			` data-on:submit__prevent="@post('/events/contactForm/submit')">`)
		for _, v := range fieldViews {
			writeField(&b, v)
		}
		b.WriteString(`<div id="charCounter" class="char-counter"` + textAttr(form.CounterID) +
			classAttr(form.CounterID, contact.CounterWarning.Class()) +
			classAttr(form.CounterID, contact.CounterDanger.Class()) + `></div>`)

		b.WriteString(`<button type="submit" id="submitBtn" data-attr:disabled="$ui.submitBtn.disabled"` +
			styleAttr(form.SubmitID, "animation") + `>`)
		b.WriteString(`<span id="loadingSpinner" class="spinner"` + styleAttr(form.SpinnerID, "display") + `></span>`)
		b.WriteString(`<span id="btnText"` + textAttr(form.LabelID) + `></span></button></form>`)

		b.WriteString(`<div id="successMessage" class="success-message"` + styleAttr(form.SuccessID, "display") + `>`)
		b.WriteString(`<h2>Thank you!</h2><p>Your message has been sent successfully.</p></div>`)

		b.WriteString(`<div id="formStats" class="form-stats"` + styleAttr(form.StatsID, "display") + `>`)
		b.WriteString(`<div id="statsContent">` + snap[form.StatsContentID].HTML + `</div></div>`)

		b.WriteString(`</div></body></html>`)

		_, err = io.WriteString(w, b.String())
		return err
	})
}

func writeField(b *strings.Builder, v fieldView) {
	id := form.InputID(v.field)
	input := strings.Replace(v.input, ` id="`+id+`"`, ` id="`+id+`" data-bind:`+id+
		classAttr(id, form.ClassError)+classAttr(id, form.ClassSuccess)+
		` data-on:blur="@post('/events/`+id+`/blur')"`+
		` data-on:input="@post('/events/`+id+`/input')"`, 1)

	b.WriteString(`<div class="form-group"><label for="` + id + `">` + v.label + `</label>`)
	b.WriteString(input)
	b.WriteString(`<div id="` + form.ErrorRegionID(v.field) + `" class="error-message"` +
		classAttr(form.ErrorRegionID(v.field), form.ClassShow) + `>`)
	b.WriteString(`<span id="` + form.ErrorTextID(v.field) + `" class="error-text"` +
		textAttr(form.ErrorTextID(v.field)) + `></span></div></div>`)
}

func classAttr(id, class string) string {
	return ` data-class:` + class + `="$ui.` + id + `.classes.` + class + `"`
}

func textAttr(id string) string {
	return ` data-text="$ui.` + id + `.text"`
}

func styleAttr(id, property string) string {
	return ` data-style:` + property + `="$ui.` + id + `.style.` + property + ` || $ui.` + id + `.` + property + `"`
}

const pageStyle = `
body{font-family:system-ui,sans-serif;background:#f5f7fa;margin:0;padding:2rem}
.container{max-width:560px;margin:0 auto;background:#fff;padding:2rem;border-radius:8px}
.form-group{margin-bottom:1.25rem}
label{display:block;font-weight:600;margin-bottom:.4rem}
input,textarea{width:100%;padding:.6rem;border:2px solid #dfe3e8;border-radius:4px;box-sizing:border-box}
input.error,textarea.error{border-color:#e74c3c}
input.success,textarea.success{border-color:#27ae60}
.error-message{display:none;color:#e74c3c;font-size:.875rem;margin-top:.3rem}
.error-message.show{display:block}
.char-counter{text-align:right;font-size:.8rem;color:#7f8c8d}
.char-counter.warning{color:#f39c12}
.char-counter.danger{color:#e74c3c}
.spinner{display:none;width:14px;height:14px;border:2px solid #fff;border-top-color:transparent;border-radius:50%;animation:spin 1s linear infinite;margin-right:.5rem}
.success-message,.form-stats{display:none;margin-top:1rem;padding:1rem;border-radius:4px;background:#f8f9fa}
@keyframes spin{to{transform:rotate(360deg)}}
@keyframes shake{0%,100%{transform:translateX(0)}25%{transform:translateX(-5px)}75%{transform:translateX(5px)}}
`
