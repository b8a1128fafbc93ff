package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactform/pkg/async"
	"github.com/dmitrymomot/contactform/pkg/contact"
	"github.com/dmitrymomot/contactform/pkg/debounce"
	"github.com/dmitrymomot/contactform/pkg/dom"
	"github.com/dmitrymomot/contactform/pkg/eventloop"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Option configures a Controller.
type Option func(*Controller)

// WithConfig sets the timings. Zero durations keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithSender replaces the simulated sender.
func WithSender(s Sender) Option {
	return func(c *Controller) {
		if s != nil {
			c.sender = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext sets the context passed to the sender. Cancelling it aborts a
// pending send, which is then reported as a failure.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithUserAgent sets the client identification logged with submissions.
func WithUserAgent(ua string) Option {
	return func(c *Controller) { c.userAgent = ua }
}

// Controller drives one contact form. All methods and listeners must run on
// the loop it was created with.
type Controller struct {
	doc       dom.Document
	loop      eventloop.Loop
	cfg       Config
	sender    Sender
	logger    *slog.Logger
	ctx       context.Context
	userAgent string

	state     State
	validate  map[contact.Field]func()
	hideStats eventloop.Timer
	unshake   eventloop.Timer
	reset     eventloop.Timer
}

// New creates a controller writing to doc. Call Mount to attach listeners.
func New(doc dom.Document, loop eventloop.Loop, opts ...Option) *Controller {
	c := &Controller{
		doc:    doc,
		loop:   loop,
		cfg:    DefaultConfig(),
		logger: logger.Nop(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cfg = c.cfg.withDefaults()
	if c.sender == nil {
		c.sender = NewSimulatedSender(loop, c.cfg.SendDelay, c.logger)
	}

	c.validate = map[contact.Field]func(){
		contact.FieldName:  debounce.Func(loop, c.cfg.NameDebounce, func() { c.ValidateField(contact.FieldName) }),
		contact.FieldEmail: debounce.Func(loop, c.cfg.EmailDebounce, func() { c.ValidateField(contact.FieldEmail) }),
	}
	return c
}

// Mount registers the field, form and keyboard listeners and renders the
// initial counter.
func (c *Controller) Mount(r dom.Registrar) {
	for _, f := range contact.Fields {
		id := InputID(f)
		r.On(id, dom.EventBlur, func(*dom.Event) { c.ValidateField(f) })
		r.On(id, dom.EventInput, func(*dom.Event) { c.onInput(f) })
	}

	r.On(FormID, dom.EventSubmit, func(e *dom.Event) {
		e.PreventDefault()
		c.Submit()
	})

	r.On(dom.TargetDocument, dom.EventKeyDown, func(e *dom.Event) {
		if (e.Ctrl || e.Meta) && e.Key == "Enter" {
			e.PreventDefault()
			c.Submit()
		}
	})

	c.updateCounter()
}

// State returns the submission state.
func (c *Controller) State() State { return c.state }

func (c *Controller) onInput(f contact.Field) {
	c.clearError(f)
	if f == contact.FieldMessage {
		c.updateCounter()
	}
	if validate, ok := c.validate[f]; ok {
		validate()
	}
}

// ValidateField validates the current value of f and renders the outcome.
// It returns the rejection message, "" when the value is accepted.
func (c *Controller) ValidateField(f contact.Field) string {
	msg := contact.Validate(f, c.doc.Value(InputID(f)))
	if msg != "" {
		c.showError(f, msg)
		return msg
	}
	c.clearError(f)
	c.doc.AddClass(InputID(f), ClassSuccess)
	return ""
}

func (c *Controller) showError(f contact.Field, msg string) {
	id := InputID(f)
	c.doc.RemoveClass(id, ClassSuccess)
	c.doc.AddClass(id, ClassError)
	c.doc.SetText(ErrorTextID(f), msg)
	c.doc.AddClass(ErrorRegionID(f), ClassShow)
}

// clearError hides the error of f. The success mark is left alone.
func (c *Controller) clearError(f contact.Field) {
	c.doc.RemoveClass(InputID(f), ClassError)
	c.doc.RemoveClass(ErrorRegionID(f), ClassShow)
}

func (c *Controller) updateCounter() {
	cnt := contact.CountMessage(c.doc.Value(InputID(contact.FieldMessage)))
	c.doc.SetText(CounterID, cnt.Text())
	for _, band := range []contact.CounterBand{contact.CounterWarning, contact.CounterDanger} {
		if band == cnt.Band {
			c.doc.AddClass(CounterID, band.Class())
		} else {
			c.doc.RemoveClass(CounterID, band.Class())
		}
	}
}

// Submit validates every field and, when all pass, sends the form.
// It is ignored while a send is pending or the success panel is shown.
func (c *Controller) Submit() {
	if c.state.busy() {
		c.logger.Debug("submit ignored", slog.String("state", c.state.String()))
		return
	}

	errs := c.validateAll()
	c.showStats(errs)
	if !errs.IsEmpty() {
		c.shake()
		c.logger.Debug("submit rejected", logger.Error(errs))
		return
	}

	c.setBusy(true)
	c.state = StateSubmitting

	fut := async.Async(c.ctx, c.submission(), c.sender.Send)
	c.loop.Go(func() func() {
		receipt, err := fut.Await()
		return func() { c.finishSubmit(receipt, err) }
	})
}

func (c *Controller) validateAll() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range contact.Fields {
		if msg := c.ValidateField(f); msg != "" {
			errs.Add(validator.ValidationError{Field: f.String(), Message: msg})
		}
	}
	return errs
}

func (c *Controller) showStats(errs validator.ValidationErrors) {
	if c.hideStats != nil {
		c.hideStats.Stop()
		c.hideStats = nil
	}

	c.doc.SetDisplay(StatsID, "block")
	if !errs.IsEmpty() {
		c.doc.SetHTML(StatsContentID, summaryHTML(errs))
		return
	}

	c.doc.SetHTML(StatsContentID, `<span style="color: #27ae60;">✅ All fields are valid!</span>`)
	c.hideStats = c.loop.AfterFunc(c.cfg.SummaryHideDelay, func() {
		c.hideStats = nil
		c.doc.SetDisplay(StatsID, "none")
	})
}

func summaryHTML(errs validator.ValidationErrors) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<span style="color: #e74c3c;">❌ %d error(s) found:</span>`, len(errs))
	for _, e := range errs {
		b.WriteString("<br>• ")
		b.WriteString(templ.EscapeString(e.Field + ": " + e.Message))
	}
	return b.String()
}

func (c *Controller) shake() {
	if c.unshake != nil {
		c.unshake.Stop()
	}
	c.doc.SetStyle(SubmitID, "animation", shakeAnimation)
	c.unshake = c.loop.AfterFunc(c.cfg.ShakeDuration, func() {
		c.unshake = nil
		c.doc.SetStyle(SubmitID, "animation", "")
	})
}

func (c *Controller) setBusy(busy bool) {
	c.doc.SetDisabled(SubmitID, busy)
	if busy {
		c.doc.SetDisplay(SpinnerID, "inline-block")
		c.doc.SetText(LabelID, LabelSending)
		return
	}
	c.doc.SetDisplay(SpinnerID, "none")
	c.doc.SetText(LabelID, LabelIdle)
}

func (c *Controller) submission() Submission {
	value := func(f contact.Field) string {
		return contact.Normalize(f, c.doc.Value(InputID(f)))
	}
	return Submission{
		Name:      value(contact.FieldName),
		Email:     value(contact.FieldEmail),
		Message:   value(contact.FieldMessage),
		UserAgent: c.userAgent,
	}
}

func (c *Controller) finishSubmit(r Receipt, err error) {
	defer c.setBusy(false)

	if err != nil {
		c.state = StateFailed
		c.logger.Warn("send failed", logger.Error(err))
		c.doc.Alert(NoticeSendFailed)
		return
	}

	c.state = StateSucceeded
	c.logger.Info("message sent", slog.String("receipt_id", r.ID.String()))
	c.doc.SetDisplay(FormID, "none")
	c.doc.SetDisplay(SuccessID, "block")
	c.reset = c.loop.AfterFunc(c.cfg.ResetDelay, c.Reset)
}

// Reset clears the inputs and every mark and shows the empty form again.
func (c *Controller) Reset() {
	if c.reset != nil {
		c.reset.Stop()
		c.reset = nil
	}
	if c.hideStats != nil {
		c.hideStats.Stop()
		c.hideStats = nil
	}

	for _, f := range contact.Fields {
		c.doc.SetValue(InputID(f), "")
		c.clearError(f)
		c.doc.RemoveClass(InputID(f), ClassSuccess)
	}
	c.doc.SetDisplay(FormID, "block")
	c.doc.SetDisplay(SuccessID, "none")
	c.doc.SetDisplay(StatsID, "none")
	c.updateCounter()
	c.state = StateIdle
}
