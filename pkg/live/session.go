package live

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/contactform/pkg/contact"
	"github.com/dmitrymomot/contactform/pkg/dom"
	"github.com/dmitrymomot/contactform/pkg/eventloop"
	"github.com/dmitrymomot/contactform/pkg/form"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

// Session is one visitor's page: its document, loop and controller.
type Session struct {
	ID string

	doc    *dom.Memory
	loop   *eventloop.EventLoop
	ctrl   *form.Controller
	cancel context.CancelFunc
	logger *slog.Logger

	lastSeen atomic.Int64
	streams  atomic.Int32

	mu     sync.Mutex
	subs   map[chan dom.Change]struct{}
	buffer int
}

type sessionParams struct {
	id        string
	userAgent string
	formCfg   form.Config
	sender    form.Sender
	buffer    int
	logger    *slog.Logger
	now       time.Time
}

func newSession(parent context.Context, p sessionParams) *Session {
	ctx, cancel := context.WithCancel(parent)
	log := p.logger.With(logger.SessionID(p.id))

	s := &Session{
		ID:     p.id,
		cancel: cancel,
		logger: log,
		subs:   make(map[chan dom.Change]struct{}),
		buffer: p.buffer,
	}
	s.lastSeen.Store(p.now.UnixNano())

	opts := []dom.MemoryOption{dom.WithObserver(s.publish)}
	for _, el := range initialElements() {
		opts = append(opts, dom.WithElement(el))
	}
	s.doc = dom.NewMemory(opts...)
	s.loop = eventloop.New(eventloop.WithLogger(log))

	formOpts := []form.Option{
		form.WithConfig(p.formCfg),
		form.WithLogger(log),
		form.WithContext(ctx),
		form.WithUserAgent(p.userAgent),
	}
	if p.sender != nil {
		formOpts = append(formOpts, form.WithSender(p.sender))
	}
	s.ctrl = form.New(s.doc, s.loop, formOpts...)

	go func() {
		if err := s.loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("event loop stopped", logger.Error(err))
		}
	}()

	mounted := make(chan struct{})
	s.loop.Post(func() {
		s.ctrl.Mount(s.doc)
		close(mounted)
	})
	select {
	case <-mounted:
	case <-s.loop.Done():
	}

	return s
}

// initialElements is the page state before the controller mounts.
func initialElements() []dom.Element {
	els := []dom.Element{
		{ID: form.FormID, Display: "block"},
		{ID: form.SubmitID, Style: map[string]string{"animation": ""}},
		{ID: form.SpinnerID, Display: "none"},
		{ID: form.LabelID, Text: form.LabelIdle},
		{ID: form.SuccessID, Display: "none"},
		{ID: form.StatsID, Display: "none"},
		{ID: form.StatsContentID},
		{ID: form.CounterID},
	}
	for _, f := range contact.Fields {
		els = append(els,
			dom.Element{ID: form.InputID(f)},
			dom.Element{ID: form.ErrorRegionID(f)},
			dom.Element{ID: form.ErrorTextID(f)},
		)
	}
	return els
}

// Dispatch syncs the client values into the document and delivers e on the
// session loop.
func (s *Session) Dispatch(values map[contact.Field]string, e dom.Event) {
	s.loop.Post(func() {
		for f, v := range values {
			s.doc.Sync(form.InputID(f), v)
		}
		s.doc.Dispatch(&e)
	})
}

// Snapshot returns the current document state.
func (s *Session) Snapshot() map[string]dom.Element {
	return s.doc.Snapshot()
}

// Done is closed when the session loop stops.
func (s *Session) Done() <-chan struct{} {
	return s.loop.Done()
}

// Subscribe returns a channel receiving document changes and a function
// releasing it. The channel is never closed; watch Done instead.
func (s *Session) Subscribe() (<-chan dom.Change, func()) {
	ch := make(chan dom.Change, s.buffer)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	s.streams.Add(1)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
			s.streams.Add(-1)
		})
	}
}

// publish runs on the session loop.
func (s *Session) publish(c dom.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- c:
		default:
			s.logger.Warn("stream buffer full, change dropped", slog.String("element", c.ID))
		}
	}
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

func (s *Session) close() {
	s.cancel()
}
