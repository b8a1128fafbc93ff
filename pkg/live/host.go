package live

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/contactform/pkg/contact"
	"github.com/dmitrymomot/contactform/pkg/dom"
	"github.com/dmitrymomot/contactform/pkg/form"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

// Host serves contact form sessions over HTTP with Datastar.
type Host struct {
	cfg     Config
	formCfg form.Config
	sender  form.Sender
	logger  *slog.Logger

	// ctx bounds every session; cancel stops them all.
	ctx    context.Context
	cancel context.CancelFunc
	store  *store
	router chi.Router
}

// New creates a host. Call Run to evict idle sessions and Close to stop them.
func New(opts ...Option) *Host {
	h := &Host{
		cfg:     defaultConfig(),
		formCfg: form.DefaultConfig(),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("live"))
	h.ctx, h.cancel = context.WithCancel(context.Background())
	h.store = newStore(h.cfg.SessionTTL, h.logger)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/", h.handlePage)
	r.Get("/stream", h.handleStream)
	r.Post("/events/{target}/{type}", h.handleEvent)
	h.router = r

	return h
}

// ServeHTTP implements http.Handler.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Run evicts idle sessions until ctx is done, then closes the host.
func (h *Host) Run(ctx context.Context) error {
	defer h.Close()
	h.store.janitor(ctx, h.cfg.JanitorInterval)
	return nil
}

// Close stops every session.
func (h *Host) Close() {
	h.cancel()
	h.store.closeAll()
}

func (h *Host) handlePage(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		s = h.store.create(h.ctx, sessionParams{
			userAgent: r.UserAgent(),
			formCfg:   h.formCfg,
			sender:    h.sender,
			buffer:    h.cfg.StreamBuffer,
			logger:    h.logger,
		})
		http.SetCookie(w, &http.Cookie{
			Name:     h.cfg.CookieName,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.cfg.SecureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page(s.Snapshot()).Render(r.Context(), w); err != nil {
		h.logger.ErrorContext(r.Context(), "render page", logger.SessionID(s.ID), logger.Error(err))
	}
}

func (h *Host) handleStream(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	changes, release := s.Subscribe()
	defer release()

	sse := datastar.NewSSE(w, r)
	if err := sendSignals(sse, snapshotSignals(s.Snapshot())); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-s.Done():
			return
		case c := <-changes:
			if err := sendChange(sse, c); err != nil {
				h.logger.DebugContext(r.Context(), "stream write failed",
					logger.SessionID(s.ID), logger.Error(errors.Join(ErrStreamClosed, err)))
				return
			}
		}
	}
}

func (h *Host) handleEvent(w http.ResponseWriter, r *http.Request) {
	s, err := h.session(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ev, err := parseEvent(chi.URLParam(r, "target"), chi.URLParam(r, "type"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var signals eventSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.fail(w, r, errors.Join(ErrInvalidSignals, err))
		return
	}
	if ev.Type == dom.EventKeyDown {
		ev.Key, ev.Ctrl, ev.Meta = signals.Kbd.Key, signals.Kbd.Ctrl, signals.Kbd.Meta
	}

	s.Dispatch(signals.values(), ev)
	w.WriteHeader(http.StatusNoContent)
}

// parseEvent accepts the events the page posts and nothing else.
func parseEvent(target, typ string) (dom.Event, error) {
	ev := dom.Event{Target: target, Type: dom.EventType(typ)}

	switch {
	case target == form.FormID && ev.Type == dom.EventSubmit:
	case target == dom.TargetDocument && ev.Type == dom.EventKeyDown:
	case contact.Field(target).Valid() && (ev.Type == dom.EventBlur || ev.Type == dom.EventInput):
	default:
		return dom.Event{}, ErrUnknownEvent
	}
	return ev, nil
}

func (h *Host) session(r *http.Request) (*Session, error) {
	c, err := r.Cookie(h.cfg.CookieName)
	if err != nil || c.Value == "" {
		return nil, ErrSessionNotFound
	}
	return h.store.get(c.Value)
}

func (h *Host) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrUnknownEvent), errors.Is(err, ErrInvalidSignals):
		code = http.StatusBadRequest
	}

	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", code),
		logger.Error(err),
	)
	http.Error(w, http.StatusText(code), code)
}

// Sessions returns the number of live sessions.
func (h *Host) Sessions() int {
	return h.store.len()
}

// setClock replaces the time source used for idle tracking.
func (h *Host) setClock(now func() time.Time) {
	h.store.now = now
}
