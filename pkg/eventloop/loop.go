package eventloop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Option configures an EventLoop.
type Option func(*EventLoop)

// WithLogger sets the logger used to report recovered callback panics.
func WithLogger(l *slog.Logger) Option {
	return func(el *EventLoop) {
		if l != nil {
			el.logger = l
		}
	}
}

// EventLoop is the realtime Loop. Callbacks run on the goroutine calling Run.
type EventLoop struct {
	mu      sync.Mutex
	queue   []func()
	running bool
	closed  bool

	wake   chan struct{}
	done   chan struct{}
	logger *slog.Logger
}

var _ Loop = (*EventLoop)(nil)

// New returns an idle loop. Callbacks queue up until Run is called.
func New(opts ...Option) *EventLoop {
	l := &EventLoop{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run drives the loop until ctx is done. Pending callbacks are dropped on exit.
func (l *EventLoop) Run(ctx context.Context) error {
	l.mu.Lock()
	switch {
	case l.closed:
		l.mu.Unlock()
		return ErrClosed
	case l.running:
		l.mu.Unlock()
		return ErrAlreadyRunning
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.closed = true
		l.queue = nil
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.call(fn)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Done is closed after Run returns.
func (l *EventLoop) Done() <-chan struct{} {
	return l.done
}

// Post queues fn. It is safe to call from any goroutine, including the loop itself.
// Callbacks posted after the loop closed are dropped.
func (l *EventLoop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc runs fn on the loop after d. A timer stopped before its callback
// reaches the front of the queue never runs, even if the delay already elapsed.
func (l *EventLoop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.fired.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

// Go runs work on a new goroutine and posts its continuation.
func (l *EventLoop) Go(work func() func()) {
	go func() {
		if next := work(); next != nil {
			l.Post(next)
		}
	}()
}

func (l *EventLoop) Now() time.Time { return time.Now() }

func (l *EventLoop) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l *EventLoop) call(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("event loop callback panicked",
				slog.String("panic", fmt.Sprint(r)))
		}
	}()
	fn()
}

type loopTimer struct {
	timer *time.Timer
	// fired doubles as the stopped flag: whoever flips it first wins.
	fired atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return t.fired.CompareAndSwap(false, true)
}
