package eventloop

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Manual is a deterministic Loop driven by the caller. Time only moves in
// Advance and callbacks only run inside Flush or Advance, on the calling
// goroutine. Work started with Go may block in Sleep; Flush treats such work
// as idle until Advance reaches its deadline.
type Manual struct {
	mu       sync.Mutex
	cond     *sync.Cond
	now      time.Time
	queue    []func()
	timers   []*manualTimer
	seq      uint64
	working  int
	sleeping int
}

var _ Loop = (*Manual)(nil)

// NewManual returns a manual loop whose clock starts at start.
func NewManual(start time.Time) *Manual {
	m := &Manual{now: start}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Post(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.queue = append(m.queue, fn)
	m.mu.Unlock()
	m.cond.Broadcast()
}

// AfterFunc queues fn once Advance reaches its deadline. Like EventLoop, a
// timer stopped while its callback is queued never runs.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	var t *manualTimer
	t = m.addTimer(d, func() {
		m.queue = append(m.queue, func() {
			if t.claim() {
				fn()
			}
		})
	})
	return t
}

func (m *Manual) Go(work func() func()) {
	m.mu.Lock()
	m.working++
	m.mu.Unlock()

	go func() {
		next := work()

		m.mu.Lock()
		if next != nil {
			m.queue = append(m.queue, next)
		}
		m.working--
		m.mu.Unlock()
		m.cond.Broadcast()
	}()
}

// Sleep blocks until Advance moves the clock d past the current time.
func (m *Manual) Sleep(ctx context.Context, d time.Duration) error {
	wake := make(chan struct{})

	m.mu.Lock()
	t := m.addTimer(d, func() {
		m.sleeping--
		close(wake)
	})
	m.sleeping++
	m.mu.Unlock()
	m.cond.Broadcast()

	select {
	case <-wake:
		return nil
	case <-ctx.Done():
		m.mu.Lock()
		if m.removeTimer(t) {
			m.sleeping--
		}
		m.mu.Unlock()
		m.cond.Broadcast()
		return ctx.Err()
	}
}

// Flush runs queued callbacks, including ones queued while flushing, and
// waits for running work to finish or go to sleep.
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		for len(m.queue) == 0 && m.working > m.sleeping {
			m.cond.Wait()
		}
		if len(m.queue) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()

		fn()
	}
}

// Advance moves the clock forward by d, firing due timers in deadline order
// and flushing after each one.
func (m *Manual) Advance(d time.Duration) {
	m.Flush()

	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		if len(m.timers) == 0 || m.timers[0].when.After(target) {
			m.now = target
			m.mu.Unlock()
			break
		}
		t := m.timers[0]
		m.timers = m.timers[1:]
		m.now = t.when
		t.fire()
		m.mu.Unlock()
		m.cond.Broadcast()

		m.Flush()
	}

	m.Flush()
}

// Pending returns the number of armed timers, sleepers included.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// addTimer must be called with m.mu held. fire also runs with m.mu held.
func (m *Manual) addTimer(d time.Duration, fire func()) *manualTimer {
	m.seq++
	t := &manualTimer{m: m, when: m.now.Add(d), seq: m.seq, fire: fire}
	i, _ := slices.BinarySearchFunc(m.timers, t, compareTimers)
	m.timers = slices.Insert(m.timers, i, t)
	return t
}

// removeTimer must be called with m.mu held.
func (m *Manual) removeTimer(t *manualTimer) bool {
	i := slices.Index(m.timers, t)
	if i < 0 {
		return false
	}
	m.timers = slices.Delete(m.timers, i, i+1)
	return true
}

func compareTimers(a, b *manualTimer) int {
	if c := a.when.Compare(b.when); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}

type manualTimer struct {
	m    *Manual
	when time.Time
	seq  uint64
	fire func()
	done bool
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.m.removeTimer(t)
	return true
}

func (t *manualTimer) claim() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
