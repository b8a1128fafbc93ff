package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// store keeps live sessions in memory and evicts idle ones.
type store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func newStore(ttl time.Duration, log *slog.Logger) *store {
	return &store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   log,
	}
}

func (st *store) create(parent context.Context, p sessionParams) *Session {
	p.id = uuid.NewString()
	p.now = st.now()
	s := newSession(parent, p)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Debug("session created", slog.String("session_id", s.ID))
	return s
}

func (st *store) get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	select {
	case <-s.Done():
		st.remove(id)
		return nil, ErrSessionNotFound
	default:
	}

	s.touch(st.now())
	return s, nil
}

func (st *store) remove(id string) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		s.close()
	}
}

// evict closes sessions idle for longer than the TTL. Sessions with an open
// stream are kept. It returns the number of evicted sessions.
func (st *store) evict() int {
	now := st.now()

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.streams.Load() > 0 || s.idleSince(now) <= st.ttl {
			continue
		}
		expired = append(expired, s)
		delete(st.sessions, id)
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.close()
		st.logger.Debug("session expired", slog.String("session_id", s.ID))
	}
	return len(expired)
}

func (st *store) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// closeAll stops every session.
func (st *store) closeAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

// janitor evicts idle sessions every interval until ctx is done.
func (st *store) janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.evict(); n > 0 {
				st.logger.Info("expired sessions evicted", slog.Int("count", n))
			}
		}
	}
}
