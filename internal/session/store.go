package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type slot struct {
	mu      sync.Mutex
	sess    Session
	removed bool
}

// Store keeps sessions in memory. Render passes for the same session are
// serialized; different sessions proceed in parallel.
type Store struct {
	mu    sync.Mutex
	slots map[string]*slot

	renders atomic.Int64
	now     func() time.Time
	newID   func() string
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used by the sweeper.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		slots:  make(map[string]*slot),
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Do runs fn with exclusive access to the session id, creating a new session
// when id is unknown. The session fn leaves behind is stored. Do returns the
// ID of the session used, which differs from id when one was created.
func (s *Store) Do(id string, fn func(Session) Session) string {
	sl := s.acquire(id)
	defer sl.mu.Unlock()

	next := fn(sl.sess)
	next.ID = sl.sess.ID
	next.LastSeen = s.now()
	sl.sess = next
	return next.ID
}

// Render runs one page render under the session lock and counts it in the
// process-wide total.
func (s *Store) Render(id string, fn func(Session) Session) string {
	s.renders.Add(1)
	return s.Do(id, fn)
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	sl, ok := s.slots[id]
	s.mu.Unlock()
	if !ok {
		return Session{}, false
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.sess, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// TotalRenders returns the number of render passes across all sessions
// since the process started.
func (s *Store) TotalRenders() int64 {
	return s.renders.Load()
}

// Sweep drops sessions idle for longer than idle and returns how many were
// removed.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sl := range s.slots {
		// Skip sessions mid-render; they are not idle.
		if !sl.mu.TryLock() {
			continue
		}
		if sl.sess.IdleSince(cutoff) {
			sl.removed = true
			delete(s.slots, id)
			removed++
		}
		sl.mu.Unlock()
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(idle); n > 0 {
				s.logger.InfoContext(ctx, "expired idle sessions", "removed", n, "remaining", s.Len())
			}
		}
	}
}

// acquire returns the locked slot for id, creating a session if needed.
func (s *Store) acquire(id string) *slot {
	for {
		s.mu.Lock()
		sl, ok := s.slots[id]
		if !ok {
			sl = &slot{sess: New(s.newID(), s.now())}
			s.slots[sl.sess.ID] = sl
		}
		s.mu.Unlock()

		sl.mu.Lock()
		if !sl.removed {
			return sl
		}
		// Swept between lookup and lock; start over with a new session.
		sl.mu.Unlock()
		id = ""
	}
}
