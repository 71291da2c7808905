package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is an in-memory registry of live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	now        func() time.Time
	defaultKey string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithDefaultCredential seeds every new session with key.
func WithDefaultCredential(key string) StoreOption {
	return func(s *Store) { s.defaultKey = key }
}

// NewStore returns an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session with a random ID.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.now(), s.now)
	if s.defaultKey != "" {
		sess.SetCredential(s.defaultKey)
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		sess.touch(s.now())
	}
	return sess, ok
}

// Delete ends a session. Its ledger and credential are discarded.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.end()
	}
	return ok
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep ends every session idle for longer than idleTTL and returns how
// many were removed.
func (s *Store) Sweep(idleTTL time.Duration) int {
	cutoff := s.now().Add(-idleTTL)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.end()
	}
	return len(expired)
}

// RunJanitor sweeps every interval until ctx ends. onSweep, when not nil,
// receives the number of sessions removed by each non-empty sweep.
func (s *Store) RunJanitor(ctx context.Context, interval, idleTTL time.Duration, onSweep func(int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(idleTTL); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
