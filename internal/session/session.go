// Package session holds the per-visitor context: an API credential, a
// history ledger and the lock that serializes tool runs.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/teachassist/internal/ledger"
)

// Session is one visitor's working context. The credential lives only in
// memory and is never serialized.
type Session struct {
	ID        string
	CreatedAt time.Time
	Ledger    *ledger.Ledger

	mu         sync.Mutex
	credential string
	lastSeen   time.Time

	// run is a one-slot semaphore; holding it means a tool run is active.
	run chan struct{}
}

func newSession(id string, now time.Time, clock func() time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		Ledger:    ledger.New(ledger.WithClock(clock)),
		lastSeen:  now,
		run:       make(chan struct{}, 1),
	}
}

// SetCredential stores the API key for later generations. Surrounding
// whitespace is dropped; an empty key clears the credential.
func (s *Session) SetCredential(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = strings.TrimSpace(key)
}

// Credential returns the stored API key, or "".
func (s *Session) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// HasCredential reports whether an API key is stored.
func (s *Session) HasCredential() bool {
	return s.Credential() != ""
}

// LastSeen is the last time the session was looked up.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Acquire waits until no other run holds the session and returns the
// release func. It fails only when ctx ends first.
func (s *Session) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case s.run <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-s.run }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// end discards everything the session holds.
func (s *Session) end() {
	s.SetCredential("")
	s.Ledger.Clear()
}
