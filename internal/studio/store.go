package studio

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Options struct {
	TTL time.Duration
}

// Store keeps studio sessions in memory. Nothing outlives the process.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(opts Options) *Store {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create starts a fresh session with the default form.
func (s *Store) Create() *Session {
	sess := NewSession(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for id, or false when it is unknown or expired.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions idle since before now-TTL. Sessions in the middle of a
// submission are kept.
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.Phase() == Submitting {
			continue
		}
		if sess.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run prunes every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.Prune(now); n > 0 {
				log.Printf("Pruned %d idle studio sessions", n)
			}
		}
	}
}
