package session

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is how often the janitor purges expired sessions. Expiry
// is also enforced lazily on Get, so the sweep only bounds memory growth.
const sweepInterval = time.Minute

// memoryStore is the default Store: a mutex-guarded map with a background
// janitor. All sessions are lost when the process exits.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewMemoryStore creates an in-memory session store whose sessions expire
// after ttl of inactivity.
func NewMemoryStore(ttl time.Duration) Store {
	s := &memoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *memoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *memoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Since(sess.LastSeen) > s.ttl {
		delete(s.sessions, token)
		return nil, nil
	}

	sess.LastSeen = time.Now().UTC()
	s.sessions[token] = sess
	return &sess, nil
}

func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *memoryStore) Close() error {
	close(s.stop)
	<-s.done
	return nil
}

func (s *memoryStore) janitor() {
	defer close(s.done)
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *memoryStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, token)
		}
	}
}
