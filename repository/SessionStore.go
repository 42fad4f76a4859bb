package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"valuation/services"
)

var ErrSessionNotFound = errors.New("valuation session not found")

// SessionStore keeps live form sessions in memory. Sessions are independent of each other.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*services.Session
	geo      services.GeoLookup
	now      func() time.Time
}

func NewSessionStore(geo services.GeoLookup) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*services.Session),
		geo:      geo,
		now:      time.Now,
	}
}

// Create starts a new session under a fresh random id.
func (s *SessionStore) Create() *services.Session {
	session := services.NewSession(uuid.NewString(), s.geo, s.now)
	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()
	return session
}

func (s *SessionStore) Get(id string) (*services.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than maxIdle and returns how many were dropped.
func (s *SessionStore) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.LastActive().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
