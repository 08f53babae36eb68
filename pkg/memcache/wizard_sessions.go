package memcache

import (
	"sync"
	"time"

	"mcstudio/internal/wizard"
)

type SessionStore interface {
	Put(session *wizard.Session, ttl time.Duration)

	// Get returns the live session for id, or false if missing/expired.
	Get(id string) (*wizard.Session, bool)

	Delete(id string)
}

type entry struct {
	session   *wizard.Session
	expiresAt time.Time
}

// WizardSessions keeps in-flight questionnaire sessions in process memory.
// Submitted or abandoned sessions age out on their own.
type WizardSessions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewWizardSessions() *WizardSessions {
	return &WizardSessions{data: make(map[string]entry)}
}

func (s *WizardSessions) Put(session *wizard.Session, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = entry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *WizardSessions) Get(id string) (*wizard.Session, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, id) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.session, true
}

func (s *WizardSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
