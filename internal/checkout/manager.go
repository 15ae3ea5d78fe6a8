package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

// Manager is the process-local store of live checkout sessions. Each session
// belongs to exactly one checkout invocation; nothing is shared across
// sessions, and removing a session discards its draft and instrument.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Start opens a fresh session for the space. The new session never inherits
// data from a previous checkout.
func (m *Manager) Start(space domain.Space) *Session {
	s := newSession(space)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Remove discards a session. Safe to call while a submit is in flight: the
// detached session absorbs the outcome and nothing observes it.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// SweepExpired drops sessions idle longer than the TTL and returns their ids.
func (m *Manager) SweepExpired(ctx context.Context) []string {
	cutoff := time.Now().UTC().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []string
	for id, s := range m.sessions {
		if ctx.Err() != nil {
			break
		}
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			expired = append(expired, id)
		}
	}

	return expired
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
