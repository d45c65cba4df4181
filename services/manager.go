package services

import (
	"sync"
	"time"
)

// SessionManager creates and tracks live session orchestrators. Dependencies
// are injected once here instead of living in package globals, so the whole
// evaluation pipeline can run against test doubles.
type SessionManager struct {
	evaluator Evaluator
	store     ResultStore
	timeout   time.Duration

	mu       sync.Mutex
	sessions map[string]*SessionOrchestrator
}

func NewSessionManager(evaluator Evaluator, store ResultStore, timeout time.Duration) *SessionManager {
	return &SessionManager{
		evaluator: evaluator,
		store:     store,
		timeout:   timeout,
		sessions:  make(map[string]*SessionOrchestrator),
	}
}

// Create starts a new session. In-progress sessions are memory-only: a
// restart discards them, only finalized results are durable.
func (m *SessionManager) Create(startupName, founderName string) *SessionOrchestrator {
	session := NewSessionOrchestrator(m.evaluator, m.store, startupName, founderName, m.timeout)
	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()
	return session
}

func (m *SessionManager) Get(id string) (*SessionOrchestrator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Remove drops a session, e.g. after a failed deck analysis or when the
// founder abandons the flow.
func (m *SessionManager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
