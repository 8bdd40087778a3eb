package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/live2d-viewer/internal/character"
	"github.com/Faultbox/live2d-viewer/internal/logger"
)

// Manager errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many sessions")
)

// Manager owns the live sessions of a server, keyed by a random UUID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	max      int
}

// NewManager creates a manager. max <= 0 means unlimited.
func NewManager(max int) *Manager {
	return &Manager{sessions: make(map[string]*Session), max: max}
}

// Create starts a new session for char.
func (m *Manager) Create(char *character.Character, opts Options) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, fmt.Errorf("%w: limit %d", ErrTooManySessions, m.max)
	}

	id := uuid.NewString()
	s := New(id, char, opts)
	m.sessions[id] = s
	logger.Debug("session created", zap.String("session", id), zap.String("character", char.ID))
	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Remove closes and forgets a session.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.Close()
	logger.Debug("session removed", zap.String("session", id))
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll closes every session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
