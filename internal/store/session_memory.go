package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-infaq/models"
)

// memorySessionRepository keeps the session in process memory only. Used
// when the client runs without a session database.
type memorySessionRepository struct {
	mu      sync.RWMutex
	session *models.Session
}

// NewMemorySessionRepository returns an empty in-memory [SessionRepository].
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (m *memorySessionRepository) Load(_ context.Context) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil, ErrSessionNotFound
	}
	s := *m.session
	return &s, nil
}

func (m *memorySessionRepository) Save(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = &session
	return nil
}

func (m *memorySessionRepository) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	return nil
}
