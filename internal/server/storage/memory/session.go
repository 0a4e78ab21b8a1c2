package memory

import (
	"context"
	"time"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// SaveSession stores a new session
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	stored := *session
	s.sessions[session.ID] = &stored

	return nil
}

// GetSession retrieves session by ID
func (s *Storage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}

	result := *session
	return &result, nil
}

// DeleteSession deletes session by ID
func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return storage.ErrSessionNotFound
	}

	delete(s.sessions, id)
	return nil
}

// DeleteExpiredSessions removes all expired sessions
func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	now := time.Now()
	deleted := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			deleted++
		}
	}

	return deleted, nil
}
