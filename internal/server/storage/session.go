package storage

import (
	"context"

	"github.com/iudanet/bookshelf/internal/models"
)

// SessionStorage defines interface for server-side session persistence
// The signed credential only carries the session ID; the authoritative
// session record lives here
type SessionStorage interface {
	// SaveSession stores a new session
	// If session with same ID exists, it will be replaced
	SaveSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves session by ID
	// Returns ErrSessionNotFound if session doesn't exist
	GetSession(ctx context.Context, id string) (*models.Session, error)

	// DeleteSession deletes session by ID
	// Returns ErrSessionNotFound if session doesn't exist
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes all expired sessions
	// Returns number of deleted sessions
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
