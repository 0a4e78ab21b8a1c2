package storage

import (
	"context"
)

// AuthStorage defines interface for storing authentication data on client
// The token is stored as-is: it is an opaque signed credential issued by
// the server and carries no secrets beyond the session reference.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the current session on this client
type AuthData struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}
