package storage

import (
	"context"

	"github.com/iudanet/bookshelf/internal/models"
)

// UserStorage defines interface for registered user persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username (exact match)
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UserExists reports whether a user with this username is registered
	// Existence check only, credentials are not inspected
	UserExists(ctx context.Context, username string) (bool, error)
}
