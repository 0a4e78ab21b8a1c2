package memory

import (
	"context"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}

	// Копируем структуру, чтобы вызывающий код не держал ссылку на хранимую
	stored := *user
	s.users[user.Username] = &stored

	return nil
}

// GetUserByUsername retrieves user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

// UserExists reports whether a user with this username is registered
func (s *Storage) UserExists(ctx context.Context, username string) (bool, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	_, ok := s.users[username]
	return ok, nil
}
