package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

func TestCreateUser(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	user := &models.User{
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	user := &models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, user))

	err := s.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestCreateUser_CaseSensitive(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &models.User{Username: "alice"}))

	// "Alice" и "alice" - разные пользователи
	err := s.CreateUser(ctx, &models.User{Username: "Alice"})
	require.NoError(t, err)

	_, err = s.GetUserByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	s := New(nil)

	_, err := s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserExists(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	exists, err := s.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.CreateUser(ctx, &models.User{Username: "alice"}))

	exists, err = s.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateUser_Concurrent(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	// Две одновременные регистрации одного username:
	// ровно одна должна победить
	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateUser(ctx, &models.User{Username: "alice"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
		}
	}
	assert.Equal(t, 1, succeeded)
}
