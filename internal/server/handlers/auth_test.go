package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookshelf/internal/crypto"
	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:     []byte("test-secret"),
		SessionTTL: time.Hour,
	}
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) UserExists(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

// mockSessionStorage is a mock implementation of SessionStorage for testing
type mockSessionStorage struct {
	sessions    map[string]*models.Session // session ID -> Session
	saveError   error
	deleteError error
}

func newMockSessionStorage() *mockSessionStorage {
	return &mockSessionStorage{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionStorage) SaveSession(ctx context.Context, session *models.Session) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionStorage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockSessionStorage) DeleteSession(ctx context.Context, id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.sessions[id]; !ok {
		return storage.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionStorage) DeleteExpiredSessions(ctx context.Context) (int, error) {
	now := time.Now()
	deleted := 0
	for id, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func registerRequest(t *testing.T, handler *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Register(w, req)
	return w
}

func loginRequest(t *testing.T, handler *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Login(w, req)
	return w
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userStorage := newMockUserStorage()
	handler := NewAuthHandler(setupTestLogger(), userStorage, newMockSessionStorage(), testJWTConfig())

	w := registerRequest(t, handler, api.RegisterRequest{Username: "alice", Password: "secret"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response api.RegisterResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "alice", response.Username)

	// Пользователь сохранен, пароль - только в виде хеша
	user, err := userStorage.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, crypto.VerifyPassword("secret", user.PasswordHash))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), newMockSessionStorage(), testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), newMockSessionStorage(), testJWTConfig())

	tests := []struct {
		name    string
		request api.RegisterRequest
	}{
		{"empty username", api.RegisterRequest{Username: "", Password: "secret"}},
		{"empty password", api.RegisterRequest{Username: "alice", Password: ""}},
		{"both empty", api.RegisterRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := registerRequest(t, handler, tt.request)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), newMockSessionStorage(), testJWTConfig())

	// Первая регистрация проходит, вторая - конфликт
	w := registerRequest(t, handler, api.RegisterRequest{Username: "alice", Password: "secret"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = registerRequest(t, handler, api.RegisterRequest{Username: "alice", Password: "other"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userStorage := newMockUserStorage()
	sessionStorage := newMockSessionStorage()
	jwtConfig := testJWTConfig()
	handler := NewAuthHandler(setupTestLogger(), userStorage, sessionStorage, jwtConfig)

	hash, err := crypto.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, userStorage.CreateUser(context.Background(), &models.User{
		Username:     "alice",
		PasswordHash: hash,
	}))

	w := loginRequest(t, handler, api.LoginRequest{Username: "alice", Password: "secret"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "alice", response.Username)
	assert.Equal(t, int64(3600), response.ExpiresIn)

	// Токен валиден и несет ID сессии, а не пароль
	claims, err := ValidateAccessToken(jwtConfig, response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.SessionID)

	session, err := sessionStorage.GetSession(context.Background(), claims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.Expired(time.Now()))
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	userStorage := newMockUserStorage()
	handler := NewAuthHandler(setupTestLogger(), userStorage, newMockSessionStorage(), testJWTConfig())

	hash, err := crypto.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, userStorage.CreateUser(context.Background(), &models.User{
		Username:     "alice",
		PasswordHash: hash,
	}))

	w := loginRequest(t, handler, api.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), newMockSessionStorage(), testJWTConfig())

	w := loginRequest(t, handler, api.LoginRequest{Username: "nobody", Password: "secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), newMockSessionStorage(), testJWTConfig())

	tests := []struct {
		name    string
		request api.LoginRequest
	}{
		{"empty username", api.LoginRequest{Username: "", Password: "secret"}},
		{"empty password", api.LoginRequest{Username: "alice", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := loginRequest(t, handler, tt.request)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sessionStorage := newMockSessionStorage()
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), sessionStorage, testJWTConfig())

	require.NoError(t, sessionStorage.SaveSession(context.Background(), &models.Session{
		ID:        "session-1",
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	ctx := context.WithValue(req.Context(), SessionIDKey, "session-1")
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err := sessionStorage.GetSession(context.Background(), "session-1")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторный logout той же сессии - тоже 204
	w = httptest.NewRecorder()
	handler.Logout(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthHandler_Logout_NoContext(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newMockUserStorage(), newMockSessionStorage(), testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
