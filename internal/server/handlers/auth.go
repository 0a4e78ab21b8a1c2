package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bookshelf/internal/crypto"
	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/validation"
	"github.com/iudanet/bookshelf/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// SessionIDKey ключ для хранения session_id в контексте
	SessionIDKey contextKey = "session_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetSessionID извлекает session_id из контекста запроса
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}

// GetUsername извлекает username из контекста запроса
// Это единственный источник идентичности для review-операций:
// username из тела запроса никогда не используется
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger         *slog.Logger
	userStorage    storage.UserStorage
	sessionStorage storage.SessionStorage
	jwtConfig      JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, sessionStorage storage.SessionStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:         logger,
		userStorage:    userStorage,
		sessionStorage: sessionStorage,
		jwtConfig:      jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Проверка обязательных полей
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль - исходный пароль не сохраняется
	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			h.sendError(w, "username already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully", slog.String("username", req.Username))

	resp := api.RegisterResponse{
		Username: req.Username,
		Message:  "User registered successfully. Now you can login",
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя и выдача сессии
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Проверка обязательных полей
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Сравнение точное: (username, password) должны совпасть как пара
	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Создаем сессию: в claims токена попадает только ее непрозрачный ID
	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		Username:  user.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(h.jwtConfig.SessionTTL),
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, session.ID, session.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessionStorage.SaveSession(ctx, session); err != nil {
		h.logger.ErrorContext(ctx, "failed to save session", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Попутно подчищаем истекшие сессии
	if deleted, err := h.sessionStorage.DeleteExpiredSessions(ctx); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to delete expired sessions", slog.Any("error", err))
	} else if deleted > 0 {
		h.logger.DebugContext(ctx, "expired sessions deleted", slog.Int("count", deleted))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("session_id", session.ID))

	resp := api.TokenResponse{
		AccessToken: accessToken,
		Username:    user.Username,
		ExpiresIn:   expiresIn,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Выход пользователя (удаление сессии)
// Требует авторизации: session_id берется из контекста, установленного middleware
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := GetSessionID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "session id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.sessionStorage.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			// Сессия уже удалена или истекла - выход все равно состоялся
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete session", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged out successfully", slog.String("session_id", sessionID))

	w.WriteHeader(http.StatusNoContent)
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

// sendError отправляет JSON ответ с ошибкой
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	sendError(h.logger, w, message, statusCode)
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}
