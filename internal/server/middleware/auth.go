package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/bookshelf/internal/server/handlers"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// AuthMiddleware создает middleware для проверки доступа к защищенным маршрутам
// На КАЖДЫЙ запрос проверяются и подпись/срок действия токена, и наличие
// серверной записи сессии - одного установленного когда-то контекста недостаточно
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig, sessions storage.SessionStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			// Валидируем подпись и срок действия токена
			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			// Токен валиден, но сессия могла быть завершена через logout
			session, err := sessions.GetSession(r.Context(), claims.SessionID)
			if err != nil {
				logger.Warn("Session not found", "session_id", claims.SessionID, "error", err)
				http.Error(w, "Unauthorized: session not found", http.StatusUnauthorized)
				return
			}

			if session.Expired(time.Now()) {
				logger.Warn("Session expired", "session_id", session.ID)
				http.Error(w, "Unauthorized: session expired", http.StatusUnauthorized)
				return
			}

			if session.Username != claims.Username {
				logger.Error("Session username mismatch",
					"session_id", session.ID,
					"session_username", session.Username,
					"token_username", claims.Username)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			// Добавляем данные сессии в контекст
			ctx := context.WithValue(r.Context(), handlers.SessionIDKey, session.ID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, session.Username)

			logger.Debug("User authenticated", "session_id", session.ID, "username", session.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
