package models

import "time"

// User представляет пользователя в системе
type User struct {
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
	CreatedAt    time.Time `json:"created_at"`    // время регистрации
}

// Session представляет активную сессию пользователя
// ID сессии попадает в claims подписанного токена вместо каких-либо секретов
type Session struct {
	ID        string    `json:"id"`         // UUID сессии
	Username  string    `json:"username"`   // username владельца сессии
	IssuedAt  time.Time `json:"issued_at"`  // время выдачи
	ExpiresAt time.Time `json:"expires_at"` // время истечения
}

// Expired возвращает true, если срок действия сессии истек
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
