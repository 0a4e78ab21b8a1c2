package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль пользователя
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Username string `json:"username"` // зарегистрированный username
	Message  string `json:"message"`  // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль пользователя
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // подписанный JWT access token
	Username    string `json:"username"`     // username владельца сессии
	ExpiresIn   int64  `json:"expires_in"`   // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
