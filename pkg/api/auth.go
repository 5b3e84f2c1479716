package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде, передается только по TLS
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token     string `json:"token"`                // bearer token (обычно JWT)
	Email     string `json:"email,omitempty"`      // email, под которым выполнен вход
	ExpiresIn int64  `json:"expires_in,omitempty"` // время жизни токена в секундах, 0 если неизвестно
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
