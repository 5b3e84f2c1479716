package auth

import (
	"context"

	"github.com/iudanet/contactbook/internal/client/api"
	pkgapi "github.com/iudanet/contactbook/pkg/api"
)

// Service defines authentication operations of the client.
// It is the only writer of the stored token; the HTTP adapter reads it
// through api.TokenSource.
type Service interface {
	api.TokenSource

	// Login аутентифицирует пользователя на сервере и сохраняет токен
	Login(ctx context.Context, email, password string) (*Identity, error)

	// SetToken сохраняет токен, полученный вне клиента (внешний вход)
	SetToken(ctx context.Context, email, token string) (*Identity, error)

	// Logout удаляет сохраненный токен. Повторный вызов не является ошибкой.
	Logout(ctx context.Context) error

	// CurrentUser возвращает данные текущей сессии
	// Возвращает ErrNotAuthenticated если токена нет или он истек
	CurrentUser(ctx context.Context) (*Identity, error)

	// IsAuthenticated проверяет наличие действующего токена
	IsAuthenticated(ctx context.Context) (bool, error)
}

// LoginClient часть API клиента, нужная для входа
type LoginClient interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}
