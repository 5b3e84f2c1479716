package storage

import (
	"context"
	"time"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the bearer token on client.
// The token is opaque for the client: it is written by login, read before
// every request and removed by logout.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing the previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	// Returns ErrAuthNotFound if there is nothing to delete
	DeleteAuth(ctx context.Context) error
}

// AuthData represents authentication information in storage
type AuthData struct {
	Email     string `json:"email"`      // email пользователя, для которого загружаются контакты
	Token     string `json:"token"`      // bearer token
	ExpiresAt int64  `json:"expires_at"` // unix time истечения, 0 если неизвестно
}

// Expired проверяет срок действия токена относительно now
func (a *AuthData) Expired(now time.Time) bool {
	return a.ExpiresAt > 0 && !now.Before(time.Unix(a.ExpiresAt, 0))
}
