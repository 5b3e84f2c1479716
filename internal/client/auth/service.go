package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/contactbook/internal/client/storage"
	"github.com/iudanet/contactbook/internal/validation"
	pkgapi "github.com/iudanet/contactbook/pkg/api"
)

// ErrNotAuthenticated нет действующей сессии
var ErrNotAuthenticated = errors.New("not authenticated")

// Identity данные текущей сессии
type Identity struct {
	ExpiresAt time.Time // нулевое значение, если срок неизвестен
	Email     string
}

// Session implements Service on top of AuthStorage
type Session struct {
	api     LoginClient
	storage storage.AuthStorage
	logger  *slog.Logger
	now     func() time.Time
}

var _ Service = (*Session)(nil)

// NewSession создает сервис сессии. apiClient может быть nil, если Login не используется.
func NewSession(apiClient LoginClient, authStorage storage.AuthStorage, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		api:     apiClient,
		storage: authStorage,
		logger:  logger,
		now:     time.Now,
	}
}

// Login выполняет аутентификацию пользователя
func (s *Session) Login(ctx context.Context, email, password string) (*Identity, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if s.api == nil {
		return nil, fmt.Errorf("login is not available: api client is not configured")
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var expiresAt time.Time
	if resp.ExpiresIn > 0 {
		expiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	} else {
		expiresAt = tokenExpiry(resp.Token)
	}

	// Сервер может нормализовать email
	if resp.Email != "" {
		email = resp.Email
	}

	return s.save(ctx, email, resp.Token, expiresAt)
}

// SetToken сохраняет токен, полученный внешним процессом входа
func (s *Session) SetToken(ctx context.Context, email, token string) (*Identity, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}
	return s.save(ctx, email, token, tokenExpiry(token))
}

func (s *Session) save(ctx context.Context, email, token string, expiresAt time.Time) (*Identity, error) {
	data := &storage.AuthData{Email: email, Token: token}
	if !expiresAt.IsZero() {
		data.ExpiresAt = expiresAt.Unix()
	}
	if err := s.storage.SaveAuth(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.Info("session saved", "email", email, "expires_at", expiresAt)
	return &Identity{Email: email, ExpiresAt: expiresAt}, nil
}

// Logout удаляет локальные данные авторизации
func (s *Session) Logout(ctx context.Context) error {
	err := s.storage.DeleteAuth(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	s.logger.Info("session removed")
	return nil
}

// Token возвращает bearer token для исходящих запросов.
// Отсутствующий или истекший токен дает пустую строку без ошибки.
func (s *Session) Token(ctx context.Context) (string, error) {
	data, err := s.current(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return "", nil
		}
		return "", err
	}
	return data.Token, nil
}

// CurrentUser возвращает данные текущей сессии
func (s *Session) CurrentUser(ctx context.Context) (*Identity, error) {
	data, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	id := &Identity{Email: data.Email}
	if data.ExpiresAt > 0 {
		id.ExpiresAt = time.Unix(data.ExpiresAt, 0)
	}
	return id, nil
}

// IsAuthenticated проверяет наличие действующего токена
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.current(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Session) current(ctx context.Context) (*storage.AuthData, error) {
	data, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	if data.Expired(s.now()) {
		s.logger.Debug("stored token has expired", "email", data.Email)
		return nil, ErrNotAuthenticated
	}
	return data, nil
}

// tokenExpiry читает claim exp без проверки подписи.
// Для непрозрачных токенов возвращает нулевое время.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
