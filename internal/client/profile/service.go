package profile

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/contactbook/internal/client/api"
	"github.com/iudanet/contactbook/internal/models"
	"github.com/iudanet/contactbook/internal/validation"
	pkgapi "github.com/iudanet/contactbook/pkg/api"
)

const profilePath = "/users/me"

// Service читает и сохраняет профиль текущего пользователя
type Service struct {
	client api.ClientAPI
	logger *slog.Logger
}

// NewService создает сервис профиля
func NewService(client api.ClientAPI, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Get загружает профиль
func (s *Service) Get(ctx context.Context) (*models.Profile, error) {
	var resp pkgapi.Profile
	if err := s.client.Send(ctx, http.MethodGet, profilePath, api.RequestOptions{}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p := models.ProfileFromAPI(resp)
	return &p, nil
}

// Save сохраняет профиль целиком и возвращает запись сервера
func (s *Service) Save(ctx context.Context, p models.Profile) (*models.Profile, error) {
	if err := validation.ValidateProfile(p); err != nil {
		return nil, err
	}

	var resp pkgapi.Profile
	if err := s.client.Send(ctx, http.MethodPut, profilePath, api.RequestOptions{Body: p.ToAPI()}, &resp); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	saved := models.ProfileFromAPI(resp)
	s.logger.Info("profile saved", "email", saved.Email)
	return &saved, nil
}
