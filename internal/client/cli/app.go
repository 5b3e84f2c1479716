package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/contactbook/internal/client/api"
	"github.com/iudanet/contactbook/internal/client/auth"
	"github.com/iudanet/contactbook/internal/client/config"
	"github.com/iudanet/contactbook/internal/client/contacts"
	"github.com/iudanet/contactbook/internal/client/profile"
	"github.com/iudanet/contactbook/internal/client/storage/boltdb"
)

// App собранные зависимости клиента
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *boltdb.Storage
	API      *api.Client
	Session  auth.Service
	Contacts *contacts.Repository
	Profiles *profile.Service
}

// Bootstrap открывает локальную базу и создает сервисы
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Адаптер читает токен из сессии при каждом запросе
	var session *auth.Session
	tokens := api.TokenFunc(func(ctx context.Context) (string, error) {
		return session.Token(ctx)
	})

	client := api.NewClient(cfg.ServerURL, tokens,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger.With("component", "api")),
	)
	session = auth.NewSession(client, store, logger.With("component", "auth"))

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		API:      client,
		Session:  session,
		Contacts: contacts.NewRepository(client, logger.With("component", "contacts")),
		Profiles: profile.NewService(client, logger.With("component", "profile")),
	}, nil
}

// Close закрывает локальную базу
func (a *App) Close() error {
	if a == nil || a.Store == nil {
		return nil
	}
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// errNotLoggedIn текст подсказки для команд, которым нужна сессия
var errNotLoggedIn = errors.New("not authenticated. Please run 'contactbook login' first")

// currentUser возвращает email текущего пользователя или подсказку про login
func (a *App) currentUser(ctx context.Context) (*auth.Identity, error) {
	id, err := a.Session.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return nil, errNotLoggedIn
		}
		return nil, err
	}
	return id, nil
}

// explain добавляет подсказку к ошибкам сервера
func explain(err error) error {
	switch api.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (session rejected by server, run 'contactbook login')", err)
	}
	if errors.Is(err, api.ErrNetwork) {
		return fmt.Errorf("%w (is the server running?)", err)
	}
	return err
}
