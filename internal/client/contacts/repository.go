package contacts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/contactbook/internal/client/api"
	"github.com/iudanet/contactbook/internal/models"
	"github.com/iudanet/contactbook/internal/validation"
	pkgapi "github.com/iudanet/contactbook/pkg/api"
)

// ErrInvalidPageRequest неверные параметры запроса страницы
var ErrInvalidPageRequest = errors.New("invalid page request")

// Repository загружает контакты с сервера и создает новые.
// Ничего не кэширует: каждая страница запрашивается заново.
type Repository struct {
	client api.ClientAPI
	logger *slog.Logger
}

// NewRepository создает репозиторий контактов
func NewRepository(client api.ClientAPI, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{client: client, logger: logger}
}

// FetchPage загружает страницу контактов пользователя.
// filter передается серверу как tag, если это не models.FilterAll и не пустая строка.
// Ошибки адаптера возвращаются без подмены пустой страницей.
func (r *Repository) FetchPage(ctx context.Context, userEmail string, page, pageSize int, filter string) (*models.Page, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: user email is empty", ErrInvalidPageRequest)
	}
	if page < 0 {
		return nil, fmt.Errorf("%w: page must be >= 0, got %d", ErrInvalidPageRequest, page)
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be > 0, got %d", ErrInvalidPageRequest, pageSize)
	}

	params := url.Values{}
	params.Set("email", userEmail)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(pageSize))
	if filter != "" && filter != models.FilterAll {
		params.Set("tag", filter)
	}

	var resp pkgapi.ContactPageResponse
	if err := r.client.Send(ctx, http.MethodGet, "/contacts/user", api.RequestOptions{Params: params}, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch contacts page %d: %w", page, err)
	}

	result := &models.Page{
		Page:       page,
		TotalPages: resp.TotalPages,
		Content:    make([]models.Contact, 0, len(resp.Content)),
	}
	for _, c := range resp.Content {
		result.Content = append(result.Content, models.ContactFromAPI(c))
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("failed to fetch contacts page %d: %w", page,
			&api.HTTPError{Kind: api.KindDecode, Message: err.Error(), Err: err})
	}

	return result, nil
}

// Create создает контакт из черновика формы.
// Строка тегов превращается в набор; кэшированные страницы не меняются,
// чтобы увидеть новый контакт, страницу нужно загрузить заново.
func (r *Repository) Create(ctx context.Context, draft models.ContactDraft) (*models.Contact, error) {
	if err := validation.ValidateContactDraft(draft); err != nil {
		return nil, err
	}

	var resp pkgapi.Contact
	if err := r.client.Send(ctx, http.MethodPost, "/contacts", api.RequestOptions{Body: draft.ToRequest()}, &resp); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	created := models.ContactFromAPI(resp)
	r.logger.Info("contact created", "id", created.ID, "email", created.Email)
	return &created, nil
}
