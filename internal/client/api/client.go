package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/iudanet/contactbook/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI интерфейс адаптера, которым пользуются репозитории
type ClientAPI interface {
	Send(ctx context.Context, method, path string, opts RequestOptions, result any) error
}

// TokenSource отдает текущий bearer token. Пустая строка означает, что токена нет.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken TokenSource с фиксированным значением
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// TokenFunc позволяет использовать функцию как TokenSource
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// RequestOptions параметры запроса
type RequestOptions struct {
	Params url.Values // query параметры
	Body   any        // тело, сериализуется в JSON
}

const (
	defaultTimeout = 30 * time.Second
	maxRedirects   = 10
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	tokens TokenSource
	http   *resty.Client
	logger *slog.Logger
}

var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// WithTimeout задает таймаут одного запроса
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithLogger задает логгер
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithHTTPClient подменяет транспорт (например, для httpmock)
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// NewClient создает новый API клиент.
// baseURL включает префикс API, например http://localhost:8080/api
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	o := clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(o.timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
			// Ограничиваем количество редиректов
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			// Копируем заголовок Authorization при редиректе
			if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
				req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
			}
			return nil
		}))

	return &Client{
		tokens: tokens,
		http:   rc,
		logger: o.logger,
	}
}

// HTTPClient возвращает нижележащий *http.Client
func (c *Client) HTTPClient() *http.Client {
	return c.http.GetClient()
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.Send(ctx, http.MethodPost, "/auth/login", RequestOptions{Body: req}, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login request failed: %w", decodeError("response has no token", nil))
	}
	return &resp, nil
}

// Send выполняет один HTTP запрос без повторов.
// Все ошибки транспорта и ответа приводятся к *HTTPError.
func (c *Client) Send(ctx context.Context, method, path string, opts RequestOptions, result any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth token: %w", err)
	}

	requestID := uuid.NewString()
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if token != "" {
		req.SetAuthToken(token)
	}
	if len(opts.Params) > 0 {
		req.SetQueryParamsFromValues(opts.Params)
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err)
		return networkError(err)
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
		"request_id", requestID,
		"duration", time.Since(started))

	body := resp.Body()

	// Проверяем статус код
	if !resp.IsSuccess() {
		return statusError(resp.StatusCode(), body)
	}

	// Декодируем успешный ответ
	if result == nil {
		return nil
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return decodeError("empty response body", nil)
	}
	if err := json.Unmarshal(body, result); err != nil {
		return decodeError("failed to decode response", err)
	}
	return nil
}

func statusError(code int, body []byte) *HTTPError {
	herr := &HTTPError{Kind: KindStatus, StatusCode: code}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			herr.Message = errResp.Message
		case errResp.Error != "":
			herr.Message = errResp.Error
		}
	}
	if herr.Message == "" {
		herr.Message = strings.TrimSpace(string(body))
	}
	if herr.Message == "" {
		herr.Message = http.StatusText(code)
	}
	return herr
}
