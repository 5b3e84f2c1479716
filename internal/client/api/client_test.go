package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contactbook/pkg/api"
)

type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/api/", nil, WithTimeout(5*time.Second))

	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080/api", client.http.BaseURL)
	assert.NotNil(t, client.HTTPClient())
	assert.Equal(t, 5*time.Second, client.HTTPClient().Timeout)
}

// TestClient_Send_AttachesBearerToken проверяет заголовки запроса
func TestClient_Send_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contacts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"c-1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", StaticToken("secret-token"))

	var result struct {
		ID string `json:"id"`
	}
	err := client.Send(context.Background(), http.MethodPost, "/contacts",
		RequestOptions{Body: map[string]string{"name": "Alice"}}, &result)

	require.NoError(t, err)
	assert.Equal(t, "c-1", result.ID)
}

// TestClient_Send_NoToken проверяет, что без токена заголовок не добавляется
func TestClient_Send_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "a@b.c", r.URL.Query().Get("email"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// Токен читается при каждом запросе
	calls := 0
	tokens := tokenFunc(func(context.Context) (string, error) {
		calls++
		return "", nil
	})
	client := NewClient(server.URL, tokens)

	params := url.Values{}
	params.Set("email", "a@b.c")
	params.Set("page", "2")

	var out map[string]any
	require.NoError(t, client.Send(context.Background(), http.MethodGet, "/contacts/user", RequestOptions{Params: params}, &out))
	require.NoError(t, client.Send(context.Background(), http.MethodGet, "/contacts/user", RequestOptions{Params: params}, &out))
	assert.Equal(t, 2, calls)
}

func TestClient_Send_TokenSourceError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", tokenFunc(func(context.Context) (string, error) {
		return "", errors.New("storage unavailable")
	}))

	err := client.Send(context.Background(), http.MethodGet, "/contacts", RequestOptions{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage unavailable")
}

// TestClient_Send_Errors проверяет нормализацию ошибок
func TestClient_Send_Errors(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		wantKind       ErrorKind
		wantStatus     int
		expectedErrMsg string
	}{
		{
			name:           "status with message",
			statusCode:     http.StatusConflict,
			body:           `{"error":"conflict","message":"contact already exists"}`,
			wantKind:       KindStatus,
			wantStatus:     http.StatusConflict,
			expectedErrMsg: "http status error (409): contact already exists",
		},
		{
			name:           "status with error field only",
			statusCode:     http.StatusUnauthorized,
			body:           `{"error":"unauthorized"}`,
			wantKind:       KindStatus,
			wantStatus:     http.StatusUnauthorized,
			expectedErrMsg: "(401): unauthorized",
		},
		{
			name:           "status with plain body",
			statusCode:     http.StatusInternalServerError,
			body:           "Internal Server Error",
			wantKind:       KindStatus,
			wantStatus:     http.StatusInternalServerError,
			expectedErrMsg: "(500): Internal Server Error",
		},
		{
			name:           "status with empty body",
			statusCode:     http.StatusBadGateway,
			wantKind:       KindStatus,
			wantStatus:     http.StatusBadGateway,
			expectedErrMsg: "(502): Bad Gateway",
		},
		{
			name:           "malformed json",
			statusCode:     http.StatusOK,
			body:           `{"content": [`,
			wantKind:       KindDecode,
			expectedErrMsg: "decode error",
		},
		{
			name:           "wrong shape",
			statusCode:     http.StatusOK,
			body:           `["not", "an", "object"]`,
			wantKind:       KindDecode,
			expectedErrMsg: "failed to decode response",
		},
		{
			name:           "empty success body",
			statusCode:     http.StatusOK,
			wantKind:       KindDecode,
			expectedErrMsg: "empty response body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)

			var out struct {
				Content []string `json:"content"`
			}
			err := client.Send(context.Background(), http.MethodGet, "/contacts/user", RequestOptions{}, &out)

			require.Error(t, err)
			var herr *HTTPError
			require.ErrorAs(t, err, &herr)
			assert.Equal(t, tt.wantKind, herr.Kind)
			assert.Equal(t, tt.wantStatus, StatusCode(err))
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

// TestClient_Send_NetworkError сервер недоступен
func TestClient_Send_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, nil)
	err := client.Send(context.Background(), http.MethodGet, "/contacts", RequestOptions{}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.False(t, errors.Is(err, ErrStatus))
}

// TestClient_Send_Timeout таймаут считается сетевой ошибкой
func TestClient_Send_Timeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()
	defer close(done)

	client := NewClient(server.URL, nil, WithTimeout(50*time.Millisecond))
	err := client.Send(context.Background(), http.MethodGet, "/contacts", RequestOptions{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// TestClient_Send_NoRetry один запрос на один вызов, даже при 503
func TestClient_Send_NoRetry(t *testing.T) {
	mt := httpmock.NewMockTransport()
	mt.RegisterResponder(http.MethodGet, "http://api.test/api/contacts/user",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, `{"error":"unavailable"}`))

	client := NewClient("http://api.test/api", nil, WithHTTPClient(&http.Client{Transport: mt}))
	err := client.Send(context.Background(), http.MethodGet, "/contacts/user", RequestOptions{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, &HTTPError{Kind: KindStatus, StatusCode: http.StatusServiceUnavailable})
	assert.Equal(t, 1, mt.GetTotalCallCount())
}

// TestClient_Send_TransportError ошибка транспорта через httpmock
func TestClient_Send_TransportError(t *testing.T) {
	mt := httpmock.NewMockTransport()
	mt.RegisterResponder(http.MethodPost, "http://api.test/api/contacts",
		httpmock.NewErrorResponder(errors.New("connection reset by peer")))

	client := NewClient("http://api.test/api", nil, WithHTTPClient(&http.Client{Transport: mt}))
	err := client.Send(context.Background(), http.MethodPost, "/contacts", RequestOptions{Body: map[string]string{}}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestClient_Send_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client := NewClient(server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Send(ctx, http.MethodGet, "/contacts", RequestOptions{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestClient_Login проверяет успешную аутентификацию
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "john@example.com", req.Email)
		assert.Equal(t, "password123", req.Password)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{Token: "jwt-token", ExpiresIn: 3600})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", nil)
	resp, err := client.Login(context.Background(), api.LoginRequest{Email: "john@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestClient_Login_Errors(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "invalid credentials"})
		}))
		defer server.Close()

		resp, err := NewClient(server.URL, nil).Login(context.Background(), api.LoginRequest{})
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
		assert.Contains(t, err.Error(), "login request failed")
	})

	t.Run("missing token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"email":"john@example.com"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, nil).Login(context.Background(), api.LoginRequest{})
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestHTTPError_Is(t *testing.T) {
	err := &HTTPError{Kind: KindStatus, StatusCode: 404, Message: "not found"}

	assert.True(t, errors.Is(err, ErrStatus))
	assert.True(t, errors.Is(err, &HTTPError{Kind: KindStatus, StatusCode: 404}))
	assert.False(t, errors.Is(err, &HTTPError{Kind: KindStatus, StatusCode: 500}))
	assert.False(t, errors.Is(err, ErrDecode))
	assert.Equal(t, "http status error (404): not found", err.Error())
	assert.Equal(t, "unknown error", ErrorKind(0).String())
}
