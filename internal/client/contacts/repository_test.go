package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contactbook/internal/client/api"
	"github.com/iudanet/contactbook/internal/models"
	"github.com/iudanet/contactbook/internal/validation"
	pkgapi "github.com/iudanet/contactbook/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContactsServer отдает dataset постранично, как сервер /contacts/user
func newContactsServer(t *testing.T, dataset []pkgapi.Contact) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/contacts/user", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		size, err := strconv.Atoi(r.URL.Query().Get("size"))
		require.NoError(t, err)

		totalPages := (len(dataset) + size - 1) / size
		start := min(page*size, len(dataset))
		end := min(start+size, len(dataset))

		_ = json.NewEncoder(w).Encode(pkgapi.ContactPageResponse{
			Content:    dataset[start:end],
			TotalPages: totalPages,
		})
	}))
}

func makeDataset(n int) []pkgapi.Contact {
	out := make([]pkgapi.Contact, n)
	for i := range out {
		out[i] = pkgapi.Contact{
			ID:    strconv.Itoa(i + 1),
			Name:  fmt.Sprintf("Contact %02d", i+1),
			Email: fmt.Sprintf("contact%02d@example.com", i+1),
			Tags:  []string{"developer"},
		}
	}
	return out
}

func TestRepository_FetchPage_Pagination(t *testing.T) {
	server := newContactsServer(t, makeDataset(25))
	defer server.Close()

	repo := NewRepository(api.NewClient(server.URL+"/api", api.StaticToken("token")), testLogger())
	ctx := context.Background()

	first, err := repo.FetchPage(ctx, "owner@example.com", 0, 10, models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 0, first.Page)
	require.Len(t, first.Content, 10)
	assert.Equal(t, "1", first.Content[0].ID)

	last, err := repo.FetchPage(ctx, "owner@example.com", 2, 10, models.FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 2, last.Page)
	require.Len(t, last.Content, 5)
	assert.Equal(t, "21", last.Content[0].ID)
	assert.Equal(t, "25", last.Content[4].ID)
	assert.True(t, last.IsLast())
}

func TestRepository_FetchPage_QueryParams(t *testing.T) {
	mt := httpmock.NewMockTransport()
	mt.RegisterResponder(http.MethodGet, "http://api.test/api/contacts/user",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "owner@example.com", q.Get("email"))
			assert.Equal(t, "1", q.Get("page"))
			assert.Equal(t, "5", q.Get("size"))
			assert.Equal(t, "frontend", q.Get("tag"))
			return httpmock.NewJsonResponse(http.StatusOK, pkgapi.ContactPageResponse{TotalPages: 0})
		})

	client := api.NewClient("http://api.test/api", nil, api.WithHTTPClient(&http.Client{Transport: mt}))
	repo := NewRepository(client, testLogger())

	page, err := repo.FetchPage(context.Background(), "owner@example.com", 1, 5, "frontend")
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
	assert.Equal(t, 1, mt.GetTotalCallCount())
}

func TestRepository_FetchPage_AllFilterNotSent(t *testing.T) {
	mock := &api.ClientAPIMock{
		SendFunc: func(ctx context.Context, method, path string, opts api.RequestOptions, result any) error {
			assert.False(t, opts.Params.Has("tag"))
			return nil
		},
	}
	repo := NewRepository(mock, testLogger())

	_, err := repo.FetchPage(context.Background(), "owner@example.com", 0, 10, models.FilterAll)
	require.NoError(t, err)
	_, err = repo.FetchPage(context.Background(), "owner@example.com", 0, 10, "")
	require.NoError(t, err)
	assert.Len(t, mock.SendCalls(), 2)
}

func TestRepository_FetchPage_InvalidArgs(t *testing.T) {
	mock := &api.ClientAPIMock{}
	repo := NewRepository(mock, testLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		page  int
		size  int
	}{
		{name: "negative page", email: "a@b.c", page: -1, size: 10},
		{name: "zero size", email: "a@b.c", page: 0, size: 0},
		{name: "empty email", email: "", page: 0, size: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FetchPage(ctx, tt.email, tt.page, tt.size, "")
			assert.ErrorIs(t, err, ErrInvalidPageRequest)
		})
	}
	assert.Empty(t, mock.SendCalls())
}

func TestRepository_FetchPage_PropagatesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer server.Close()

	repo := NewRepository(api.NewClient(server.URL, nil), testLogger())
	page, err := repo.FetchPage(context.Background(), "owner@example.com", 0, 10, "")

	require.Error(t, err)
	assert.Nil(t, page, "a failed fetch must not look like an empty page")
	assert.Equal(t, http.StatusForbidden, api.StatusCode(err))
}

func TestRepository_FetchPage_InconsistentPage(t *testing.T) {
	mock := &api.ClientAPIMock{
		SendFunc: func(ctx context.Context, method, path string, opts api.RequestOptions, result any) error {
			resp := result.(*pkgapi.ContactPageResponse)
			resp.Content = []pkgapi.Contact{{ID: "1"}}
			resp.TotalPages = 0
			return nil
		},
	}
	repo := NewRepository(mock, testLogger())

	_, err := repo.FetchPage(context.Background(), "owner@example.com", 0, 10, "")
	assert.ErrorIs(t, err, api.ErrDecode)
}

func TestRepository_FetchPage_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null", body: `null`},
		{name: "empty object", body: `{}`},
		{name: "other keys", body: `{"items":[{"id":"1"}],"total":3}`},
		{name: "no total pages", body: `{"content":[]}`},
		{name: "null total pages", body: `{"content":[],"totalPages":null}`},
		{name: "array", body: `[]`},
		{name: "content not a list", body: `{"content":{"id":"1"},"totalPages":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			repo := NewRepository(api.NewClient(server.URL, nil), testLogger())
			page, err := repo.FetchPage(context.Background(), "owner@example.com", 0, 10, "")

			require.Error(t, err)
			assert.Nil(t, page)
			assert.ErrorIs(t, err, api.ErrDecode)
		})
	}
}

func TestRepository_FetchPage_NullContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":null,"totalPages":0}`))
	}))
	defer server.Close()

	repo := NewRepository(api.NewClient(server.URL, nil), testLogger())
	page, err := repo.FetchPage(context.Background(), "owner@example.com", 0, 10, "")

	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
}

func TestRepository_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts", r.URL.Path)

		var req pkgapi.CreateContactRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "John Doe", req.Name)
		assert.Equal(t, []string{"developer", "frontend"}, req.Tags)
		assert.Equal(t, "johndoe", req.Social.GitHub)
		assert.Nil(t, req.Image)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(pkgapi.Contact{
			ID:     "new-1",
			Name:   req.Name,
			Email:  req.Email,
			Tags:   req.Tags,
			Social: req.Social,
		})
	}))
	defer server.Close()

	repo := NewRepository(api.NewClient(server.URL, nil), testLogger())
	created, err := repo.Create(context.Background(), models.ContactDraft{
		Name:   "John Doe",
		Email:  "john.doe@example.com",
		Tags:   "developer, frontend, ",
		Social: models.Social{GitHub: "johndoe"},
	})

	require.NoError(t, err)
	assert.Equal(t, "new-1", created.ID)
	assert.Equal(t, []string{"developer", "frontend"}, created.Tags)
}

func TestRepository_Create_Validation(t *testing.T) {
	mock := &api.ClientAPIMock{}
	repo := NewRepository(mock, testLogger())

	_, err := repo.Create(context.Background(), models.ContactDraft{Email: "john@example.com"})

	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("name"))
	assert.Empty(t, mock.SendCalls(), "invalid draft must not reach the server")
}

func TestRepository_Create_ServerError(t *testing.T) {
	mock := &api.ClientAPIMock{
		SendFunc: func(ctx context.Context, method, path string, opts api.RequestOptions, result any) error {
			return &api.HTTPError{Kind: api.KindStatus, StatusCode: http.StatusBadRequest, Message: "email taken"}
		},
	}
	repo := NewRepository(mock, testLogger())

	created, err := repo.Create(context.Background(), models.ContactDraft{Name: "A", Email: "a@example.com"})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, api.ErrStatus)
	assert.Contains(t, err.Error(), "email taken")
}
