package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contactbook/internal/client/auth"
)

// stubSession auth.Service с фиксированным ответом CurrentUser
type stubSession struct {
	auth.Service
	id  *auth.Identity
	err error
}

func (s *stubSession) CurrentUser(context.Context) (*auth.Identity, error) {
	return s.id, s.err
}

func TestApp_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("signed in", func(t *testing.T) {
		want := &auth.Identity{Email: "alice@example.com", ExpiresAt: time.Now().Add(time.Hour)}
		app := &App{Session: &stubSession{id: want}}

		id, err := app.currentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	})

	t.Run("not authenticated", func(t *testing.T) {
		app := &App{Session: &stubSession{err: auth.ErrNotAuthenticated}}

		_, err := app.currentUser(ctx)
		assert.ErrorIs(t, err, errNotLoggedIn)
	})

	t.Run("storage failure", func(t *testing.T) {
		storageErr := errors.New("database is locked")
		app := &App{Session: &stubSession{err: storageErr}}

		_, err := app.currentUser(ctx)
		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, errNotLoggedIn)
	})
}
