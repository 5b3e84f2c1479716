package form

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contactbook/internal/client/api"
	"github.com/iudanet/contactbook/internal/models"
	"github.com/iudanet/contactbook/internal/validation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fillContactForm(t *testing.T, f *ContactForm) {
	t.Helper()
	require.NoError(t, f.Set("name", "Alice"))
	require.NoError(t, f.Set("email", "alice@example.com"))
	require.NoError(t, f.Set("tags", "developer, frontend, "))
	require.NoError(t, f.Set("social.github", "alice-gh"))
}

func TestContactForm_SubmitSuccessResetsDraft(t *testing.T) {
	creator := &ContactCreatorMock{
		CreateFunc: func(ctx context.Context, draft models.ContactDraft) (*models.Contact, error) {
			return &models.Contact{ID: "42", Name: draft.Name, Email: draft.Email, Tags: models.ParseTags(draft.Tags)}, nil
		},
	}
	f := NewContactForm(creator, discardLogger())
	fillContactForm(t, f)

	contact, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", contact.ID)
	assert.Equal(t, []string{"developer", "frontend"}, contact.Tags)

	calls := creator.CreateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice-gh", calls[0].Draft.Social.GitHub)
	assert.Equal(t, []string{"developer", "frontend"}, calls[0].Draft.ToRequest().Tags)

	assert.Equal(t, models.EmptyContactDraft(), f.Draft())
}

func TestContactForm_SubmitFailureKeepsDraft(t *testing.T) {
	serverErr := &api.HTTPError{Kind: api.KindStatus, StatusCode: http.StatusConflict, Message: "exists"}
	creator := &ContactCreatorMock{
		CreateFunc: func(ctx context.Context, draft models.ContactDraft) (*models.Contact, error) {
			return nil, serverErr
		},
	}
	f := NewContactForm(creator, discardLogger())
	fillContactForm(t, f)
	before := f.Draft()

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrStatus)
	assert.Equal(t, before, f.Draft())
}

func TestContactForm_ValidationBeforeNetwork(t *testing.T) {
	creator := &ContactCreatorMock{}
	f := NewContactForm(creator, discardLogger())
	require.NoError(t, f.Set("email", "not-an-email"))

	_, err := f.Submit(context.Background())

	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("name"))
	assert.True(t, verr.HasField("email"))
	assert.Empty(t, creator.CreateCalls())
}

func TestContactForm_SetInvalidField(t *testing.T) {
	f := NewContactForm(&ContactCreatorMock{}, nil)
	err := f.Set("social.myspace", "x")

	var fieldErr *InvalidFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.EmptyContactDraft(), f.Draft())
}

func TestContactForm_CaptureImage(t *testing.T) {
	f := NewContactForm(&ContactCreatorMock{}, nil)

	require.NoError(t, f.CaptureImage(context.Background(), bytes.NewReader(pngHeader)))
	img := f.Draft().Image
	assert.True(t, strings.HasPrefix(img, "data:image/png;base64,"))

	// Неудачный захват не портит уже выбранное изображение
	require.Error(t, f.CaptureImage(context.Background(), strings.NewReader("plain text")))
	assert.Equal(t, img, f.Draft().Image)

	f.ClearImage()
	assert.Empty(t, f.Draft().Image)
}

func TestContactForm_Reset(t *testing.T) {
	f := NewContactForm(&ContactCreatorMock{}, nil)
	fillContactForm(t, f)
	f.Reset()
	assert.Equal(t, models.EmptyContactDraft(), f.Draft())
}

func TestProfileForm_SubmitSuccessKeepsSavedValue(t *testing.T) {
	saver := &ProfileSaverMock{
		SaveFunc: func(ctx context.Context, p models.Profile) (*models.Profile, error) {
			saved := p
			saved.JoinedDate = "2024-03-01"
			return &saved, nil
		},
	}
	f := NewProfileForm(saver, discardLogger())
	f.Load(models.Profile{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, f.Set("phone", "+7 900"))

	saved, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+7 900", saved.Phone)
	assert.Equal(t, *saved, f.Draft())
	assert.Equal(t, "2024-03-01", f.Draft().JoinedDate)

	require.Len(t, saver.SaveCalls(), 1)
	assert.Equal(t, "+7 900", saver.SaveCalls()[0].P.Phone)
}

func TestProfileForm_SubmitFailure(t *testing.T) {
	saveErr := errors.New("server unavailable")
	saver := &ProfileSaverMock{
		SaveFunc: func(ctx context.Context, p models.Profile) (*models.Profile, error) {
			return nil, saveErr
		},
	}
	f := NewProfileForm(saver, discardLogger())
	f.Load(models.Profile{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, f.Set("name", "Alicia"))

	_, err := f.Submit(context.Background())

	var profileErr *ProfileError
	require.ErrorAs(t, err, &profileErr)
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, "Alicia", f.Draft().Name)
}

func TestProfileForm_ValidationIsProfileError(t *testing.T) {
	saver := &ProfileSaverMock{}
	f := NewProfileForm(saver, nil)
	f.Load(models.Profile{Name: "", Email: "alice@example.com"})

	_, err := f.Submit(context.Background())

	var profileErr *ProfileError
	require.ErrorAs(t, err, &profileErr)
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("name"))
	assert.Empty(t, saver.SaveCalls())
}

func TestProfileForm_RejectsContactOnlyFields(t *testing.T) {
	f := NewProfileForm(&ProfileSaverMock{}, nil)
	var fieldErr *InvalidFieldError
	assert.ErrorAs(t, f.Set("tags", "x"), &fieldErr)
	assert.ErrorAs(t, f.Set("social.github", "x"), &fieldErr)
}

func TestProfileForm_CaptureAvatar(t *testing.T) {
	f := NewProfileForm(&ProfileSaverMock{}, nil)
	require.NoError(t, f.CaptureAvatar(context.Background(), bytes.NewReader(pngHeader)))
	assert.True(t, strings.HasPrefix(f.Draft().Avatar, "data:image/png;base64,"))
}

func TestForms_CaptureFromFile(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(imagePath, pngHeader, 0o600))
	ctx := context.Background()

	contactForm := NewContactForm(&ContactCreatorMock{}, nil)
	require.NoError(t, contactForm.CaptureImageFile(ctx, imagePath))
	assert.True(t, strings.HasPrefix(contactForm.Draft().Image, "data:image/png;base64,"))

	profileForm := NewProfileForm(&ProfileSaverMock{}, nil)
	require.NoError(t, profileForm.CaptureAvatarFile(ctx, imagePath))
	assert.True(t, strings.HasPrefix(profileForm.Draft().Avatar, "data:image/png;base64,"))

	// Отсутствующий файл не меняет черновик
	before := contactForm.Draft().Image
	err := contactForm.CaptureImageFile(ctx, filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, before, contactForm.Draft().Image)
}
