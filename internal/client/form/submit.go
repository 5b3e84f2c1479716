package form

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/iudanet/contactbook/internal/models"
	"github.com/iudanet/contactbook/internal/validation"
)

//go:generate moq -out submit_mock.go . ContactCreator ProfileSaver

// ContactCreator создает контакт (contacts.Repository)
type ContactCreator interface {
	Create(ctx context.Context, draft models.ContactDraft) (*models.Contact, error)
}

// ProfileSaver сохраняет профиль целиком (profile.Service)
type ProfileSaver interface {
	Save(ctx context.Context, p models.Profile) (*models.Profile, error)
}

// ContactForm состояние формы создания контакта.
// После успешной отправки черновик сбрасывается в пустой шаблон,
// после ошибки остается как был.
type ContactForm struct {
	creator ContactCreator
	logger  *slog.Logger
	draft   models.ContactDraft
	mu      sync.Mutex
}

// NewContactForm создает форму с пустым черновиком
func NewContactForm(creator ContactCreator, logger *slog.Logger) *ContactForm {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactForm{
		creator: creator,
		logger:  logger,
		draft:   models.EmptyContactDraft(),
	}
}

// Draft возвращает копию черновика
func (f *ContactForm) Draft() models.ContactDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Set меняет одно поле по пути вида "name" или "social.github"
func (f *ContactForm) Set(path, value string) error {
	field, err := ParseField(path)
	if err != nil {
		return err
	}
	return f.SetField(field, value)
}

// SetField меняет одно поле
func (f *ContactForm) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, err := UpdateContact(f.draft, field, value)
	if err != nil {
		return err
	}
	f.draft = d
	return nil
}

// CaptureImage читает изображение и кладет его в черновик.
// При ошибке изображение в черновике не меняется.
func (f *ContactForm) CaptureImage(ctx context.Context, r io.Reader) error {
	dataURL, err := CaptureImage(ctx, r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.draft.Image = dataURL
	f.mu.Unlock()
	return nil
}

// CaptureImageFile то же, что CaptureImage, для файла по пути path
func (f *ContactForm) CaptureImageFile(ctx context.Context, path string) error {
	dataURL, err := CaptureImageFile(ctx, path)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.draft.Image = dataURL
	f.mu.Unlock()
	return nil
}

// ClearImage убирает изображение из черновика
func (f *ContactForm) ClearImage() {
	f.mu.Lock()
	f.draft.Image = ""
	f.mu.Unlock()
}

// Reset возвращает черновик к пустому шаблону
func (f *ContactForm) Reset() {
	f.mu.Lock()
	f.draft = models.EmptyContactDraft()
	f.mu.Unlock()
}

// Submit проверяет черновик и создает контакт
func (f *ContactForm) Submit(ctx context.Context) (*models.Contact, error) {
	draft := f.Draft()

	if err := validation.ValidateContactDraft(draft); err != nil {
		return nil, err
	}

	contact, err := f.creator.Create(ctx, draft)
	if err != nil {
		f.logger.Warn("contact creation failed", "email", draft.Email, "error", err)
		return nil, err
	}

	f.mu.Lock()
	// Черновик мог поменяться во время запроса, сбрасываем только отправленный
	if f.draft == draft {
		f.draft = models.EmptyContactDraft()
	}
	f.mu.Unlock()

	return contact, nil
}

// ProfileError ошибка сохранения профиля
type ProfileError struct {
	Err error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("failed to save profile: %v", e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// ProfileForm состояние формы редактирования профиля.
// После успешного сохранения черновик равен сохраненному значению.
type ProfileForm struct {
	saver  ProfileSaver
	logger *slog.Logger
	draft  models.Profile
	mu     sync.Mutex
}

// NewProfileForm создает форму профиля
func NewProfileForm(saver ProfileSaver, logger *slog.Logger) *ProfileForm {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileForm{saver: saver, logger: logger}
}

// Load заполняет черновик значением с сервера
func (f *ProfileForm) Load(p models.Profile) {
	f.mu.Lock()
	f.draft = p
	f.mu.Unlock()
}

// Draft возвращает копию черновика
func (f *ProfileForm) Draft() models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Set меняет одно поле профиля по пути
func (f *ProfileForm) Set(path, value string) error {
	field, err := ParseField(path)
	if err != nil {
		return err
	}
	return f.SetField(field, value)
}

// SetField меняет одно поле профиля
func (f *ProfileForm) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, err := UpdateProfile(f.draft, field, value)
	if err != nil {
		return err
	}
	f.draft = p
	return nil
}

// CaptureAvatar читает изображение и кладет его в черновик как аватар
func (f *ProfileForm) CaptureAvatar(ctx context.Context, r io.Reader) error {
	dataURL, err := CaptureImage(ctx, r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.draft.Avatar = dataURL
	f.mu.Unlock()
	return nil
}

// CaptureAvatarFile читает аватар из файла
func (f *ProfileForm) CaptureAvatarFile(ctx context.Context, path string) error {
	dataURL, err := CaptureImageFile(ctx, path)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.draft.Avatar = dataURL
	f.mu.Unlock()
	return nil
}

// Submit сохраняет профиль. Любая ошибка возвращается как *ProfileError.
func (f *ProfileForm) Submit(ctx context.Context) (*models.Profile, error) {
	draft := f.Draft()

	if err := validation.ValidateProfile(draft); err != nil {
		return nil, &ProfileError{Err: err}
	}

	saved, err := f.saver.Save(ctx, draft)
	if err != nil {
		f.logger.Warn("profile save failed", "error", err)
		return nil, &ProfileError{Err: err}
	}

	f.mu.Lock()
	f.draft = *saved
	f.mu.Unlock()
	return saved, nil
}
