package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/contactbook/internal/models"
)

//go:generate moq -out fetcher_mock.go . PageFetcher

// PageFetcher загружает страницу контактов (contacts.Repository)
type PageFetcher interface {
	FetchPage(ctx context.Context, userEmail string, page, pageSize int, filter string) (*models.Page, error)
}

// Status состояние цикла загрузки
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

const DefaultPageSize = 10

var (
	// ErrContactNotInPage выбранного контакта нет на загруженной странице
	ErrContactNotInPage = errors.New("contact is not on the loaded page")
	// ErrNoUser не задан пользователь, чьи контакты загружаются
	ErrNoUser = errors.New("user email is not set")
	// ErrNegativePage номер страницы меньше нуля
	ErrNegativePage = errors.New("page must not be negative")
)

// Controller хранит состояние списка контактов: поиск, фильтр, страницу,
// выбранный контакт и последнюю успешно загруженную страницу.
//
// Методы безопасны для конкурентного вызова. Если несколько загрузок идут
// одновременно, применяется результат только последней выпущенной.
type Controller struct {
	fetcher PageFetcher
	logger  *slog.Logger
	loaded  *models.Page
	err     error

	userEmail  string
	searchTerm string
	filter     string
	selectedID string

	page     int
	pageSize int
	seq      uint64
	status   Status

	mu           sync.Mutex
	hasSelection bool
	stale        bool
}

// Option настраивает Controller
type Option func(*Controller)

// WithPageSize задает размер страницы
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithUser задает начальный email пользователя
func WithUser(email string) Option {
	return func(c *Controller) { c.userEmail = email }
}

// WithFilter задает начальный фильтр по тегу
func WithFilter(filter string) Option {
	return func(c *Controller) {
		if filter != "" {
			c.filter = filter
		}
	}
}

// WithPage задает начальную страницу
func WithPage(page int) Option {
	return func(c *Controller) {
		if page >= 0 {
			c.page = page
		}
	}
}

// WithLogger задает логгер
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController создает контроллер в состоянии Idle
func NewController(fetcher PageFetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		logger:   slog.Default(),
		filter:   models.FilterAll,
		pageSize: DefaultPageSize,
		status:   StatusIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load загружает текущую страницу (монтирование экрана)
func (c *Controller) Load(ctx context.Context) error {
	return c.fetch(ctx)
}

// Retry повторяет загрузку с текущими параметрами по запросу пользователя
func (c *Controller) Retry(ctx context.Context) error {
	return c.fetch(ctx)
}

// SetUser меняет пользователя и загружает его первую страницу
func (c *Controller) SetUser(ctx context.Context, email string) error {
	c.mu.Lock()
	if email == c.userEmail && c.settledLocked() {
		c.mu.Unlock()
		return nil
	}
	c.userEmail = email
	c.page = 0
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SetFilter меняет фильтр по тегу и загружает первую страницу.
// Пустая строка равносильна models.FilterAll.
func (c *Controller) SetFilter(ctx context.Context, filter string) error {
	if filter == "" {
		filter = models.FilterAll
	}
	c.mu.Lock()
	if filter == c.filter && c.settledLocked() {
		c.mu.Unlock()
		return nil
	}
	c.filter = filter
	c.page = 0
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SetPage переходит на страницу page
func (c *Controller) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePage, page)
	}
	c.mu.Lock()
	if page == c.page && c.settledLocked() {
		c.mu.Unlock()
		return nil
	}
	c.page = page
	c.mu.Unlock()
	return c.fetch(ctx)
}

// NextPage переходит на следующую страницу; ничего не делает на последней.
// После неудачной загрузки шаг считается от показанной страницы.
func (c *Controller) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if !c.canNextLocked() {
		c.mu.Unlock()
		return nil
	}
	c.page = c.basePageLocked() + 1
	c.mu.Unlock()
	return c.fetch(ctx)
}

// PrevPage переходит на предыдущую страницу; ничего не делает на первой
func (c *Controller) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	if !c.canPrevLocked() {
		c.mu.Unlock()
		return nil
	}
	c.page = c.basePageLocked() - 1
	c.mu.Unlock()
	return c.fetch(ctx)
}

// SetSearch меняет строку поиска. Поиск выполняется локально, без загрузки.
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.searchTerm = term
	c.mu.Unlock()
}

// Select выбирает контакт загруженной страницы
func (c *Controller) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.loaded.Find(id); !ok {
		return fmt.Errorf("%w: %s", ErrContactNotInPage, id)
	}
	c.selectedID = id
	c.hasSelection = true
	return nil
}

// ClearSelection снимает выбор
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.clearSelectionLocked()
	c.mu.Unlock()
}

func (c *Controller) clearSelectionLocked() {
	c.selectedID = ""
	c.hasSelection = false
}

// settledLocked true, если текущие параметры уже загружены или загружаются.
// После ошибки повторная установка того же значения загружает его снова.
func (c *Controller) settledLocked() bool {
	return c.status == StatusLoading || c.status == StatusLoaded
}

// basePageLocked страница, от которой считаются соседние.
// Запрошенная страница, которую не удалось загрузить, остается только для Retry.
func (c *Controller) basePageLocked() int {
	if c.status == StatusErrored && c.loaded != nil {
		return c.loaded.Page
	}
	return c.page
}

func (c *Controller) canNextLocked() bool {
	return c.loaded != nil && c.basePageLocked() < c.loaded.TotalPages-1
}

func (c *Controller) canPrevLocked() bool {
	return c.basePageLocked() > 0
}

func (c *Controller) fetch(ctx context.Context) error {
	c.mu.Lock()
	if c.userEmail == "" {
		c.mu.Unlock()
		return ErrNoUser
	}
	c.seq++
	seq := c.seq
	email, page, size, filter := c.userEmail, c.page, c.pageSize, c.filter
	c.status = StatusLoading
	c.mu.Unlock()

	result, err := c.fetcher.FetchPage(ctx, email, page, size, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Применяем только результат последнего запроса
	if seq != c.seq {
		c.logger.Debug("discarding superseded page result",
			"page", page,
			"filter", filter,
			"seq", seq,
			"latest_seq", c.seq)
		return nil
	}

	if err != nil {
		// Последние успешно загруженные данные остаются, но помечаются устаревшими
		c.status = StatusErrored
		c.err = err
		c.stale = c.loaded != nil
		c.logger.Warn("failed to load contacts page", "page", page, "error", err)
		return err
	}

	c.loaded = result
	c.status = StatusLoaded
	c.err = nil
	c.stale = false

	if c.hasSelection {
		if _, ok := result.Find(c.selectedID); !ok {
			c.clearSelectionLocked()
		}
	}
	return nil
}

// State снимок состояния для отрисовки
type State struct {
	Err        error            // ошибка последней загрузки (для StatusErrored)
	Selected   *models.Contact  // выбранный контакт или nil
	Content    []models.Contact // последняя успешно загруженная страница целиком
	Visible    []models.Contact // Content после поиска и фильтра
	UserEmail  string
	SearchTerm string
	Filter     string
	Status     Status
	Page       int // запрошенная страница (ее повторяет Retry)
	LoadedPage int // номер страницы, к которой относится Content
	TotalPages int
	PageSize   int
	Loaded     bool // есть ли загруженные данные
	Stale      bool // Content остался от предыдущей успешной загрузки
	CanPrev    bool
	CanNext    bool
}

// Snapshot возвращает текущее состояние
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Err:        c.err,
		UserEmail:  c.userEmail,
		SearchTerm: c.searchTerm,
		Filter:     c.filter,
		Status:     c.status,
		Page:       c.page,
		PageSize:   c.pageSize,
		Stale:      c.stale,
		CanPrev:    c.canPrevLocked(),
		CanNext:    c.canNextLocked(),
	}

	if c.loaded == nil {
		s.Content = []models.Contact{}
		s.Visible = []models.Contact{}
		return s
	}

	s.Loaded = true
	s.LoadedPage = c.loaded.Page
	s.TotalPages = c.loaded.TotalPages
	s.Content = append([]models.Contact(nil), c.loaded.Content...)
	s.Visible = Visible(c.loaded.Content, c.searchTerm, c.filter)

	if c.hasSelection {
		if contact, ok := c.loaded.Find(c.selectedID); ok {
			s.Selected = &contact
		}
	}
	return s
}
