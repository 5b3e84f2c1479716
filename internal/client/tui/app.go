package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/contactbook/internal/client/form"
	"github.com/iudanet/contactbook/internal/client/view"
	"github.com/iudanet/contactbook/internal/models"
)

// ContactStore загрузка и создание контактов (contacts.Repository)
type ContactStore interface {
	view.PageFetcher
	form.ContactCreator
}

// ProfileStore чтение и сохранение профиля (profile.Service)
type ProfileStore interface {
	form.ProfileSaver
	Get(ctx context.Context) (*models.Profile, error)
}

// Session завершение сессии (auth.Session)
type Session interface {
	Logout(ctx context.Context) error
}

// Deps зависимости интерфейса
type Deps struct {
	Contacts ContactStore
	Profiles ProfileStore
	Session  Session
	Logger   *slog.Logger
	User     string
	PageSize int
}

// Route экран приложения
type Route int

const (
	RouteDashboard Route = iota
	RouteContacts
	RouteAddContact
	RouteProfile
)

var routes = []Route{RouteDashboard, RouteContacts, RouteAddContact, RouteProfile}

// Path путь экрана, как в веб-версии
func (r Route) Path() string {
	switch r {
	case RouteDashboard:
		return "/"
	case RouteContacts:
		return "/contacts"
	case RouteAddContact:
		return "/add-contact"
	case RouteProfile:
		return "/profile"
	}
	return ""
}

func (r Route) Title() string {
	switch r {
	case RouteDashboard:
		return "Dashboard"
	case RouteContacts:
		return "Contacts"
	case RouteAddContact:
		return "Add Contact"
	case RouteProfile:
		return "Profile"
	}
	return "Unknown"
}

// NavigateMsg переход на экран
type NavigateMsg struct {
	Route Route
}

// NavigateTo команда перехода на экран
func NavigateTo(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

// App корневая модель: маршруты, шапка и подсказки
type App struct {
	ctx    context.Context
	logger *slog.Logger

	dashboard *DashboardModel
	contacts  *ContactsModel
	add       *AddContactModel
	profile   *ProfileModel

	route     Route
	width     int
	height    int
	signedOut bool
}

var _ tea.Model = (*App)(nil)

// NewApp создает приложение. Контекст используется всеми запросами к серверу.
func NewApp(ctx context.Context, deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.PageSize <= 0 {
		deps.PageSize = view.DefaultPageSize
	}
	return &App{
		ctx:       ctx,
		logger:    deps.Logger,
		route:     RouteDashboard,
		dashboard: NewDashboardModel(ctx, deps),
		contacts:  NewContactsModel(ctx, deps),
		add:       NewAddContactModel(ctx, deps),
		profile:   NewProfileModel(ctx, deps),
	}
}

// Run запускает интерфейс и ждет выхода
func Run(ctx context.Context, deps Deps) error {
	app := NewApp(ctx, deps)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// Route текущий экран
func (m *App) Route() Route { return m.route }

// SignedOut сообщает, завершил ли пользователь сессию из интерфейса
func (m *App) SignedOut() bool { return m.signedOut }

func (m *App) Init() tea.Cmd {
	return m.dashboard.Load()
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		// Пока активно поле ввода, клавиши принадлежат ему
		if !m.capturing() {
			switch key {
			case "q":
				return m, tea.Quit
			case "1", "2", "3", "4":
				return m, m.navigate(routes[key[0]-'1'])
			case "tab":
				return m, m.navigate(routes[(int(m.route)+1)%len(routes)])
			case "shift+tab":
				return m, m.navigate(routes[(int(m.route)+len(routes)-1)%len(routes)])
			}
		}
		return m, m.updateActive(msg)

	case NavigateMsg:
		return m, m.navigate(msg.Route)

	case loggedOutMsg:
		if msg.err == nil {
			m.signedOut = true
			return m, tea.Quit
		}
		return m, m.profile.Update(msg)

	case dashboardLoadedMsg:
		return m, m.dashboard.Update(msg)
	case pageLoadedMsg:
		return m, m.contacts.Update(msg)
	case contactCreatedMsg:
		return m, m.add.Update(msg)
	case profileLoadedMsg, profileSavedMsg:
		return m, m.profile.Update(msg)
	}

	return m, m.updateActive(msg)
}

func (m *App) capturing() bool {
	switch m.route {
	case RouteContacts:
		return m.contacts.Capturing()
	case RouteAddContact:
		return m.add.Capturing()
	case RouteProfile:
		return m.profile.Capturing()
	}
	return false
}

func (m *App) updateActive(msg tea.Msg) tea.Cmd {
	switch m.route {
	case RouteDashboard:
		return m.dashboard.Update(msg)
	case RouteContacts:
		return m.contacts.Update(msg)
	case RouteAddContact:
		return m.add.Update(msg)
	case RouteProfile:
		return m.profile.Update(msg)
	}
	return nil
}

// navigate переключает экран. Списки загружаются заново при каждом входе,
// так новый контакт появляется без локальной вставки.
func (m *App) navigate(r Route) tea.Cmd {
	m.logger.Debug("navigate", "path", r.Path())
	m.route = r

	switch r {
	case RouteDashboard:
		return m.dashboard.Load()
	case RouteContacts:
		return m.contacts.Load()
	case RouteProfile:
		return m.profile.Load()
	}
	return nil
}

func (m *App) View() string {
	var b strings.Builder

	tabs := make([]string, 0, len(routes))
	for i, r := range routes {
		label := fmt.Sprintf("%d %s", i+1, r.Title())
		if r == m.route {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	var help string
	switch m.route {
	case RouteDashboard:
		b.WriteString(m.dashboard.View())
		help = m.dashboard.Help()
	case RouteContacts:
		b.WriteString(m.contacts.View())
		help = m.contacts.Help()
	case RouteAddContact:
		b.WriteString(m.add.View())
		help = m.add.Help()
	case RouteProfile:
		b.WriteString(m.profile.View())
		help = m.profile.Help()
	}

	if !m.capturing() {
		help += " • 1-4/tab: switch • q: quit"
	}
	b.WriteString(helpStyle.Render(help))

	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(b.String())
	}
	return b.String()
}
