package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/contactbook/internal/client/view"
	"github.com/iudanet/contactbook/internal/models"
)

// filterCycle фильтры, переключаемые клавишей f
var filterCycle = []string{models.FilterAll, "developer", "frontend", "backend"}

type pageLoadedMsg struct {
	err error
}

// ContactsModel список контактов с поиском, фильтром и постраничным просмотром.
// Загрузки выполняются командами tea параллельно; какая из них применится,
// решает view.Controller.
type ContactsModel struct {
	ctx    context.Context
	ctrl   *view.Controller
	search textinput.Model
	cursor int
}

func NewContactsModel(ctx context.Context, deps Deps) *ContactsModel {
	return &ContactsModel{
		ctx: ctx,
		ctrl: view.NewController(deps.Contacts,
			view.WithUser(deps.User),
			view.WithPageSize(deps.PageSize),
			view.WithLogger(deps.Logger),
		),
		search: newInput("Search by name or email...", 50),
	}
}

// Controller состояние списка
func (m *ContactsModel) Controller() *view.Controller { return m.ctrl }

// Load загружает текущую страницу заново
func (m *ContactsModel) Load() tea.Cmd {
	return m.run(m.ctrl.Retry)
}

func (m *ContactsModel) run(f func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return pageLoadedMsg{err: f(ctx)}
	}
}

// Capturing true, пока вводится строка поиска
func (m *ContactsModel) Capturing() bool {
	return m.search.Focused()
}

func (m *ContactsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.clampCursor()
		return nil
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *ContactsModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Поиск локальный, загрузки нет
	m.ctrl.SetSearch(m.search.Value())
	m.clampCursor()
	return cmd
}

func (m *ContactsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.search.Focus()
	case "f":
		next := nextFilter(m.ctrl.Snapshot().Filter)
		m.cursor = 0
		return m.run(func(ctx context.Context) error {
			return m.ctrl.SetFilter(ctx, next)
		})
	case "n", "right":
		m.cursor = 0
		return m.run(m.ctrl.NextPage)
	case "p", "left":
		m.cursor = 0
		return m.run(m.ctrl.PrevPage)
	case "r":
		return m.run(m.ctrl.Retry)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "enter":
		visible := m.ctrl.Snapshot().Visible
		if m.cursor < len(visible) {
			// Контакт взят из текущей страницы, ошибки быть не может
			_ = m.ctrl.Select(visible[m.cursor].ID)
		}
	case "esc":
		m.ctrl.ClearSelection()
	}
	return nil
}

func (m *ContactsModel) clampCursor() {
	n := len(m.ctrl.Snapshot().Visible)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextFilter(current string) string {
	i := slices.Index(filterCycle, current)
	return filterCycle[(i+1)%len(filterCycle)]
}

func (m *ContactsModel) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contacts"))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s   %s %s\n",
		labelStyle.Render("Search:"), m.search.View(),
		labelStyle.Render("Filter:"), selectedStyle.Render(s.Filter))

	switch s.Status {
	case view.StatusLoading:
		b.WriteString(labelStyle.Render("Loading..."))
		b.WriteString("\n")
	case view.StatusErrored:
		b.WriteString(errorStyle.Render("Error: " + s.Err.Error()))
		b.WriteString("\n")
		if s.Stale {
			b.WriteString(warnStyle.Render("Showing previously loaded page. Press r to retry."))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if !s.Loaded {
		return b.String()
	}

	if len(s.Visible) == 0 {
		b.WriteString(labelStyle.Render("No contacts match."))
		b.WriteString("\n")
	}
	for i, c := range s.Visible {
		line := fmt.Sprintf("%s <%s>", c.Name, c.Email)
		if len(c.Tags) > 0 {
			line += "  [" + strings.Join(c.Tags, ", ") + "]"
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(textStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	// Номер страницы, к которой относится показанный список
	pages := max(s.TotalPages, 1)
	fmt.Fprintf(&b, "\n%s\n", labelStyle.Render(fmt.Sprintf("Page %d of %d", s.LoadedPage+1, pages)))

	if s.Selected != nil {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(renderContact(*s.Selected)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderContact(c models.Contact) string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render(c.Name))
	b.WriteString("\n")

	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", label+":")), textStyle.Render(value))
		}
	}
	row("Email", c.Email)
	row("Phone", c.Phone)
	row("Role", c.Role)
	row("Company", c.Company)
	row("Tags", strings.Join(c.Tags, ", "))
	row("LinkedIn", c.Social.LinkedIn)
	row("GitHub", c.Social.GitHub)
	row("Twitter", c.Social.Twitter)
	row("Notes", c.Notes)
	if c.Image != "" {
		row("Image", "attached")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *ContactsModel) Help() string {
	if m.search.Focused() {
		return "type to search • enter/esc: done"
	}
	return "/: search • f: filter • n/p: page • ↑/↓: move • enter: details • esc: close • r: retry"
}
