package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/contactbook/internal/client/view"
)

const recentCount = 5

type dashboardLoadedMsg struct {
	err error
}

// DashboardModel сводка по первой странице контактов
type DashboardModel struct {
	ctx  context.Context
	ctrl *view.Controller
	user string
}

func NewDashboardModel(ctx context.Context, deps Deps) *DashboardModel {
	return &DashboardModel{
		ctx:  ctx,
		user: deps.User,
		ctrl: view.NewController(deps.Contacts,
			view.WithUser(deps.User),
			view.WithPageSize(deps.PageSize),
			view.WithLogger(deps.Logger),
		),
	}
}

// Load загружает первую страницу
func (m *DashboardModel) Load() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return dashboardLoadedMsg{err: ctrl.Retry(ctx)}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "r" {
		return m.Load()
	}
	return nil
}

func (m *DashboardModel) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Welcome back, %s", m.user)))
	b.WriteString("\n")

	switch {
	case s.Status == view.StatusErrored:
		b.WriteString(errorStyle.Render("Error: " + s.Err.Error()))
		b.WriteString("\n")
		if !s.Loaded {
			return b.String()
		}
	case !s.Loaded:
		b.WriteString(labelStyle.Render("Loading..."))
		return b.String()
	}

	stats := fmt.Sprintf("%s %d\n%s %d\n%s %d",
		labelStyle.Render("Pages of contacts:"), s.TotalPages,
		labelStyle.Render("On first page:    "), len(s.Content),
		labelStyle.Render("Page size:        "), s.PageSize,
	)
	b.WriteString(panelStyle.Render(stats))
	b.WriteString("\n\n")

	b.WriteString(textStyle.Bold(true).Render("Recent contacts"))
	b.WriteString("\n")
	if len(s.Content) == 0 {
		b.WriteString(labelStyle.Render("No contacts yet. Press 3 to add one."))
		return b.String()
	}
	for _, c := range s.Content[:min(recentCount, len(s.Content))] {
		fmt.Fprintf(&b, "  %s %s\n", textStyle.Render(c.Name), labelStyle.Render("<"+c.Email+">"))
	}
	return b.String()
}

func (m *DashboardModel) Help() string {
	return "r: refresh"
}
