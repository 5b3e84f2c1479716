package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/contactbook/internal/client/form"
	"github.com/iudanet/contactbook/internal/models"
)

type profileLoadedMsg struct {
	profile *models.Profile
	err     error
}

type profileSavedMsg struct {
	profile *models.Profile
	err     error
}

type loggedOutMsg struct {
	err error
}

// ProfileModel просмотр и редактирование профиля.
// После сохранения черновик равен сохраненному значению.
type ProfileModel struct {
	ctx     context.Context
	store   ProfileStore
	session Session
	form    *form.ProfileForm
	saved   *models.Profile
	err     error
	message string
	fields  []form.Field
	inputs  []textinput.Model
	focus   int
	editing bool
	loading bool
	busy    bool
}

func NewProfileModel(ctx context.Context, deps Deps) *ProfileModel {
	fields := form.ProfileFields()
	inputs := make([]textinput.Model, len(fields))
	for i := range fields {
		inputs[i] = newInput("", 100)
	}
	return &ProfileModel{
		ctx:     ctx,
		store:   deps.Profiles,
		session: deps.Session,
		form:    form.NewProfileForm(deps.Profiles, deps.Logger),
		fields:  fields,
		inputs:  inputs,
	}
}

// Capturing true в режиме редактирования
func (m *ProfileModel) Capturing() bool { return m.editing }

// Draft текущий черновик профиля
func (m *ProfileModel) Draft() models.Profile { return m.form.Draft() }

// Load загружает профиль, если он еще не загружен
func (m *ProfileModel) Load() tea.Cmd {
	if m.saved != nil || m.loading {
		return nil
	}
	m.loading = true
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		p, err := store.Get(ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.saved = msg.profile
		m.form.Load(*msg.profile)
		return nil

	case profileSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.saved = msg.profile
		m.setEditing(false)
		m.message = "✓ Profile saved"
		return nil

	case loggedOutMsg:
		m.busy = false
		m.err = msg.err
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *ProfileModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if !m.editing {
		switch key {
		case "e":
			if m.saved != nil {
				m.setEditing(true)
			}
		case "r":
			m.saved = nil
			return m.Load()
		case "ctrl+o":
			return m.logout()
		}
		return nil
	}

	switch key {
	case "esc":
		// Отмена: черновик возвращается к сохраненному значению
		m.form.Load(*m.saved)
		m.err = nil
		m.setEditing(false)
		return nil
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.moveFocus(1)
		return nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	_ = m.form.SetField(m.fields[m.focus], m.inputs[m.focus].Value())
	return cmd
}

func (m *ProfileModel) setEditing(on bool) {
	m.editing = on
	m.message = ""
	draft := m.form.Draft()
	for i, f := range m.fields {
		m.inputs[i].Blur()
		m.inputs[i].SetValue(form.ProfileValue(draft, f))
	}
	if on {
		m.focus = 0
		m.inputs[0].Focus()
	}
}

func (m *ProfileModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ProfileModel) submit() tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	ctx, profileForm := m.ctx, m.form
	return func() tea.Msg {
		p, err := profileForm.Submit(ctx)
		return profileSavedMsg{profile: p, err: err}
	}
}

func (m *ProfileModel) logout() tea.Cmd {
	if m.busy || m.session == nil {
		return nil
	}
	m.busy = true
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(labelStyle.Render("Loading..."))
		return b.String()
	}

	if m.saved != nil {
		labels := []string{"Name", "Email", "Phone"}
		for i := range m.fields {
			label := labelStyle.Render(fmt.Sprintf("%-7s", labels[i]+":"))
			if m.editing {
				if i == m.focus {
					label = selectedStyle.Render(fmt.Sprintf("%-7s", labels[i]+":"))
				}
				fmt.Fprintf(&b, "%s %s\n", label, m.inputs[i].View())
				continue
			}
			fmt.Fprintf(&b, "%s %s\n", label, textStyle.Render(form.ProfileValue(*m.saved, m.fields[i])))
		}
		if m.saved.JoinedDate != "" {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Joined:"), textStyle.Render(m.saved.JoinedDate))
		}
		if m.saved.Avatar != "" {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Avatar:"), textStyle.Render("attached"))
		}
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(labelStyle.Render("Working..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.message != "":
		b.WriteString(successStyle.Render(m.message))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *ProfileModel) Help() string {
	if m.editing {
		return "tab/↑/↓: field • ctrl+s: save • esc: cancel"
	}
	return "e: edit • r: reload • ctrl+o: sign out"
}
