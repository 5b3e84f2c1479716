package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/contactbook/internal/client/form"
	"github.com/iudanet/contactbook/internal/models"
	"github.com/iudanet/contactbook/internal/validation"
)

type contactCreatedMsg struct {
	contact *models.Contact
	err     error
}

var contactLabels = map[form.Field]string{
	form.FieldName:           "Name",
	form.FieldEmail:          "Email",
	form.FieldPhone:          "Phone",
	form.FieldRole:           "Role",
	form.FieldCompany:        "Company",
	form.FieldTags:           "Tags",
	form.FieldNotes:          "Notes",
	form.FieldSocialLinkedIn: "LinkedIn",
	form.FieldSocialGitHub:   "GitHub",
	form.FieldSocialTwitter:  "Twitter",
}

var contactPlaceholders = map[form.Field]string{
	form.FieldTags:  "developer, frontend",
	form.FieldNotes: "Optional notes",
}

// AddContactModel форма создания контакта.
// Последнее поле это путь к файлу изображения.
type AddContactModel struct {
	ctx        context.Context
	form       *form.ContactForm
	err        error
	created    *models.Contact
	fields     []form.Field
	inputs     []textinput.Model
	focus      int
	editing    bool
	submitting bool
}

func NewAddContactModel(ctx context.Context, deps Deps) *AddContactModel {
	fields := form.ContactFields()
	inputs := make([]textinput.Model, 0, len(fields)+1)
	for _, f := range fields {
		in := newInput(contactPlaceholders[f], 200)
		inputs = append(inputs, in)
	}
	inputs = append(inputs, newInput("/path/to/image.png (optional)", 500))

	m := &AddContactModel{
		ctx:    ctx,
		form:   form.NewContactForm(deps.Contacts, deps.Logger),
		fields: fields,
		inputs: inputs,
	}
	return m
}

// Draft текущий черновик формы
func (m *AddContactModel) Draft() models.ContactDraft { return m.form.Draft() }

// Capturing true, пока активен ввод в поля
func (m *AddContactModel) Capturing() bool { return m.editing }

func (m *AddContactModel) imageInput() *textinput.Model {
	return &m.inputs[len(m.inputs)-1]
}

func (m *AddContactModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case contactCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.err = nil
		m.created = msg.contact
		m.syncInputs()
		return nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+s" {
			return m.submit()
		}
		if !m.editing {
			switch key {
			case "enter", "i":
				m.setEditing(true)
			}
			return nil
		}

		switch key {
		case "esc":
			m.setEditing(false)
			return nil
		case "tab", "down":
			m.moveFocus(1)
			return nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return nil
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.focus < len(m.fields) {
			// Поля закрытого набора, ошибки быть не может
			_ = m.form.SetField(m.fields[m.focus], m.inputs[m.focus].Value())
		}
		return cmd
	}
	return nil
}

func (m *AddContactModel) setEditing(on bool) {
	m.editing = on
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if on {
		m.inputs[m.focus].Focus()
	}
}

func (m *AddContactModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// syncInputs переносит черновик формы в поля ввода после отправки.
// Правки, сделанные во время запроса, остаются в черновике и на экране.
func (m *AddContactModel) syncInputs() {
	draft := m.form.Draft()
	for i, f := range m.fields {
		m.inputs[i].SetValue(form.ContactValue(draft, f))
	}
	if draft != models.EmptyContactDraft() {
		return
	}
	m.imageInput().SetValue("")
	m.setEditing(false)
	m.focus = 0
}

func (m *AddContactModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.created = nil

	ctx, contactForm := m.ctx, m.form
	imagePath := strings.TrimSpace(m.imageInput().Value())

	return func() tea.Msg {
		if imagePath == "" {
			contactForm.ClearImage()
		} else if err := contactForm.CaptureImageFile(ctx, imagePath); err != nil {
			return contactCreatedMsg{err: fmt.Errorf("failed to attach image: %w", err)}
		}
		contact, err := contactForm.Submit(ctx)
		return contactCreatedMsg{contact: contact, err: err}
	}
}

func (m *AddContactModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Contact"))
	b.WriteString("\n")

	var verr *validation.ValidationError
	errors.As(m.err, &verr)

	for i := range m.inputs {
		label := "Image"
		invalid := false
		if i < len(m.fields) {
			label = contactLabels[m.fields[i]]
			invalid = verr != nil && verr.HasField(m.fields[i].String())
		}
		label = fmt.Sprintf("%-9s", label+":")

		switch {
		case invalid:
			label = errorStyle.Render(label)
		case m.editing && i == m.focus:
			label = selectedStyle.Render(label)
		default:
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s %s\n", label, m.inputs[i].View())
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(labelStyle.Render("Saving..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.created != nil:
		b.WriteString(successStyle.Render(fmt.Sprintf("✓ Contact %s added. It will show up in Contacts.", m.created.Name)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *AddContactModel) Help() string {
	if m.editing {
		return "tab/↑/↓: field • ctrl+s: save • esc: stop editing"
	}
	return "enter/i: edit • ctrl+s: save"
}
