package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

var colours = struct {
	Accent, Text, Muted, Red, Green, Yellow string
}{
	Accent: "#7D56F4",
	Text:   "#E4E4E7",
	Muted:  "#71717A",
	Red:    "#EF4444",
	Green:  "#22C55E",
	Yellow: "#EAB308",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colours.Accent)).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(colours.Muted))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color(colours.Text)).
			Background(lipgloss.Color(colours.Accent)).
			Bold(true)

	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Muted))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Text))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Accent)).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Red)).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Green))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Yellow))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Muted)).MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colours.Muted)).
			Padding(0, 1)
)

// newInput текстовое поле без мигающего курсора
func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Accent))
	in.TextStyle = textStyle
	return in
}
