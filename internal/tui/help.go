package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	title := cardTitleStyle.Render("Keyboard Shortcuts")

	sections := []struct {
		name string
		keys [][2]string
	}{
		{"Navigation", [][2]string{
			{"1", "Dashboard"},
			{"2", "History"},
			{"3", "Trends"},
			{"4", "Predictions"},
			{"5", "Report"},
			{"6", "Tracker"},
			{"?", "Help"},
			{"esc", "Back"},
			{"q", "Quit"},
		}},
		{"Actions", [][2]string{
			{"a", "Add a weight entry"},
			{"p", "Edit profile"},
			{"r", "Refresh current screen"},
			{"d", "Delete selected entry (history)"},
			{"C", "Clear all data (history, asks to confirm)"},
		}},
		{"Tracker", [][2]string{
			{"s", "Start a session"},
			{"p", "Pause"},
			{"c", "Continue"},
			{"x", "Stop and save"},
		}},
	}

	var lines []string
	for _, section := range sections {
		lines = append(lines, "", cardTitleStyle.Render(section.name))
		for _, kv := range section.keys {
			lines = append(lines, "  "+RenderKeyHelp(padKey(kv[0]), kv[1]))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

func padKey(key string) string {
	for len(key) < 4 {
		key += " "
	}
	return key
}
