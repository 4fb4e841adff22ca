package tui

import (
	"fmt"

	"weightless/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PredictionsModel is the weight projection screen model
type PredictionsModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.PredictionsData
	loading      bool
	err          error
}

// NewPredictionsModel creates a new predictions model
func NewPredictionsModel(qs *service.QueryService, units Units) PredictionsModel {
	return PredictionsModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the predictions screen
func (m PredictionsModel) Init() tea.Cmd {
	return m.loadPredictions
}

type predictionsLoadedMsg struct {
	data *service.PredictionsData
	err  error
}

func (m PredictionsModel) loadPredictions() tea.Msg {
	data, err := m.queryService.GetPredictionsData()
	return predictionsLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m PredictionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadPredictions
		}
	}
	return m, nil
}

// View renders the predictions screen
func (m PredictionsModel) View() string {
	if m.loading {
		return "\n  Loading predictions..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || !m.data.Ok {
		return m.renderEmptyState()
	}

	title := cardTitleStyle.Render("Projected Weight")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %12s", "Horizon", "Projected"))
	rows := []string{header}
	for _, p := range m.data.Predictions {
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-10s  %12s",
			fmt.Sprintf("%d days", p.HorizonDays),
			m.units.FormatWeight(p.WeightKg))))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	card := cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, table))

	about := statusStyle.Render("Projections extrapolate your recent daily change. Press 'r' to refresh.")
	return lipgloss.JoinVertical(lipgloss.Left, card, about)
}

func (m PredictionsModel) renderEmptyState() string {
	emptyStyle := lipgloss.NewStyle().Foreground(mutedColor)

	lines := []string{
		"",
		cardTitleStyle.Render("Projected Weight"),
		"",
		emptyStyle.Render("  Not enough data to project yet."),
		emptyStyle.Render("  Log at least seven weigh-ins to unlock projections."),
		"",
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
