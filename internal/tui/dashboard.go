package tui

import (
	"fmt"

	"weightless/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, units Units) DashboardModel {
	return DashboardModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || !m.data.HasTotals {
		return "\n  No entries yet. Press 'a' to add your weight."
	}

	var sections []string

	// Top row: progress and health side by side
	progressCard := m.renderProgressCard()
	healthCard := m.renderHealthCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, progressCard, "  ", healthCard)
	sections = append(sections, topRow)

	if len(m.data.ChartWeights) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderRecentEntries())

	help := statusStyle.Render("Press 'a' to add an entry, 'r' to refresh, '2' for history")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderProgressCard() string {
	title := cardTitleStyle.Render("Progress")
	t := m.data.Totals

	lastDelta := ""
	if t.HasLastDelta {
		lastDelta = m.units.FormatDelta(t.LastDeltaKg)
	}

	lines := []string{
		RenderMetric("Current", m.units.FormatWeight(t.CurrentKg), lastDelta),
		RenderMetric("Start", m.units.FormatWeight(t.StartKg), ""),
		RenderMetric("Total change", m.units.FormatDelta(t.TotalChangeKg), ""),
		RenderMetric("Per week", m.units.FormatDelta(t.WeeklyChangeKg), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderHealthCard() string {
	title := cardTitleStyle.Render("Health")

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	var lines []string
	if m.data.BMI > 0 {
		lines = append(lines,
			RenderMetric("BMI", fmt.Sprintf("%.1f", m.data.BMI), ""),
			mutedStyle.Render(string(m.data.BMICategory)),
		)
	} else {
		lines = append(lines, mutedStyle.Render("Set up your profile ('p')"), mutedStyle.Render("to see BMI and TDEE"))
	}
	if m.data.HasTDEE {
		lines = append(lines, "", RenderMetric("TDEE", fmt.Sprintf("%.0f kcal", m.data.TDEE), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render("Weight - " + m.units.WeightLabel())

	series := make([]float64, len(m.data.ChartWeights))
	for i, kg := range m.data.ChartWeights {
		series[i] = m.units.WeightValue(kg)
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentEntries() string {
	title := cardTitleStyle.Render("Recent Entries")

	if len(m.data.RecentEntries) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No entries yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %10s  %-6s  %s",
		"Date", "Weight", "Source", "Notes"))

	rows := []string{header}
	for i, e := range m.data.RecentEntries {
		if i >= 5 {
			break
		}

		source := "manual"
		if e.Auto {
			source = "auto"
		}

		row := tableRowStyle.Render(fmt.Sprintf("%-12s  %10s  %-6s  %s",
			e.RecordedAt.Format("Jan 02 2006"),
			m.units.FormatWeight(e.WeightKg),
			source,
			truncateNotes(e.Notes, 28),
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func truncateNotes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
