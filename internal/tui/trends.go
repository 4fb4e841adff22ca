package tui

import (
	"fmt"

	"weightless/internal/analysis"
	"weightless/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// TrendsModel is the weekly/monthly trends screen model
type TrendsModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.TrendsData
	loading      bool
	err          error
}

// NewTrendsModel creates a new trends model
func NewTrendsModel(qs *service.QueryService, units Units) TrendsModel {
	return TrendsModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the trends screen
func (m TrendsModel) Init() tea.Cmd {
	return m.loadTrends
}

type trendsLoadedMsg struct {
	data *service.TrendsData
	err  error
}

func (m TrendsModel) loadTrends() tea.Msg {
	data, err := m.queryService.GetTrendsData()
	return trendsLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m TrendsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trendsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadTrends
		}
	}
	return m, nil
}

// View renders the trends screen
func (m TrendsModel) View() string {
	if m.loading {
		return "\n  Loading trends..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || len(m.data.Weekly) == 0 {
		return "\n  Not enough entries to show trends. Log at least two weigh-ins."
	}

	var sections []string

	sections = append(sections, m.renderSummaryCard())
	if len(m.data.Trend) > 2 {
		sections = append(sections, m.renderTrendChart())
	}
	sections = append(sections, m.renderAveragesTables())

	help := statusStyle.Render("Press 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TrendsModel) renderSummaryCard() string {
	title := cardTitleStyle.Render("Weekly Summary")

	lines := []string{
		RenderMetric("Last 7 entries", m.units.FormatDelta(m.data.Stats.ChangeKg), ""),
		RenderMetric("Trend overall", m.units.FormatDelta(m.data.Stats.TrendDeltaKg), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m TrendsModel) renderTrendChart() string {
	title := cardTitleStyle.Render("Weekly Average Trend - " + m.units.WeightLabel())

	averages := make([]float64, len(m.data.Weekly))
	for i, w := range m.data.Weekly {
		averages[i] = m.units.WeightValue(w.AverageKg)
	}
	trend := make([]float64, len(m.data.Trend))
	for i, v := range m.data.Trend {
		trend[i] = m.units.WeightValue(v)
	}

	graph := asciigraph.PlotMany([][]float64{averages, trend},
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
	)

	legend := statusStyle.Render("blue: weekly average  red: fitted trend")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, legend))
}

func (m TrendsModel) renderAveragesTables() string {
	weekly := m.renderAveragesTable("Weekly Averages", weeklyRows(m.data.Weekly, m.units))
	monthly := m.renderAveragesTable("Monthly Averages", monthlyRows(m.data.Monthly, m.units))
	return lipgloss.JoinHorizontal(lipgloss.Top, weekly, "  ", monthly)
}

func (m TrendsModel) renderAveragesTable(name string, rows []string) string {
	title := cardTitleStyle.Render(name)

	if len(rows) == 0 {
		return cardStyle.Width(30).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No data"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %10s", "Period", "Average"))
	table := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
	return cardStyle.Width(30).Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

// averagesTableLimit caps both tables at the most recent periods.
const averagesTableLimit = 8

func weeklyRows(weekly []analysis.WeeklyAverage, units Units) []string {
	start := 0
	if len(weekly) > averagesTableLimit {
		start = len(weekly) - averagesTableLimit
	}

	var rows []string
	for _, w := range weekly[start:] {
		rows = append(rows, tableRowStyle.Render(
			fmt.Sprintf("%-10s  %10s", w.WeekKey, units.FormatWeight(w.AverageKg))))
	}
	return rows
}

func monthlyRows(monthly []analysis.MonthlyAverage, units Units) []string {
	start := 0
	if len(monthly) > averagesTableLimit {
		start = len(monthly) - averagesTableLimit
	}

	var rows []string
	for _, mo := range monthly[start:] {
		rows = append(rows, tableRowStyle.Render(
			fmt.Sprintf("%-10s  %10s", mo.MonthKey, units.FormatWeight(mo.AverageKg))))
	}
	return rows
}
