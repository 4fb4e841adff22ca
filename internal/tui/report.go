package tui

import (
	"fmt"
	"time"

	"weightless/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReportModel is the weekly report screen model
type ReportModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.ReportData
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewReportModel creates a new report model
func NewReportModel(qs *service.QueryService, units Units, width, height int) ReportModel {
	m := ReportModel{
		queryService: qs,
		units:        units,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return m.loadReport
}

type reportLoadedMsg struct {
	data *service.ReportData
	err  error
}

func (m ReportModel) loadReport() tea.Msg {
	data, err := m.queryService.GetReportData(time.Now())
	return reportLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadReport
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the report screen
func (m ReportModel) View() string {
	if m.loading {
		return "\n  Building report..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ReportModel) renderContent() string {
	if m.data == nil || !m.data.Ok {
		emptyStyle := lipgloss.NewStyle().Foreground(mutedColor)
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			cardTitleStyle.Render("Weekly Report"),
			"",
			emptyStyle.Render("  Insufficient data for a report."),
			emptyStyle.Render("  Log at least two weigh-ins inside the last seven days."),
		)
	}

	r := m.data.Report

	trendLine := "Your weight is " + r.Trend + " this week."
	trendStyle := trendDownStyle
	if r.Trend == "increasing" {
		trendStyle = trendUpStyle
	}

	lines := []string{
		RenderMetric("Start of week", m.units.FormatWeight(r.StartKg), ""),
		RenderMetric("End of week", m.units.FormatWeight(r.EndKg), ""),
		RenderMetric("Change", m.units.FormatDelta(r.ChangeKg), ""),
		RenderMetric("Average", m.units.FormatWeight(r.AverageKg), ""),
		RenderMetric("Activities", fmt.Sprintf("%d", r.Activities), ""),
	}
	if r.BMI > 0 {
		lines = append(lines, RenderMetric("BMI", fmt.Sprintf("%.1f", r.BMI), ""))
	}
	lines = append(lines, "", trendStyle.Render(trendLine))

	title := cardTitleStyle.Render("Weekly Report - last 7 days")
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
