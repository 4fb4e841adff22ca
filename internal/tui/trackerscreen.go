package tui

import (
	"fmt"
	"time"

	"weightless/internal/service"
	"weightless/internal/tracker"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TrackerModel is the live activity tracking screen model
type TrackerModel struct {
	activity *service.ActivityService
	units    Units

	status  string
	summary *tracker.Summary
}

// NewTrackerModel creates a new tracker screen model
func NewTrackerModel(as *service.ActivityService, units Units) TrackerModel {
	return TrackerModel{activity: as, units: units}
}

// trackerTickMsg drives the live stats refresh while tracking.
type trackerTickMsg time.Time

func trackerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return trackerTickMsg(t)
	})
}

// Init initializes the tracker screen
func (m TrackerModel) Init() tea.Cmd {
	if m.activity.State() == tracker.Tracking {
		return trackerTick()
	}
	return nil
}

// TrackerStoppedMsg tells the app a session finished and data changed
type TrackerStoppedMsg struct{}

// Update handles messages
func (m TrackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trackerTickMsg:
		// Keep ticking only while the session runs
		if m.activity.State() == tracker.Tracking {
			return m, trackerTick()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if m.activity.State() == tracker.Idle {
				m.summary = nil
				if err := m.activity.Start(); err != nil {
					m.status = errorStyle.Render(err.Error())
					return m, nil
				}
				m.status = ""
				return m, trackerTick()
			}
		case "p":
			m.activity.Pause()
		case "c":
			if err := m.activity.Resume(); err != nil {
				m.status = errorStyle.Render(err.Error())
				return m, nil
			}
			if m.activity.State() == tracker.Tracking {
				return m, trackerTick()
			}
		case "x":
			summary, ok, err := m.activity.Stop()
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				return m, nil
			}
			if ok {
				m.summary = &summary
				m.status = successStyle.Render("Session saved")
				return m, func() tea.Msg { return TrackerStoppedMsg{} }
			}
			m.summary = nil
			m.status = warningStyle.Render("Session discarded: no distance covered")
		}
	}
	return m, nil
}

// View renders the tracker screen
func (m TrackerModel) View() string {
	state := m.activity.State()
	stats := m.activity.Stats()

	var sections []string

	stateLabel := metricValueStyle.Render(state.String())
	switch state {
	case tracker.Tracking:
		stateLabel = successStyle.Render("tracking")
	case tracker.Paused:
		stateLabel = warningStyle.Render("paused")
	}

	title := cardTitleStyle.Render("Activity Tracker")
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Left, metricLabelStyle.Render("Status"), stateLabel),
		RenderMetric("Duration", formatElapsed(m.activity.ActiveDuration()), ""),
		RenderMetric("Distance", m.units.FormatDistance(stats.DistanceKm), ""),
		RenderMetric("Steps", fmt.Sprintf("%d", stats.Steps), ""),
		RenderMetric("Speed", fmt.Sprintf("%.1f km/h", stats.SpeedKmh), ""),
		RenderMetric("Calories", fmt.Sprintf("%.0f kcal", stats.CaloriesKcal), ""),
	}
	sections = append(sections, cardStyle.Width(40).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, lines...))))

	if m.summary != nil {
		sections = append(sections, m.renderSummaryCard())
	}

	if err := m.activity.LastError(); err != nil {
		sections = append(sections, warningStyle.Render("  signal: "+err.Error()))
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}

	help := statusStyle.Render("s: start  p: pause  c: continue  x: stop")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TrackerModel) renderSummaryCard() string {
	title := cardTitleStyle.Render("Last Session")
	s := m.summary

	lines := []string{
		RenderMetric("Duration", formatElapsed(s.Duration), ""),
		RenderMetric("Distance", m.units.FormatDistance(s.DistanceKm), ""),
		RenderMetric("Steps", fmt.Sprintf("%d", s.Steps), ""),
		RenderMetric("Calories", fmt.Sprintf("%.0f kcal", s.CaloriesKcal), ""),
		RenderMetric("Est. loss", m.units.FormatDelta(-s.WeightLossKg()), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
