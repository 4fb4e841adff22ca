package tui

import (
	"weightless/internal/config"
	"weightless/internal/service"
	"weightless/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenHistory
	ScreenTrends
	ScreenPredictions
	ScreenReport
	ScreenTracker
	ScreenEntry
	ScreenProfile
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard   DashboardModel
	history     HistoryModel
	trends      TrendsModel
	predictions PredictionsModel
	report      ReportModel
	trackerView TrackerModel
	entry       EntryModel
	profile     ProfileModel
	help        HelpModel

	// Services
	store           *store.Store
	queryService    *service.QueryService
	activityService *service.ActivityService
	units           Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(st *store.Store, queryService *service.QueryService, activityService *service.ActivityService, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:          ScreenDashboard,
		store:           st,
		queryService:    queryService,
		activityService: activityService,
		units:           units,
		dashboard:       NewDashboardModel(queryService, units),
		history:         NewHistoryModel(queryService, st, units),
		trends:          NewTrendsModel(queryService, units),
		predictions:     NewPredictionsModel(queryService, units),
		report:          NewReportModel(queryService, units, 0, 0),
		trackerView:     NewTrackerModel(activityService, units),
		entry:           NewEntryModel(st, units),
		profile:         NewProfileModel(st),
		help:            NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// formScreen reports whether the screen captures free-form typing, which
// disables single-letter global bindings.
func (a *App) formScreen() bool {
	return a.screen == ScreenEntry || a.screen == ScreenProfile
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenEntry, ScreenProfile:
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.queryService, a.units)
				return a, a.dashboard.Init()
			}
		}

		if !a.formScreen() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.queryService, a.units)
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenHistory
				a.history = NewHistoryModel(a.queryService, a.store, a.units)
				return a, a.history.Init()
			case "3":
				a.screen = ScreenTrends
				a.trends = NewTrendsModel(a.queryService, a.units)
				return a, a.trends.Init()
			case "4":
				a.screen = ScreenPredictions
				a.predictions = NewPredictionsModel(a.queryService, a.units)
				return a, a.predictions.Init()
			case "5":
				a.screen = ScreenReport
				a.report = NewReportModel(a.queryService, a.units, a.width, a.height)
				return a, a.report.Init()
			case "6":
				a.screen = ScreenTracker
				a.trackerView = NewTrackerModel(a.activityService, a.units)
				return a, a.trackerView.Init()
			case "a":
				a.screen = ScreenEntry
				a.entry = NewEntryModel(a.store, a.units)
				return a, a.entry.Init()
			case "p":
				// The tracker screen owns 'p' for pause
				if a.screen != ScreenTracker {
					a.screen = ScreenProfile
					a.profile = NewProfileModel(a.store)
					return a, a.profile.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case EntrySavedMsg, ProfileSavedMsg, TrackerStoppedMsg:
		// Data changed: land on a fresh dashboard, except a finished
		// session keeps the tracker screen up to show the summary
		if _, stopped := msg.(TrackerStoppedMsg); !stopped {
			a.screen = ScreenDashboard
			a.dashboard = NewDashboardModel(a.queryService, a.units)
			return a, a.dashboard.Init()
		}
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenTrends:
		var m tea.Model
		m, cmd = a.trends.Update(msg)
		a.trends = m.(TrendsModel)
	case ScreenPredictions:
		var m tea.Model
		m, cmd = a.predictions.Update(msg)
		a.predictions = m.(PredictionsModel)
	case ScreenReport:
		var m tea.Model
		m, cmd = a.report.Update(msg)
		a.report = m.(ReportModel)
	case ScreenTracker:
		var m tea.Model
		m, cmd = a.trackerView.Update(msg)
		a.trackerView = m.(TrackerModel)
	case ScreenEntry:
		var m tea.Model
		m, cmd = a.entry.Update(msg)
		a.entry = m.(EntryModel)
	case ScreenProfile:
		var m tea.Model
		m, cmd = a.profile.Update(msg)
		a.profile = m.(ProfileModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenTrends:
		content = a.trends.View()
	case ScreenPredictions:
		content = a.predictions.View()
	case ScreenReport:
		content = a.report.View()
	case ScreenTracker:
		content = a.trackerView.View()
	case ScreenEntry:
		content = a.entry.View()
	case ScreenProfile:
		content = a.profile.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("WeightLess")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "History", ScreenHistory},
		{"3", "Trends", ScreenTrends},
		{"4", "Predictions", ScreenPredictions},
		{"5", "Report", ScreenReport},
		{"6", "Tracker", ScreenTracker},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
