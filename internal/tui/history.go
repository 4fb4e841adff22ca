package tui

import (
	"fmt"

	"weightless/internal/service"
	"weightless/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyPageSize is how many entries fit on one page.
const historyPageSize = 15

// HistoryModel is the full entry history screen model
type HistoryModel struct {
	queryService *service.QueryService
	store        *store.Store
	units        Units

	entries         []store.WeightEntry
	cursor          int
	offset          int
	loading         bool
	err             error
	status          string
	confirmingClear bool
}

// NewHistoryModel creates a new history model
func NewHistoryModel(qs *service.QueryService, st *store.Store, units Units) HistoryModel {
	return HistoryModel{
		queryService: qs,
		store:        st,
		units:        units,
		loading:      true,
	}
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadEntries
}

type historyLoadedMsg struct {
	entries []store.WeightEntry
	err     error
}

func (m HistoryModel) loadEntries() tea.Msg {
	entries, err := m.queryService.GetHistory()
	return historyLoadedMsg{entries: entries, err: err}
}

type entryDeletedMsg struct {
	err error
}

func (m HistoryModel) deleteEntry(id int64) tea.Cmd {
	return func() tea.Msg {
		return entryDeletedMsg{err: m.store.DeleteWeightEntry(id)}
	}
}

type dataClearedMsg struct {
	err error
}

// clearAll wipes every weight entry and the activity session queue.
func (m HistoryModel) clearAll() tea.Msg {
	if err := m.store.ClearWeightEntries(); err != nil {
		return dataClearedMsg{err: err}
	}
	return dataClearedMsg{err: m.store.ClearSessions()}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = len(m.entries) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case entryDeletedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Delete failed: %v", msg.err))
			return m, nil
		}
		m.status = successStyle.Render("Entry deleted")
		return m, m.loadEntries

	case dataClearedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Clear failed: %v", msg.err))
			return m, nil
		}
		m.status = warningStyle.Render("All data cleared")
		m.cursor = 0
		m.offset = 0
		return m, m.loadEntries

	case tea.KeyMsg:
		// A pending clear waits for an explicit yes; any other key cancels
		if m.confirmingClear {
			m.confirmingClear = false
			if msg.String() == "y" {
				return m, m.clearAll
			}
			m.status = statusStyle.Render("Clear canceled")
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "d", "delete":
			if m.cursor < len(m.entries) {
				return m, m.deleteEntry(m.entries[m.cursor].ID)
			}
		case "C":
			if len(m.entries) > 0 {
				m.confirmingClear = true
				m.status = ""
			}
		case "r":
			m.loading = true
			return m, m.loadEntries
		}

		// Keep the cursor on screen
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+historyPageSize {
			m.offset = m.cursor - historyPageSize + 1
		}
	}
	return m, nil
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	title := cardTitleStyle.Render(fmt.Sprintf("History (%d entries)", len(m.entries)))

	if len(m.entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(mutedColor).Render("No entries yet. Press 'a' to add your weight.")
		return lipgloss.JoinVertical(lipgloss.Left, title, empty)
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %10s  %-6s  %s",
		"Date", "Weight", "Source", "Notes"))

	rows := []string{header}
	end := m.offset + historyPageSize
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.offset; i < end; i++ {
		e := m.entries[i]

		source := "manual"
		if e.Auto {
			source = "auto"
		}

		line := fmt.Sprintf("%-12s  %10s  %-6s  %s",
			e.RecordedAt.Format("Jan 02 2006"),
			m.units.FormatWeight(e.WeightKg),
			source,
			truncateNotes(e.Notes, 36),
		)

		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := statusStyle.Render("j/k: move  d: delete  C: clear all  r: refresh")
	if m.confirmingClear {
		footer = warningStyle.Render("Delete ALL entries and activity history? Press 'y' to confirm, any other key to cancel.")
	} else if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.status, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, table, footer)
}
