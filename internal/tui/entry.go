package tui

import (
	"fmt"
	"strconv"
	"time"

	"weightless/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryModel is the add-entry form model
type EntryModel struct {
	store *store.Store
	units Units

	inputs  []textinput.Model
	focused int
	err     error
}

const (
	entryFieldWeight = iota
	entryFieldDate
	entryFieldNotes
)

// EntrySavedMsg tells the app an entry was added and screens should refresh
type EntrySavedMsg struct{}

// NewEntryModel creates a new entry form
func NewEntryModel(st *store.Store, units Units) EntryModel {
	weight := textinput.New()
	weight.Placeholder = "e.g. 80.5 (" + units.WeightLabel() + ")"
	weight.CharLimit = 8
	weight.Width = 24
	weight.Focus()

	date := textinput.New()
	date.Placeholder = time.Now().Format("2006-01-02")
	date.CharLimit = 10
	date.Width = 24

	notes := textinput.New()
	notes.Placeholder = "optional"
	notes.CharLimit = 120
	notes.Width = 40

	return EntryModel{
		store:  st,
		units:  units,
		inputs: []textinput.Model{weight, date, notes},
	}
}

// Init initializes the form
func (m EntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focused = (m.focused + 1) % len(m.inputs)
			m.refocus()
			return m, nil
		case "shift+tab", "up":
			m.focused = (m.focused - 1 + len(m.inputs)) % len(m.inputs)
			m.refocus()
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *EntryModel) refocus() {
	for i := range m.inputs {
		if i == m.focused {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m EntryModel) submit() (tea.Model, tea.Cmd) {
	weight, err := strconv.ParseFloat(m.inputs[entryFieldWeight].Value(), 64)
	if err != nil {
		m.err = fmt.Errorf("weight must be a number")
		return m, nil
	}

	recordedAt, err := entryTime(m.inputs[entryFieldDate].Value(), time.Now())
	if err != nil {
		m.err = err
		return m, nil
	}

	notes := m.inputs[entryFieldNotes].Value()

	if _, err := m.store.AddWeightEntry(m.units.ToKg(weight), recordedAt, notes, false); err != nil {
		m.err = err
		return m, nil
	}

	return m, func() tea.Msg { return EntrySavedMsg{} }
}

// entryTime resolves the date field. Blank means now; an explicit date keeps
// the current time of day in the user's zone so same-day entries stay ordered.
func entryTime(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must look like 2006-01-02")
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}

// View renders the form
func (m EntryModel) View() string {
	title := cardTitleStyle.Render("Add Weight Entry")

	labels := []string{
		"Weight (" + m.units.WeightLabel() + ")",
		"Date (blank = today)",
		"Notes",
	}

	var lines []string
	for i, input := range m.inputs {
		lines = append(lines, metricLabelStyle.Width(22).Render(labels[i])+input.View())
	}

	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}

	footer := statusStyle.Render("tab: next field  enter: save  esc: cancel")

	form := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, title, form, footer)
}
