package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"weightless/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProfileModel is the profile form model
type ProfileModel struct {
	store *store.Store

	inputs  []textinput.Model
	focused int
	err     error
	loaded  bool
}

const (
	profileFieldHeight = iota
	profileFieldAge
	profileFieldGender
	profileFieldLevel
)

// ProfileSavedMsg tells the app the profile changed and metrics should refresh
type ProfileSavedMsg struct{}

// NewProfileModel creates a new profile form
func NewProfileModel(st *store.Store) ProfileModel {
	height := textinput.New()
	height.Placeholder = "e.g. 178"
	height.CharLimit = 5
	height.Width = 24
	height.Focus()

	age := textinput.New()
	age.Placeholder = "e.g. 32"
	age.CharLimit = 3
	age.Width = 24

	gender := textinput.New()
	gender.Placeholder = strings.Join(store.Genders, " / ")
	gender.CharLimit = 8
	gender.Width = 24

	level := textinput.New()
	level.Placeholder = strings.Join(store.ActivityLevels, " / ")
	level.CharLimit = 12
	level.Width = 24

	return ProfileModel{
		store:  st,
		inputs: []textinput.Model{height, age, gender, level},
	}
}

// Init loads the stored profile into the form
func (m ProfileModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadProfile)
}

type profileLoadedMsg struct {
	profile *store.Profile
	err     error
}

func (m ProfileModel) loadProfile() tea.Msg {
	profile, err := m.store.GetProfile()
	if errors.Is(err, store.ErrNoProfile) {
		return profileLoadedMsg{}
	}
	return profileLoadedMsg{profile: profile, err: err}
}

// Update handles messages
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.profile != nil {
			m.inputs[profileFieldHeight].SetValue(strconv.FormatFloat(msg.profile.HeightCm, 'f', -1, 64))
			m.inputs[profileFieldAge].SetValue(strconv.Itoa(msg.profile.Age))
			m.inputs[profileFieldGender].SetValue(msg.profile.Gender)
			m.inputs[profileFieldLevel].SetValue(msg.profile.ActivityLevel)
		}
		return m, nil

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

func (m *ProfileModel) refocus() {
	for i := range m.inputs {
		if i == m.focused {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m ProfileModel) submit() (tea.Model, tea.Cmd) {
	height, err := strconv.ParseFloat(m.inputs[profileFieldHeight].Value(), 64)
	if err != nil {
		m.err = fmt.Errorf("height must be a number in cm")
		return m, nil
	}

	age, err := strconv.Atoi(m.inputs[profileFieldAge].Value())
	if err != nil {
		m.err = fmt.Errorf("age must be a whole number")
		return m, nil
	}

	profile := store.Profile{
		HeightCm:      height,
		Age:           age,
		Gender:        strings.ToLower(strings.TrimSpace(m.inputs[profileFieldGender].Value())),
		ActivityLevel: strings.ToLower(strings.TrimSpace(m.inputs[profileFieldLevel].Value())),
	}

	if err := m.store.SaveProfile(profile); err != nil {
		m.err = err
		return m, nil
	}

	return m, func() tea.Msg { return ProfileSavedMsg{} }
}

// View renders the form
func (m ProfileModel) View() string {
	title := cardTitleStyle.Render("Profile")

	if !m.loaded {
		return "\n  Loading profile..."
	}

	labels := []string{
		"Height (cm)",
		"Age",
		"Gender",
		"Activity level",
	}

	var lines []string
	for i, input := range m.inputs {
		lines = append(lines, metricLabelStyle.Width(18).Render(labels[i])+input.View())
	}

	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}

	footer := statusStyle.Render("tab: next field  enter: save  esc: cancel")

	form := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, title, form, footer)
}
