package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retirestrong/internal/service"
	"retirestrong/internal/store"
)

// Settings field positions
const (
	setName = iota
	setAge
	setExperience
	setGoal
	setReminder
	setReminderTime
	setConditions
	setFieldCount
)

var experienceLevels = []string{
	store.ExperienceBeginner,
	store.ExperienceIntermediate,
	store.ExperienceAdvanced,
}

// conditionOptions lists every health condition the profile can carry.
// The coach branches on Arthritis and Balance Issues; the rest are
// informational and appear on the healthcare report.
var conditionOptions = []string{
	"Arthritis",
	"Osteoporosis",
	"Heart Condition",
	"Diabetes",
	"High Blood Pressure",
	"Balance Issues",
	"Joint Replacement",
	"Back Pain",
}

// SettingsModel edits the user profile
type SettingsModel struct {
	tracker *service.Tracker

	name         textinput.Model
	age          textinput.Model
	goal         textinput.Model
	reminderTime textinput.Model

	expIdx     int
	reminderOn bool
	selected   []bool // parallel to conditionOptions
	condIdx    int    // highlighted condition

	// -1 means browsing, otherwise the focused field
	focus   int
	status  string
	statusE bool
}

// NewSettingsModel creates a settings form preloaded from the profile
func NewSettingsModel(tracker *service.Tracker) SettingsModel {
	profile := tracker.Profile()

	name := makeInput("your name", 40, 24)
	name.SetValue(profile.Name)

	age := makeInput("65", 3, 6)
	age.SetValue(strconv.Itoa(profile.Age))

	goal := makeInput("1-7", 1, 6)
	goal.SetValue(strconv.Itoa(profile.WeeklyGoal))

	reminderTime := makeInput("HH:MM", 5, 8)
	reminderTime.SetValue(profile.ReminderTime)

	expIdx := 0
	for i, level := range experienceLevels {
		if level == profile.ExperienceLevel {
			expIdx = i
		}
	}

	selected := make([]bool, len(conditionOptions))
	for i, c := range conditionOptions {
		selected[i] = profile.HasCondition(c)
	}

	return SettingsModel{
		tracker:      tracker,
		name:         name,
		age:          age,
		goal:         goal,
		reminderTime: reminderTime,
		expIdx:       expIdx,
		reminderOn:   profile.ReminderEnabled,
		selected:     selected,
		focus:        setName,
	}
}

// Init initializes the settings form
func (m SettingsModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.name.Focus())
}

func (m SettingsModel) capturing() bool {
	return m.focus >= 0
}

// Update handles messages
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.focus < 0 {
		switch keyMsg.String() {
		case "enter", "e":
			m.focus = setName
			return m.syncFocus()
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.focus = -1
		return m.syncFocus()
	case "tab", "down":
		m.focus = (m.focus + 1) % setFieldCount
		return m.syncFocus()
	case "shift+tab", "up":
		m.focus = (m.focus + setFieldCount - 1) % setFieldCount
		return m.syncFocus()
	case "enter":
		return m.submit()
	case "left", "right":
		switch m.focus {
		case setExperience:
			step := 1
			if keyMsg.String() == "left" {
				step = len(experienceLevels) - 1
			}
			m.expIdx = (m.expIdx + step) % len(experienceLevels)
			return m, nil
		case setReminder:
			m.reminderOn = !m.reminderOn
			return m, nil
		case setConditions:
			step := 1
			if keyMsg.String() == "left" {
				step = len(conditionOptions) - 1
			}
			m.condIdx = (m.condIdx + step) % len(conditionOptions)
			return m, nil
		}
	case " ":
		switch m.focus {
		case setReminder:
			m.reminderOn = !m.reminderOn
			return m, nil
		case setConditions:
			m.selected[m.condIdx] = !m.selected[m.condIdx]
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m SettingsModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.age, cmd = m.age.Update(msg)
	cmds = append(cmds, cmd)
	m.goal, cmd = m.goal.Update(msg)
	cmds = append(cmds, cmd)
	m.reminderTime, cmd = m.reminderTime.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m SettingsModel) syncFocus() (tea.Model, tea.Cmd) {
	m.name.Blur()
	m.age.Blur()
	m.goal.Blur()
	m.reminderTime.Blur()

	switch m.focus {
	case setName:
		return m, m.name.Focus()
	case setAge:
		return m, m.age.Focus()
	case setGoal:
		return m, m.goal.Focus()
	case setReminderTime:
		return m, m.reminderTime.Focus()
	}
	return m, nil
}

func (m SettingsModel) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		m.status, m.statusE = "Name is required", true
		return m, nil
	}

	age, err := strconv.Atoi(strings.TrimSpace(m.age.Value()))
	if err != nil || age < 1 || age > 120 {
		m.status, m.statusE = "Age must be between 1 and 120", true
		return m, nil
	}

	goal, err := strconv.Atoi(strings.TrimSpace(m.goal.Value()))
	if err != nil || goal < 1 || goal > 7 {
		m.status, m.statusE = "Weekly goal must be between 1 and 7 workouts", true
		return m, nil
	}

	reminderTime := strings.TrimSpace(m.reminderTime.Value())
	if m.reminderOn && !validReminderTime(reminderTime) {
		m.status, m.statusE = "Reminder time must be HH:MM (24 hour)", true
		return m, nil
	}

	var conditions []string
	for i, on := range m.selected {
		if on {
			conditions = append(conditions, conditionOptions[i])
		}
	}

	profile := m.tracker.Profile()
	profile.Name = name
	profile.Age = age
	profile.ExperienceLevel = experienceLevels[m.expIdx]
	profile.WeeklyGoal = goal
	profile.ReminderEnabled = m.reminderOn
	if reminderTime != "" {
		profile.ReminderTime = reminderTime
	}
	profile.HealthConditions = conditions

	if err := m.tracker.UpdateProfile(profile); err != nil {
		m.status, m.statusE = fmt.Sprintf("Could not save profile: %v", err), true
		return m, nil
	}

	m.status, m.statusE = "Profile saved", false
	return m, nil
}

func validReminderTime(s string) bool {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return false
	}
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// View renders the settings form
func (m SettingsModel) View() string {
	title := cardTitleStyle.Render("Settings & Profile")

	expValue := experienceLevels[m.expIdx]
	if m.focus == setExperience {
		expValue = formActiveStyle.Render("< " + expValue + " >")
	}

	reminderValue := "off"
	if m.reminderOn {
		reminderValue = "on"
	}
	if m.focus == setReminder {
		reminderValue = formActiveStyle.Render("< " + reminderValue + " >")
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Name"), m.name.View()),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Age"), m.age.View()),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Experience"), expValue),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Weekly goal"), m.goal.View()),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Reminders"), reminderValue),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Remind at"), m.reminderTime.View()),
		"",
		formLabelStyle.Render("Conditions"),
	}
	lines = append(lines, m.renderConditions()...)

	if m.status != "" {
		style := successStyle
		if m.statusE {
			style = errorStyle
		}
		lines = append(lines, "", style.Render(m.status))
	}

	form := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, lipgloss.JoinVertical(lipgloss.Left, lines...)))

	var help string
	if m.capturing() {
		help = statusStyle.Render("tab: next field / left,right: change value / space: toggle condition / enter: save / esc: done editing")
	} else {
		help = statusStyle.Render("enter: edit settings / 1-6: switch screens")
	}

	return lipgloss.JoinVertical(lipgloss.Left, form, help)
}

func (m SettingsModel) renderConditions() []string {
	lines := make([]string, 0, len(conditionOptions))
	for i, c := range conditionOptions {
		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}
		line := "  " + mark + " " + c
		if m.focus == setConditions && i == m.condIdx {
			line = formActiveStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}
