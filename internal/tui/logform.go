package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retirestrong/internal/service"
	"retirestrong/internal/store"
)

// Form field positions
const (
	fieldType = iota
	fieldDuration
	fieldRating
	fieldNotes
	fieldCount
)

// LogWorkoutModel is the workout entry form
type LogWorkoutModel struct {
	tracker *service.Tracker

	typeIdx  int
	duration textinput.Model
	rating   textinput.Model
	notes    textinput.Model

	// -1 means browsing, otherwise the focused field
	focus  int
	errMsg string
}

// NewLogWorkoutModel creates a new workout form
func NewLogWorkoutModel(tracker *service.Tracker) LogWorkoutModel {
	duration := textinput.New()
	duration.Placeholder = "30"
	duration.CharLimit = 3
	duration.Width = 6

	rating := textinput.New()
	rating.Placeholder = "1-5"
	rating.CharLimit = 1
	rating.Width = 6

	notes := textinput.New()
	notes.Placeholder = "optional"
	notes.CharLimit = 200
	notes.Width = 40

	return LogWorkoutModel{
		tracker:  tracker,
		duration: duration,
		rating:   rating,
		notes:    notes,
		focus:    fieldType,
	}
}

// Init initializes the form
func (m LogWorkoutModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LogWorkoutModel) capturing() bool {
	return m.focus >= 0
}

// Update handles messages
func (m LogWorkoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.focus < 0 {
		switch keyMsg.String() {
		case "enter", "e":
			m.focus = fieldType
			return m.syncFocus()
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.focus = -1
		return m.syncFocus()
	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
		return m.syncFocus()
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m.syncFocus()
	case "enter":
		return m.submit()
	case "left", "right":
		if m.focus == fieldType {
			step := 1
			if keyMsg.String() == "left" {
				step = len(store.WorkoutTypes) - 1
			}
			m.typeIdx = (m.typeIdx + step) % len(store.WorkoutTypes)
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m LogWorkoutModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.duration, cmd = m.duration.Update(msg)
	cmds = append(cmds, cmd)
	m.rating, cmd = m.rating.Update(msg)
	cmds = append(cmds, cmd)
	m.notes, cmd = m.notes.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m LogWorkoutModel) syncFocus() (tea.Model, tea.Cmd) {
	m.duration.Blur()
	m.rating.Blur()
	m.notes.Blur()

	switch m.focus {
	case fieldDuration:
		return m, m.duration.Focus()
	case fieldRating:
		return m, m.rating.Focus()
	case fieldNotes:
		return m, m.notes.Focus()
	}
	return m, nil
}

func (m LogWorkoutModel) submit() (tea.Model, tea.Cmd) {
	duration, err := strconv.Atoi(strings.TrimSpace(m.duration.Value()))
	if err != nil || duration < 1 || duration > 300 {
		m.errMsg = "Duration must be between 1 and 300 minutes"
		return m, nil
	}

	rating, err := strconv.Atoi(strings.TrimSpace(m.rating.Value()))
	if err != nil || rating < 1 || rating > 5 {
		m.errMsg = "Energy rating must be between 1 and 5"
		return m, nil
	}

	workoutType := store.WorkoutTypes[m.typeIdx]
	if _, err := m.tracker.LogWorkout(workoutType, duration, rating, m.notes.Value(), time.Now()); err != nil {
		m.errMsg = fmt.Sprintf("Could not save workout: %v", err)
		return m, nil
	}

	return m, func() tea.Msg { return WorkoutLoggedMsg{} }
}

// View renders the form
func (m LogWorkoutModel) View() string {
	title := cardTitleStyle.Render("Log a Workout")

	typeLabel := formLabelStyle.Render("Type")
	typeValue := store.WorkoutTypes[m.typeIdx]
	if m.focus == fieldType {
		typeValue = formActiveStyle.Render("< " + typeValue + " >")
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Left, typeLabel, typeValue),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Minutes"), m.duration.View()),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Energy"), m.rating.View()),
		lipgloss.JoinHorizontal(lipgloss.Left, formLabelStyle.Render("Notes"), m.notes.View()),
	}

	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(m.errMsg))
	}

	form := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, lipgloss.JoinVertical(lipgloss.Left, lines...)))

	var help string
	if m.capturing() {
		help = statusStyle.Render("tab: next field / left,right: change type / enter: save / esc: done editing")
	} else {
		help = statusStyle.Render("enter: edit form / 1-6: switch screens")
	}

	return lipgloss.JoinVertical(lipgloss.Left, form, help)
}
