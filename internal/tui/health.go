package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"retirestrong/internal/service"
)

// Health screen modes
type healthMode int

const (
	healthBrowse healthMode = iota
	healthLogMetric
	healthLogPain
)

// HealthModel tracks body measurements and the pain log
type HealthModel struct {
	tracker *service.Tracker
	units   Units

	mode   healthMode
	inputs []textinput.Model
	labels []string
	focus  int

	status  string
	statusE bool
}

// NewHealthModel creates a new health model
func NewHealthModel(tracker *service.Tracker, units Units) HealthModel {
	return HealthModel{tracker: tracker, units: units}
}

// Init initializes the health screen
func (m HealthModel) Init() tea.Cmd {
	return nil
}

func (m HealthModel) capturing() bool {
	return m.mode != healthBrowse
}

func makeInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func (m HealthModel) startMetricForm() (tea.Model, tea.Cmd) {
	m.mode = healthLogMetric
	m.labels = []string{"Weight", "Waist", "Notes"}
	m.inputs = []textinput.Model{
		makeInput(m.units.WeightLabel(), 6, 8),
		makeInput(m.units.LengthLabel(), 5, 8),
		makeInput("optional", 100, 30),
	}
	m.focus = 0
	m.status = ""
	return m, m.inputs[0].Focus()
}

func (m HealthModel) startPainForm() (tea.Model, tea.Cmd) {
	m.mode = healthLogPain
	m.labels = []string{"Location", "Severity", "Notes"}
	m.inputs = []textinput.Model{
		makeInput("e.g. knee", 40, 20),
		makeInput("1-10", 2, 8),
		makeInput("optional", 100, 30),
	}
	m.focus = 0
	m.status = ""
	return m, m.inputs[0].Focus()
}

// Update handles messages
func (m HealthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.mode == healthBrowse {
		switch keyMsg.String() {
		case "w":
			return m.startMetricForm()
		case "p":
			return m.startPainForm()
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.mode = healthBrowse
		m.inputs = nil
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % len(m.inputs)
		return m.syncFocus()
	case "shift+tab", "up":
		m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
		return m.syncFocus()
	case "enter":
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m HealthModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m HealthModel) syncFocus() (tea.Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m, m.inputs[m.focus].Focus()
}

func (m HealthModel) submit() (tea.Model, tea.Cmd) {
	switch m.mode {
	case healthLogMetric:
		weight, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
		if err != nil || weight <= 0 {
			m.status, m.statusE = "Weight must be a positive number", true
			return m, nil
		}
		waist, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
		if err != nil || waist <= 0 {
			m.status, m.statusE = "Waist must be a positive number", true
			return m, nil
		}
		if _, err := m.tracker.LogBodyMetric(m.units.StoredWeight(weight), m.units.StoredLength(waist), m.inputs[2].Value(), time.Now()); err != nil {
			m.status, m.statusE = fmt.Sprintf("Could not save measurement: %v", err), true
			return m, nil
		}
		m.status, m.statusE = "Measurement saved", false

	case healthLogPain:
		location := strings.TrimSpace(m.inputs[0].Value())
		if location == "" {
			m.status, m.statusE = "Location is required", true
			return m, nil
		}
		severity, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
		if err != nil || severity < 1 || severity > 10 {
			m.status, m.statusE = "Severity must be between 1 and 10", true
			return m, nil
		}
		if _, err := m.tracker.LogPain(location, severity, m.inputs[2].Value(), time.Now()); err != nil {
			m.status, m.statusE = fmt.Sprintf("Could not save pain entry: %v", err), true
			return m, nil
		}
		m.status, m.statusE = "Pain entry saved", false
	}

	m.mode = healthBrowse
	m.inputs = nil
	return m, nil
}

// View renders the health screen
func (m HealthModel) View() string {
	if m.mode != healthBrowse {
		return m.renderForm()
	}

	var sections []string

	sections = append(sections, m.renderWeightChart())

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMetricsList(), "  ", m.renderPainList())
	sections = append(sections, row)

	if m.status != "" {
		style := successStyle
		if m.statusE {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	help := statusStyle.Render("Press 'w' to log a measurement, 'p' to log pain")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HealthModel) renderForm() string {
	title := "Log Measurement"
	if m.mode == healthLogPain {
		title = "Log Pain"
	}

	lines := make([]string, 0, len(m.inputs)+2)
	for i, in := range m.inputs {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
			formLabelStyle.Render(m.labels[i]), in.View()))
	}
	if m.status != "" && m.statusE {
		lines = append(lines, "", errorStyle.Render(m.status))
	}

	form := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		lipgloss.JoinVertical(lipgloss.Left, lines...)))

	help := statusStyle.Render("tab: next field / enter: save / esc: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, form, help)
}

func (m HealthModel) renderWeightChart() string {
	title := cardTitleStyle.Render("Weight Trend (" + m.units.WeightLabel() + ")")

	metrics := m.tracker.Snapshot().BodyMetrics
	if len(metrics) < 2 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "Log at least two measurements to see a trend."))
	}

	values := make([]float64, len(metrics))
	for i, entry := range metrics {
		values[i] = entry.Weight
	}
	values = m.units.ConvertWeightData(values)

	graph := asciigraph.Plot(values,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m HealthModel) renderMetricsList() string {
	title := cardTitleStyle.Render("Measurements")

	metrics := m.tracker.Snapshot().BodyMetrics
	if len(metrics) == 0 {
		return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No measurements yet"))
	}

	start := 0
	if len(metrics) > 5 {
		start = len(metrics) - 5
	}

	var lines []string
	for i := len(metrics) - 1; i >= start; i-- {
		entry := metrics[i]
		lines = append(lines, fmt.Sprintf("%s  %s / %s",
			helpDescStyle.Render(entry.Date.Format("Jan 2")),
			m.units.FormatWeight(entry.Weight), m.units.FormatLength(entry.Waist)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m HealthModel) renderPainList() string {
	title := cardTitleStyle.Render("Pain Log")

	entries := m.tracker.Snapshot().PainLog
	if len(entries) == 0 {
		return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, "No pain logged"))
	}

	start := 0
	if len(entries) > 5 {
		start = len(entries) - 5
	}

	var lines []string
	for i := len(entries) - 1; i >= start; i-- {
		entry := entries[i]
		severity := fmt.Sprintf("%d/10", entry.Severity)
		if entry.Severity >= 6 {
			severity = errorStyle.Render(severity)
		}
		lines = append(lines, fmt.Sprintf("%s  %s (%s)",
			helpDescStyle.Render(entry.Date.Format("Jan 2")), entry.Location, severity))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
