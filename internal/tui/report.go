package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retirestrong/internal/service"
)

// ReportModel shows the shareable healthcare report
type ReportModel struct {
	tracker  *service.Tracker
	viewport viewport.Model
	ready    bool
}

// NewReportModel creates a new report model
func NewReportModel(tracker *service.Tracker) ReportModel {
	return ReportModel{tracker: tracker}
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.tracker.HealthcareReport(time.Now()))

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if m.ready {
				m.viewport.SetContent(m.tracker.HealthcareReport(time.Now()))
			}
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the report screen
func (m ReportModel) View() string {
	if !m.ready {
		// Fall back to unscrolled output until the first resize arrives
		return m.tracker.HealthcareReport(time.Now())
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh  '3' then 'x' to save to a file")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}
