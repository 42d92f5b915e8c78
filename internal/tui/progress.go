package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"retirestrong/internal/config"
	"retirestrong/internal/service"
)

// ProgressModel is the progress charts and export screen
type ProgressModel struct {
	tracker *service.Tracker
	cfg     *config.Config
	data    service.DashboardData
	status  string
	statusE bool
}

// NewProgressModel creates a new progress model
func NewProgressModel(tracker *service.Tracker, cfg *config.Config) ProgressModel {
	return ProgressModel{
		tracker: tracker,
		cfg:     cfg,
		data:    tracker.Dashboard(time.Now()),
	}
}

// Init initializes the progress screen
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.data = m.tracker.Dashboard(time.Now())
			m.status = ""
		case "c":
			path := m.cfg.Export.CSVPath
			if err := m.tracker.ExportCSV(path); err != nil {
				m.status, m.statusE = fmt.Sprintf("CSV export failed: %v", err), true
			} else {
				m.status, m.statusE = "Workout history saved to "+path, false
			}
		case "x":
			path := m.cfg.Export.ReportPath
			if err := m.tracker.ExportReport(path, time.Now()); err != nil {
				m.status, m.statusE = fmt.Sprintf("Report export failed: %v", err), true
			} else {
				m.status, m.statusE = "Healthcare report saved to "+path, false
			}
		}
	}
	return m, nil
}

// View renders the progress screen
func (m ProgressModel) View() string {
	var sections []string

	sections = append(sections, m.renderDurationChart())
	sections = append(sections, m.renderEnergyChart())

	if m.status != "" {
		style := successStyle
		if m.statusE {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}

	help := statusStyle.Render("Press 'c' to export CSV, 'x' for healthcare report, 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProgressModel) renderDurationChart() string {
	title := cardTitleStyle.Render("Workout Minutes - Last 14 Days Logged")

	if len(m.data.Chart) < 2 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "Start logging workouts to see progress!"))
	}

	values := make([]float64, len(m.data.Chart))
	for i, p := range m.data.Chart {
		values[i] = float64(p.Duration)
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	span := m.data.Chart[0].DateLabel + " - " + m.data.Chart[len(m.data.Chart)-1].DateLabel
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, graph, statusStyle.Render(span)))
}

func (m ProgressModel) renderEnergyChart() string {
	title := cardTitleStyle.Render("Energy Rating")

	if len(m.data.Chart) < 2 {
		return ""
	}

	values := make([]float64, len(m.data.Chart))
	for i, p := range m.data.Chart {
		values[i] = p.Rating
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(5),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}
