package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retirestrong/internal/service"
)

// OverviewModel is the overview screen model
type OverviewModel struct {
	tracker *service.Tracker
	data    service.DashboardData
}

// NewOverviewModel creates a new overview model
func NewOverviewModel(tracker *service.Tracker) OverviewModel {
	return OverviewModel{
		tracker: tracker,
		data:    tracker.Dashboard(time.Now()),
	}
}

// Init initializes the overview
func (m OverviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.data = m.tracker.Dashboard(time.Now())
		}
	}
	return m, nil
}

// View renders the overview
func (m OverviewModel) View() string {
	var sections []string

	sections = append(sections, m.renderCoachCard())

	statsRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderWeekCard(), "  ", m.renderTotalsCard())
	sections = append(sections, statsRow)

	if len(m.data.Achievements) > 0 {
		sections = append(sections, m.renderAchievements())
	}

	help := statusStyle.Render("Press 'r' to refresh, '2' to log a workout")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OverviewModel) renderCoachCard() string {
	title := cardTitleStyle.Render("Your Coach Says")
	body := lipgloss.NewStyle().Width(68).Render(m.data.Recommendation.Text)
	return coachStyle(m.data.Recommendation.Priority).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m OverviewModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	avg := "-"
	if m.data.Weekly.Count > 0 {
		avg = fmt.Sprintf("%.1f/5", m.data.Weekly.AvgRating)
	}

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d / %d goal", m.data.Weekly.Count, m.tracker.Profile().WeeklyGoal)),
		RenderMetric("Minutes", fmt.Sprintf("%d", m.data.Weekly.Minutes)),
		RenderMetric("Avg Energy", avg),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("All Time")

	lines := []string{
		RenderMetric("Streak", fmt.Sprintf("%d days", m.data.Streak)),
		RenderMetric("Workouts", fmt.Sprintf("%d", m.data.TotalWorkouts)),
		RenderMetric("Minutes", fmt.Sprintf("%d", m.data.TotalMinutes)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(32).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderAchievements() string {
	title := cardTitleStyle.Render("Achievements")

	var lines []string
	for _, a := range m.data.Achievements {
		lines = append(lines, fmt.Sprintf("%s  %s - %s",
			a.Icon,
			metricValueStyle.Render(a.Name),
			helpDescStyle.Render(a.Desc)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
