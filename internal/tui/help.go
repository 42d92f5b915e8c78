package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Overview"},
		{"2", "Log a workout"},
		{"3", "Progress and exports"},
		{"4", "Health tracking"},
		{"5", "Healthcare report"},
		{"6", "Settings and profile"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	formSection := m.renderSection("Forms", []keyHelp{
		{"tab / shift+tab", "Move between fields"},
		{"left / right", "Change workout type"},
		{"enter", "Save"},
		{"esc", "Cancel / stop editing"},
	})
	sections = append(sections, formSection)

	progressSection := m.renderSection("Progress Screen", []keyHelp{
		{"c", "Export workout history as CSV"},
		{"x", "Export healthcare report"},
		{"r", "Refresh charts"},
	})
	sections = append(sections, progressSection)

	healthSection := m.renderSection("Health Screen", []keyHelp{
		{"w", "Log a body measurement"},
		{"p", "Log a pain entry"},
	})
	sections = append(sections, healthSection)

	settingsSection := m.renderSection("Settings Screen", []keyHelp{
		{"space", "Toggle the highlighted condition"},
		{"left / right", "Change experience, reminders"},
		{"enter", "Save profile"},
	})
	sections = append(sections, settingsSection)

	ratingSection := m.renderRatingHelp()
	sections = append(sections, ratingSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(successColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderRatingHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(successColor).Render("Energy Rating"))
	lines = append(lines, "")

	ratings := []struct {
		value string
		desc  string
	}{
		{"5", "Felt great, could have done more"},
		{"4", "Solid effort, good energy"},
		{"3", "Got through it"},
		{"2", "Low energy, pushed hard to finish"},
		{"1", "Exhausted - consider extra rest"},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)
	for _, r := range ratings {
		lines = append(lines, "  "+helpKeyStyle.Render(r.value)+"  "+mutedStyle.Render(r.desc))
	}

	return strings.Join(lines, "\n")
}
