package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retirestrong/internal/config"
	"retirestrong/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenLogWorkout
	ScreenProgress
	ScreenHealth
	ScreenReport
	ScreenSettings
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	overview OverviewModel
	logForm  LogWorkoutModel
	progress ProgressModel
	health   HealthModel
	report   ReportModel
	settings SettingsModel
	help     HelpModel

	// Services
	tracker *service.Tracker
	cfg     *config.Config
	units   Units

	// Window dimensions
	width  int
	height int

	// Reminder banner, cleared on any keypress
	reminder string
}

// NewApp creates a new App with all dependencies
func NewApp(tracker *service.Tracker, cfg *config.Config) *App {
	units := NewUnits(cfg.Display)
	return &App{
		screen:   ScreenOverview,
		tracker:  tracker,
		cfg:      cfg,
		units:    units,
		overview: NewOverviewModel(tracker),
		logForm:  NewLogWorkoutModel(tracker),
		progress: NewProgressModel(tracker, cfg),
		health:   NewHealthModel(tracker, units),
		report:   NewReportModel(tracker),
		settings: NewSettingsModel(tracker),
		help:     NewHelpModel(),
	}
}

// reminderTickMsg fires once a minute to check the workout reminder.
type reminderTickMsg time.Time

func reminderTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.overview.Init(), reminderTick())
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.reminder = ""

		// Global keybindings, unless a form is capturing input
		if !a.capturingInput() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenOverview
				a.overview = NewOverviewModel(a.tracker)
				return a, a.overview.Init()
			case "2":
				a.screen = ScreenLogWorkout
				a.logForm = NewLogWorkoutModel(a.tracker)
				return a, a.logForm.Init()
			case "3":
				a.screen = ScreenProgress
				a.progress = NewProgressModel(a.tracker, a.cfg)
				return a, a.progress.Init()
			case "4":
				a.screen = ScreenHealth
				a.health = NewHealthModel(a.tracker, a.units)
				return a, a.health.Init()
			case "5":
				a.screen = ScreenReport
				a.report = NewReportModel(a.tracker)
				return a, a.report.Init()
			case "6":
				a.screen = ScreenSettings
				a.settings = NewSettingsModel(a.tracker)
				return a, a.settings.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case reminderTickMsg:
		if note, ok := a.tracker.CheckReminder(time.Time(msg)); ok {
			a.reminder = note.Title + " - " + note.Body
		}
		return a, reminderTick()

	case WorkoutLoggedMsg:
		// Jump back to the overview so the new numbers show
		a.screen = ScreenOverview
		a.overview = NewOverviewModel(a.tracker)
		return a, a.overview.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenOverview:
		var m tea.Model
		m, cmd = a.overview.Update(msg)
		a.overview = m.(OverviewModel)
	case ScreenLogWorkout:
		var m tea.Model
		m, cmd = a.logForm.Update(msg)
		a.logForm = m.(LogWorkoutModel)
	case ScreenProgress:
		var m tea.Model
		m, cmd = a.progress.Update(msg)
		a.progress = m.(ProgressModel)
	case ScreenHealth:
		var m tea.Model
		m, cmd = a.health.Update(msg)
		a.health = m.(HealthModel)
	case ScreenReport:
		var m tea.Model
		m, cmd = a.report.Update(msg)
		a.report = m.(ReportModel)
	case ScreenSettings:
		var m tea.Model
		m, cmd = a.settings.Update(msg)
		a.settings = m.(SettingsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// capturingInput reports whether the active screen owns the keyboard.
func (a *App) capturingInput() bool {
	switch a.screen {
	case ScreenLogWorkout:
		return a.logForm.capturing()
	case ScreenHealth:
		return a.health.capturing()
	case ScreenSettings:
		return a.settings.capturing()
	}
	return false
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenOverview:
		content = a.overview.View()
	case ScreenLogWorkout:
		content = a.logForm.View()
	case ScreenProgress:
		content = a.progress.View()
	case ScreenHealth:
		content = a.health.View()
	case ScreenReport:
		content = a.report.View()
	case ScreenSettings:
		content = a.settings.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("RetireStrong Fitness")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Overview", ScreenOverview},
		{"2", "Log Workout", ScreenLogWorkout},
		{"3", "Progress", ScreenProgress},
		{"4", "Health", ScreenHealth},
		{"5", "Report", ScreenReport},
		{"6", "Settings", ScreenSettings},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.reminder != "" {
		return reminderStyle.Render(a.reminder)
	}
	return ""
}

// WorkoutLoggedMsg is sent after a workout is saved
type WorkoutLoggedMsg struct{}
