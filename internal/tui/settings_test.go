package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"retirestrong/internal/service"
	"retirestrong/internal/store"
)

func pressKey(t *testing.T, m SettingsModel, key tea.KeyMsg) SettingsModel {
	t.Helper()
	model, _ := m.Update(key)
	return model.(SettingsModel)
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func tabKey() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }
func spaceKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeySpace} }
func rightKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRight} }

func TestSettingsSubmitPersistsProfile(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := service.NewTracker(db)

	m := NewSettingsModel(tracker)
	m.name.SetValue("Margaret")
	m.age.SetValue("68")
	m.goal.SetValue("5")
	m.reminderTime.SetValue("07:30")
	m.reminderOn = true
	m.selected[0] = true // Arthritis
	m.selected[5] = true // Balance Issues

	m = pressKey(t, m, enterKey())
	if m.statusE {
		t.Fatalf("submit failed: %s", m.status)
	}

	// Reload from disk: the edit must have been persisted, not just
	// held in memory.
	reloaded := service.NewTracker(db)
	profile := reloaded.Profile()

	if profile.Name != "Margaret" {
		t.Errorf("Name = %q, want %q", profile.Name, "Margaret")
	}
	if profile.Age != 68 {
		t.Errorf("Age = %d, want 68", profile.Age)
	}
	if profile.WeeklyGoal != 5 {
		t.Errorf("WeeklyGoal = %d, want 5", profile.WeeklyGoal)
	}
	if !profile.ReminderEnabled {
		t.Error("ReminderEnabled = false, want true")
	}
	if profile.ReminderTime != "07:30" {
		t.Errorf("ReminderTime = %q, want %q", profile.ReminderTime, "07:30")
	}
	if !profile.HasCondition("Arthritis") || !profile.HasCondition("Balance Issues") {
		t.Errorf("HealthConditions = %v, want Arthritis and Balance Issues", profile.HealthConditions)
	}
}

func TestSettingsEnablesReminder(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := service.NewTracker(db)

	if _, ok := tracker.CheckReminder(time.Date(2025, time.June, 15, 9, 0, 0, 0, time.Local)); ok {
		t.Fatal("reminder fired before being enabled")
	}

	m := NewSettingsModel(tracker)
	m.reminderOn = true
	m.reminderTime.SetValue("09:00")
	m = pressKey(t, m, enterKey())
	if m.statusE {
		t.Fatalf("submit failed: %s", m.status)
	}

	note, ok := tracker.CheckReminder(time.Date(2025, time.June, 15, 9, 0, 0, 0, time.Local))
	if !ok {
		t.Fatal("reminder did not fire after enabling via settings")
	}
	if note.Title == "" || note.Body == "" {
		t.Errorf("notification is empty: %+v", note)
	}
}

func TestSettingsValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*SettingsModel)
	}{
		{
			name:  "empty name",
			setup: func(m *SettingsModel) { m.name.SetValue("") },
		},
		{
			name:  "age out of range",
			setup: func(m *SettingsModel) { m.age.SetValue("200") },
		},
		{
			name:  "goal out of range",
			setup: func(m *SettingsModel) { m.goal.SetValue("9") },
		},
		{
			name: "bad reminder time with reminders on",
			setup: func(m *SettingsModel) {
				m.reminderOn = true
				m.reminderTime.SetValue("25:99")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := store.NewTestDB(t)
			tracker := service.NewTracker(db)

			m := NewSettingsModel(tracker)
			tt.setup(&m)
			m = pressKey(t, m, enterKey())

			if !m.statusE {
				t.Errorf("invalid input accepted: %+v", tracker.Profile())
			}
			if got := tracker.Profile(); got.Name != store.DefaultProfile().Name {
				t.Errorf("profile mutated on failed validation: %+v", got)
			}
		})
	}
}

func TestSettingsConditionToggle(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := service.NewTracker(db)

	m := NewSettingsModel(tracker)
	for i := 0; i < setConditions; i++ {
		m = pressKey(t, m, tabKey())
	}
	if m.focus != setConditions {
		t.Fatalf("focus = %d, want %d", m.focus, setConditions)
	}

	// Highlight the second condition and toggle it on, then off.
	m = pressKey(t, m, rightKey())
	m = pressKey(t, m, spaceKey())
	if !m.selected[1] {
		t.Fatal("condition not toggled on")
	}
	m = pressKey(t, m, spaceKey())
	if m.selected[1] {
		t.Fatal("condition not toggled off")
	}
}

func TestSettingsReminderToggle(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := service.NewTracker(db)

	m := NewSettingsModel(tracker)
	for i := 0; i < setReminder; i++ {
		m = pressKey(t, m, tabKey())
	}

	if m.reminderOn {
		t.Fatal("reminders unexpectedly start enabled")
	}
	m = pressKey(t, m, rightKey())
	if !m.reminderOn {
		t.Error("right arrow did not enable reminders")
	}
	m = pressKey(t, m, spaceKey())
	if m.reminderOn {
		t.Error("space did not toggle reminders back off")
	}
}
