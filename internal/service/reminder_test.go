package service

import (
	"testing"
	"time"

	"retirestrong/internal/store"
)

func reminderTracker(t *testing.T, enabled bool, at string) *Tracker {
	t.Helper()

	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	profile := tracker.Profile()
	profile.ReminderEnabled = enabled
	profile.ReminderTime = at
	if err := tracker.UpdateProfile(profile); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	return tracker
}

func TestCheckReminder(t *testing.T) {
	day := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		enabled  bool
		at       string
		now      time.Time
		lastDays int // days since last workout, -1 for no workouts
		want     bool
	}{
		{"fires at exact minute with no recent workout", true, "09:00", day.Add(9 * time.Hour), -1, true},
		{"fires when last workout was yesterday", true, "09:00", day.Add(9 * time.Hour), 2, true},
		{"silent when disabled", false, "09:00", day.Add(9 * time.Hour), -1, false},
		{"silent a minute early", true, "09:00", day.Add(8*time.Hour + 59*time.Minute), -1, false},
		{"silent a minute late", true, "09:00", day.Add(9*time.Hour + 1*time.Minute), -1, false},
		{"silent after today's workout", true, "09:00", day.Add(9 * time.Hour), 0, false},
		{"silent on unparseable time", true, "whenever", day.Add(9 * time.Hour), -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := reminderTracker(t, tt.enabled, tt.at)
			if tt.lastDays >= 0 {
				when := tt.now.Add(-time.Duration(tt.lastDays) * 24 * time.Hour)
				if _, err := tracker.LogWorkout(store.TypeWalking, 20, 4, "", when); err != nil {
					t.Fatalf("LogWorkout: %v", err)
				}
			}

			note, ok := tracker.CheckReminder(tt.now)
			if ok != tt.want {
				t.Fatalf("CheckReminder fired=%v, want %v", ok, tt.want)
			}
			if ok && (note.Title == "" || note.Body == "") {
				t.Errorf("fired notification is empty: %+v", note)
			}
		})
	}
}

func TestReminderNotificationText(t *testing.T) {
	tracker := reminderTracker(t, true, "07:30")
	now := time.Date(2025, time.June, 15, 7, 30, 0, 0, time.Local)

	note, ok := tracker.CheckReminder(now)
	if !ok {
		t.Fatal("expected reminder to fire")
	}
	if note.Title != "RetireStrong Fitness Reminder" {
		t.Errorf("Title = %q", note.Title)
	}
	if note.Body != "Time for your workout! Even 10 minutes makes a difference." {
		t.Errorf("Body = %q", note.Body)
	}
}
