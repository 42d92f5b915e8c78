package service

import (
	"fmt"
	"time"

	"retirestrong/internal/analysis"
)

// Notification is a reminder ready for display.
type Notification struct {
	Title string
	Body  string
}

const (
	reminderTitle = "RetireStrong Fitness Reminder"
	reminderBody  = "Time for your workout! Even 10 minutes makes a difference."
)

// CheckReminder reports whether a workout reminder is due at now.
// It fires only in the exact minute the profile's reminder time names,
// and only when the user has not worked out today.
func (t *Tracker) CheckReminder(now time.Time) (Notification, bool) {
	profile := t.snap.Profile
	if !profile.ReminderEnabled {
		return Notification{}, false
	}

	hour, minute, err := parseReminderTime(profile.ReminderTime)
	if err != nil {
		return Notification{}, false
	}
	if now.Hour() != hour || now.Minute() != minute {
		return Notification{}, false
	}

	if analysis.DaysSinceLastWorkout(t.snap.Workouts, now) < 1 {
		return Notification{}, false
	}

	return Notification{Title: reminderTitle, Body: reminderBody}, true
}

func parseReminderTime(s string) (int, int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("parsing reminder time %q: %w", s, err)
	}
	return hour, minute, nil
}
