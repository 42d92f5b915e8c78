package analysis

import (
	"time"

	"retirestrong/internal/store"
)

// startOfDay truncates t to midnight in its own location. Every
// calendar-day comparison in this package goes through here so the
// engines can't drift apart on timezone handling.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayGap returns the number of whole calendar days from earlier's day
// to later's day.
func dayGap(later, earlier time.Time) int {
	return int(startOfDay(later).Sub(startOfDay(earlier)).Hours() / 24)
}

// wholeDaysSince returns the number of whole 24h periods between then
// and now. Unlike dayGap this measures elapsed time, not calendar
// days: a workout 23 hours ago is 0 days back even across midnight.
func wholeDaysSince(now, then time.Time) int {
	return int(now.Sub(then).Hours() / 24)
}

// DaysSinceLastWorkout returns the whole 24h periods since the most
// recently logged workout, or a large sentinel when the log is empty.
func DaysSinceLastWorkout(workouts []store.WorkoutLog, now time.Time) int {
	if len(workouts) == 0 {
		return noWorkoutSentinelDays
	}
	return wholeDaysSince(now, workouts[len(workouts)-1].Date)
}
