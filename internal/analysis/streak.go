package analysis

import (
	"sort"
	"time"

	"retirestrong/internal/store"
)

// CurrentStreak returns the number of consecutive active days ending
// at or before now. A single missed day is forgiven (the anchor moves
// without incrementing); a gap of more than two days ends the streak.
//
// Two workouts logged on the same calendar day each count, so a
// multi-log day inflates the streak. That matches the behavior users
// already see; see DESIGN.md before changing it.
func CurrentStreak(workouts []store.WorkoutLog, now time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	sorted := make([]store.WorkoutLog, len(workouts))
	copy(sorted, workouts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	streak := 0
	anchor := startOfDay(now)

	for _, w := range sorted {
		day := startOfDay(w.Date)
		gap := dayGap(anchor, day)

		switch {
		case gap <= 1:
			streak++
			anchor = day
		case gap == 2:
			// Grace day: streak survives but does not grow.
			anchor = day
		default:
			return streak
		}
	}

	return streak
}
