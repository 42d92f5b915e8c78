package analysis

import (
	"fmt"
	"time"

	"retirestrong/internal/store"
)

// Priority signals how the coach message should be styled, from calm
// info up to a warning. It is not a log level.
type Priority string

const (
	PriorityInfo    Priority = "info"
	PriorityWarning Priority = "warning"
	PrioritySuccess Priority = "success"
)

// Recommendation is the coach's single message for the current state.
type Recommendation struct {
	Text     string
	Priority Priority
}

// Health condition tags the coach branches on.
const (
	ConditionArthritis     = "Arthritis"
	ConditionBalanceIssues = "Balance Issues"
)

// Coach thresholds.
const (
	recentWorkoutCount  = 10
	recentPainDays      = 3
	recentPainMinLevel  = 6
	overtrainingPerWeek = 6
	lowEnergyThreshold  = 3.5
	goodEnergyThreshold = 4.0
	momentumTrend       = 0.5
	inactiveDays        = 4
	varietyMinTypes     = 3

	// Reported when there is no workout history at all.
	noWorkoutSentinelDays = 999
)

// coachContext carries the derived inputs every rule sees.
type coachContext struct {
	profile              store.UserProfile
	avgRating            float64
	recentTrend          float64
	workoutsThisWeek     int
	hasVariety           bool
	daysSinceLastWorkout int
	recentPainCount      int
}

// coachRule pairs a guard with a message builder. Rules are evaluated
// top to bottom and the first matching rule wins; there is no scoring
// and no fallthrough.
type coachRule struct {
	when  func(coachContext) bool
	build func(coachContext) Recommendation
}

var coachRules = []coachRule{
	{
		when: func(c coachContext) bool { return c.recentPainCount > 0 },
		build: func(c coachContext) Recommendation {
			return Recommendation{
				Text: "You've logged significant pain recently. Consider: " +
					"1) Taking an extra rest day, 2) Consulting your healthcare provider, " +
					"3) Focusing on gentle stretching. Your health and safety come first.",
				Priority: PriorityWarning,
			}
		},
	},
	{
		when: func(c coachContext) bool {
			return c.workoutsThisWeek >= overtrainingPerWeek && c.avgRating < lowEnergyThreshold
		},
		build: func(c coachContext) Recommendation {
			return Recommendation{
				Text: fmt.Sprintf("You've been very active with %d workouts this week, but energy is low. "+
					"Recovery is when muscles grow stronger. Take a rest day or do gentle stretching.",
					c.workoutsThisWeek),
				Priority: PriorityWarning,
			}
		},
	},
	{
		when: func(c coachContext) bool {
			return c.recentTrend > momentumTrend && c.avgRating >= goodEnergyThreshold
		},
		build: func(c coachContext) Recommendation {
			varietyNote := "Try adding variety for balanced fitness."
			if c.hasVariety {
				varietyNote = "Great workout variety!"
			}
			return Recommendation{
				Text: fmt.Sprintf("Excellent! Energy trending up (%.1f/5). You're building momentum. %s",
					c.avgRating, varietyNote),
				Priority: PrioritySuccess,
			}
		},
	},
	{
		when: func(c coachContext) bool { return c.daysSinceLastWorkout >= inactiveDays },
		build: func(c coachContext) Recommendation {
			return Recommendation{
				Text: fmt.Sprintf("It's been %d days since your last workout. Even 15 minutes helps "+
					"maintain progress. Start gentle - walking or stretching is perfect.",
					c.daysSinceLastWorkout),
				Priority: PriorityWarning,
			}
		},
	},
	{
		when: func(c coachContext) bool {
			return c.workoutsThisWeek >= c.profile.WeeklyGoal && c.avgRating >= lowEnergyThreshold
		},
		build: func(c coachContext) Recommendation {
			conditionNote := "Keep this sustainable pace!"
			if c.profile.HasCondition(ConditionArthritis) {
				conditionNote = "Great job managing arthritis through movement!"
			}
			return Recommendation{
				Text: fmt.Sprintf("Crushing your %d workout goal! Avg rating: %.1f/5. %s",
					c.profile.WeeklyGoal, c.avgRating, conditionNote),
				Priority: PrioritySuccess,
			}
		},
	},
	{
		when: func(c coachContext) bool { return true },
		build: func(c coachContext) Recommendation {
			conditionNote := "Listen to your body and adjust as needed."
			if c.profile.HasCondition(ConditionBalanceIssues) {
				conditionNote = "Keep prioritizing balance exercises."
			}
			return Recommendation{
				Text:     fmt.Sprintf("Steady progress! Avg rating: %.1f/5. %s", c.avgRating, conditionNote),
				Priority: PriorityInfo,
			}
		},
	},
}

// Recommend produces the single prioritized coach message for the
// given history and profile. Pure: the only clock it sees is now.
func Recommend(workouts []store.WorkoutLog, painLog []store.PainEntry, profile store.UserProfile, now time.Time) Recommendation {
	ctx := buildCoachContext(workouts, painLog, profile, now)
	for _, rule := range coachRules {
		if rule.when(ctx) {
			return rule.build(ctx)
		}
	}
	// Unreachable: the last rule always matches.
	return Recommendation{Priority: PriorityInfo}
}

func buildCoachContext(workouts []store.WorkoutLog, painLog []store.PainEntry, profile store.UserProfile, now time.Time) coachContext {
	ctx := coachContext{
		profile:              profile,
		daysSinceLastWorkout: DaysSinceLastWorkout(workouts, now),
	}

	// Last ten workouts, most recent first. The log is insertion
	// ordered and chronological.
	recent := lastN(workouts, recentWorkoutCount)

	if len(recent) > 0 {
		sum := 0
		for _, w := range recent {
			sum += w.Rating
		}
		ctx.avgRating = float64(sum) / float64(len(recent))
	}

	// Trend compares the two newest ratings against the two oldest of
	// the recent window.
	if len(recent) >= 3 {
		newest := float64(recent[0].Rating+recent[1].Rating) / 2
		oldest := float64(recent[len(recent)-2].Rating+recent[len(recent)-1].Rating) / 2
		ctx.recentTrend = newest - oldest
	}

	weekCutoff := now.AddDate(0, 0, -WeeklyWindowDays)
	for _, w := range workouts {
		if !w.Date.Before(weekCutoff) {
			ctx.workoutsThisWeek++
		}
	}

	types := make(map[string]struct{})
	for _, w := range recent {
		types[w.Type] = struct{}{}
	}
	ctx.hasVariety = len(types) >= varietyMinTypes

	painCutoff := now.AddDate(0, 0, -recentPainDays)
	for _, p := range painLog {
		if !p.Date.Before(painCutoff) && p.Severity >= recentPainMinLevel {
			ctx.recentPainCount++
		}
	}

	return ctx
}

// lastN returns the final n entries in reverse (newest first).
func lastN(workouts []store.WorkoutLog, n int) []store.WorkoutLog {
	if len(workouts) < n {
		n = len(workouts)
	}
	out := make([]store.WorkoutLog, 0, n)
	for i := len(workouts) - 1; i >= len(workouts)-n; i-- {
		out = append(out, workouts[i])
	}
	return out
}
