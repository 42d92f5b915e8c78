package service

import (
	"time"

	"retirestrong/internal/analysis"
)

// DashboardData bundles everything the overview screen renders.
type DashboardData struct {
	Recommendation analysis.Recommendation
	Weekly         analysis.WeeklyStats
	Streak         int
	TotalWorkouts  int
	TotalMinutes   int
	Achievements   []analysis.Achievement
	Chart          []analysis.ChartPoint
	Metrics        []analysis.MetricPoint
}

// Dashboard runs the analysis engines over the current snapshot.
func (t *Tracker) Dashboard(now time.Time) DashboardData {
	snap := t.snap

	streak := analysis.CurrentStreak(snap.Workouts, now)
	totalMinutes := analysis.TotalMinutes(snap.Workouts)

	return DashboardData{
		Recommendation: analysis.Recommend(snap.Workouts, snap.PainLog, snap.Profile, now),
		Weekly:         analysis.ComputeWeeklyStats(snap.Workouts, now),
		Streak:         streak,
		TotalWorkouts:  len(snap.Workouts),
		TotalMinutes:   totalMinutes,
		Achievements:   analysis.Achievements(len(snap.Workouts), totalMinutes, streak),
		Chart:          analysis.ChartSeries(snap.Workouts, now),
		Metrics:        analysis.BodyMetricSeries(snap.BodyMetrics),
	}
}
