package service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"retirestrong/internal/analysis"
)

// HealthcareReport renders a plain-text summary suitable for sharing
// with a doctor or physical therapist.
func (t *Tracker) HealthcareReport(now time.Time) string {
	snap := t.snap
	profile := snap.Profile

	conditions := strings.Join(profile.HealthConditions, ", ")
	if conditions == "" {
		conditions = "None"
	}

	recentCount := 0
	window := time.Duration(ReportWindowDays) * 24 * time.Hour
	for _, w := range snap.Workouts {
		if now.Sub(w.Date) < window {
			recentCount++
		}
	}

	weekly := analysis.ComputeWeeklyStats(snap.Workouts, now)
	streak := analysis.CurrentStreak(snap.Workouts, now)

	var pain strings.Builder
	entries := snap.PainLog
	if len(entries) > ReportPainEntries {
		entries = entries[len(entries)-ReportPainEntries:]
	}
	for i, p := range entries {
		if i > 0 {
			pain.WriteByte('\n')
		}
		fmt.Fprintf(&pain, "- %s: %s (%d/10) - %s",
			p.Date.Format(shortDateLayout), p.Location, p.Severity, p.Notes)
	}

	metrics := "No data"
	if len(snap.BodyMetrics) > 0 {
		latest := snap.BodyMetrics[len(snap.BodyMetrics)-1]
		metrics = fmt.Sprintf("- Weight: %g lbs\n- Waist: %g inches", latest.Weight, latest.Waist)
	}

	return fmt.Sprintf(`
RetireStrong Fitness Report for %s
Generated: %s

PROFILE:
- Age: %d
- Experience: %s
- Health Conditions: %s
- Weekly Goal: %d workouts

RECENT ACTIVITY (Last %d Days):
- Total Workouts: %d
- Average Energy Rating: %.1f/5
- Current Streak: %d days

PAIN LOG (Recent):
%s

BODY METRICS (Latest):
%s
`,
		profile.Name,
		now.Format(shortDateLayout),
		profile.Age,
		profile.ExperienceLevel,
		conditions,
		profile.WeeklyGoal,
		ReportWindowDays,
		recentCount,
		weekly.AvgRating,
		streak,
		pain.String(),
		metrics,
	)
}

// ExportReport writes the healthcare report to path.
func (t *Tracker) ExportReport(path string, now time.Time) error {
	if err := os.WriteFile(path, []byte(t.HealthcareReport(now)), 0o644); err != nil {
		return fmt.Errorf("writing healthcare report: %w", err)
	}
	return nil
}
