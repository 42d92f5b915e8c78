package service

import (
	"strings"
	"testing"
	"time"

	"retirestrong/internal/store"
)

func reportFixture(t *testing.T) (*Tracker, time.Time) {
	t.Helper()

	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)

	profile := tracker.Profile()
	profile.Name = "Margaret"
	profile.Age = 68
	profile.HealthConditions = []string{"Arthritis"}
	profile.WeeklyGoal = 3
	if err := tracker.UpdateProfile(profile); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	for i := 0; i < 4; i++ {
		when := now.AddDate(0, 0, -i)
		if _, err := tracker.LogWorkout(store.TypeWalking, 20, 4, "", when); err != nil {
			t.Fatalf("LogWorkout: %v", err)
		}
	}
	if _, err := tracker.LogPain("lower back", 5, "after gardening", now.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("LogPain: %v", err)
	}
	if _, err := tracker.LogBodyMetric(162, 31.5, "", now.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("LogBodyMetric: %v", err)
	}

	return tracker, now
}

func TestHealthcareReportSections(t *testing.T) {
	tracker, now := reportFixture(t)
	report := tracker.HealthcareReport(now)

	for _, want := range []string{
		"RetireStrong Fitness Report for Margaret",
		"Generated: 6/15/2025",
		"- Age: 68",
		"- Health Conditions: Arthritis",
		"- Weekly Goal: 3 workouts",
		"RECENT ACTIVITY (Last 30 Days):",
		"- Total Workouts: 4",
		"- Average Energy Rating: 4.0/5",
		"PAIN LOG (Recent):",
		"- 6/14/2025: lower back (5/10) - after gardening",
		"BODY METRICS (Latest):",
		"- Weight: 162 lbs",
		"- Waist: 31.5 inches",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestHealthcareReportNoMetrics(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	report := tracker.HealthcareReport(now)

	if !strings.Contains(report, "No data") {
		t.Errorf("report with no metrics should say No data:\n%s", report)
	}
	if !strings.Contains(report, "- Health Conditions: None") {
		t.Errorf("empty conditions should render as None:\n%s", report)
	}
}

func TestHealthcareReportLimitsPainEntries(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	locations := []string{"neck", "shoulder", "wrist", "hip", "knee", "ankle", "foot"}
	for i, loc := range locations {
		when := now.AddDate(0, 0, -len(locations)+i)
		if _, err := tracker.LogPain(loc, 3, "", when); err != nil {
			t.Fatalf("LogPain: %v", err)
		}
	}

	report := tracker.HealthcareReport(now)
	if strings.Contains(report, "neck") || strings.Contains(report, "shoulder") {
		t.Errorf("oldest entries should be dropped:\n%s", report)
	}
	for _, loc := range locations[2:] {
		if !strings.Contains(report, loc) {
			t.Errorf("report missing recent pain entry %q:\n%s", loc, report)
		}
	}
}
