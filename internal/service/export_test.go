package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"retirestrong/internal/store"
)

func TestWorkoutsCSV(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	june3 := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.Local)
	if _, err := tracker.LogWorkout(store.TypeWalking, 25, 4, "park loop, brisk pace", june3); err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	got := tracker.WorkoutsCSV()
	want := "Date,Type,Duration,Rating,Notes\n" +
		"6/3/2025,Walking,25,4,\"park loop, brisk pace\"\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWorkoutsCSVEscapesQuotes(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	june3 := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.Local)
	if _, err := tracker.LogWorkout(store.TypeCardio, 15, 3, `used "light" weights`, june3); err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}

	got := tracker.WorkoutsCSV()
	if !strings.Contains(got, `"used ""light"" weights"`) {
		t.Errorf("quotes not escaped: %s", got)
	}
}

func TestWorkoutsCSVEmptyLog(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	if got := tracker.WorkoutsCSV(); got != "Date,Type,Duration,Rating,Notes\n" {
		t.Errorf("empty log should export header only, got %q", got)
	}
}

func TestExportCSVWritesFile(t *testing.T) {
	db := store.NewTestDB(t)
	tracker := NewTracker(db)

	path := filepath.Join(t.TempDir(), "workouts.csv")
	if err := tracker.ExportCSV(path); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "Date,Type,Duration,Rating,Notes") {
		t.Errorf("unexpected file contents: %q", data)
	}
}
