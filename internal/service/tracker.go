package service

import (
	"fmt"
	"time"

	"retirestrong/internal/store"
)

// Tracker owns the in-memory snapshot and its persistence. All
// mutations append to the snapshot and rewrite the stored blob in
// full; there is a single in-process writer, so no locking.
type Tracker struct {
	db   *store.DB
	snap *store.Snapshot
}

// NewTracker loads the stored snapshot (or defaults) and wraps it.
func NewTracker(db *store.DB) *Tracker {
	return &Tracker{
		db:   db,
		snap: db.LoadSnapshot(),
	}
}

// Snapshot returns the current state. Callers treat it as read-only.
func (t *Tracker) Snapshot() *store.Snapshot {
	return t.snap
}

// Profile returns the current user profile.
func (t *Tracker) Profile() store.UserProfile {
	return t.snap.Profile
}

// LogWorkout appends a workout stamped at now and persists.
func (t *Tracker) LogWorkout(workoutType string, duration, rating int, notes string, now time.Time) (store.WorkoutLog, error) {
	w := store.WorkoutLog{
		ID:       nextWorkoutID(t.snap.Workouts),
		Type:     workoutType,
		Duration: duration,
		Rating:   rating,
		Notes:    notes,
		Date:     now,
	}
	t.snap.Workouts = append(t.snap.Workouts, w)

	if err := t.persist(); err != nil {
		return store.WorkoutLog{}, err
	}
	return w, nil
}

// LogBodyMetric appends a body measurement stamped at now and persists.
func (t *Tracker) LogBodyMetric(weight, waist float64, notes string, now time.Time) (store.BodyMetricEntry, error) {
	m := store.BodyMetricEntry{
		ID:     nextMetricID(t.snap.BodyMetrics),
		Date:   now,
		Weight: weight,
		Waist:  waist,
		Notes:  notes,
	}
	t.snap.BodyMetrics = append(t.snap.BodyMetrics, m)

	if err := t.persist(); err != nil {
		return store.BodyMetricEntry{}, err
	}
	return m, nil
}

// LogPain appends a pain entry stamped at now and persists.
func (t *Tracker) LogPain(location string, severity int, notes string, now time.Time) (store.PainEntry, error) {
	p := store.PainEntry{
		ID:       nextPainID(t.snap.PainLog),
		Date:     now,
		Location: location,
		Severity: severity,
		Notes:    notes,
	}
	t.snap.PainLog = append(t.snap.PainLog, p)

	if err := t.persist(); err != nil {
		return store.PainEntry{}, err
	}
	return p, nil
}

// UpdateProfile replaces the profile and persists.
func (t *Tracker) UpdateProfile(p store.UserProfile) error {
	t.snap.Profile = p
	return t.persist()
}

func (t *Tracker) persist() error {
	if err := t.db.SaveSnapshot(t.snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func nextWorkoutID(workouts []store.WorkoutLog) int64 {
	var max int64
	for _, w := range workouts {
		if w.ID > max {
			max = w.ID
		}
	}
	return max + 1
}

func nextMetricID(metrics []store.BodyMetricEntry) int64 {
	var max int64
	for _, m := range metrics {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

func nextPainID(entries []store.PainEntry) int64 {
	var max int64
	for _, p := range entries {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
