package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// persistedState mirrors the stored blob with optional fields so that
// partial or older blobs still decode.
type persistedState struct {
	Profile        *UserProfile      `json:"profile"`
	Workouts       []WorkoutLog      `json:"workouts"`
	BodyMetrics    []BodyMetricEntry `json:"bodyMetrics"`
	ProgressPhotos []ProgressPhoto   `json:"progressPhotos"`
	PainLog        []PainEntry       `json:"painLog"`
}

// LoadSnapshot reads the stored state blob. A missing row, malformed
// JSON, or missing fields all fall back to defaults; startup never
// fails on bad stored state.
func (db *DB) LoadSnapshot() *Snapshot {
	var data string
	err := db.QueryRow("SELECT data FROM snapshot WHERE id = 1").Scan(&data)
	if err != nil {
		return DefaultSnapshot()
	}

	var state persistedState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return DefaultSnapshot()
	}

	snap := &Snapshot{
		Workouts:       state.Workouts,
		BodyMetrics:    state.BodyMetrics,
		ProgressPhotos: state.ProgressPhotos,
		PainLog:        state.PainLog,
	}

	if state.Profile != nil {
		snap.Profile = *state.Profile
	} else {
		snap.Profile = DefaultProfile()
	}
	fillProfileDefaults(&snap.Profile)

	return snap
}

// SaveSnapshot rewrites the whole state blob.
func (db *DB) SaveSnapshot(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO snapshot (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, string(data))
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// HasSnapshot reports whether a state blob has been written yet.
func (db *DB) HasSnapshot() (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM snapshot WHERE id = 1").Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// fillProfileDefaults backfills fields a partial blob may be missing.
func fillProfileDefaults(p *UserProfile) {
	defaults := DefaultProfile()
	if p.ExperienceLevel == "" {
		p.ExperienceLevel = defaults.ExperienceLevel
	}
	if p.WeeklyGoal < 1 {
		p.WeeklyGoal = defaults.WeeklyGoal
	}
	if p.WorkoutLocation == "" {
		p.WorkoutLocation = defaults.WorkoutLocation
	}
	if p.ReminderTime == "" {
		p.ReminderTime = defaults.ReminderTime
	}
}
