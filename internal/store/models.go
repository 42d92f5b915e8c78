package store

import "time"

// Workout types as logged from the workout form.
const (
	TypeResistance  = "Resistance Training"
	TypeCardio      = "Cardio"
	TypeWalking     = "Walking"
	TypeFlexibility = "Flexibility"
	TypeBalance     = "Balance"
	TypeMixed       = "Mixed"
)

// WorkoutTypes lists every valid workout type in display order.
var WorkoutTypes = []string{
	TypeResistance,
	TypeCardio,
	TypeWalking,
	TypeFlexibility,
	TypeBalance,
	TypeMixed,
}

// Experience levels for UserProfile.ExperienceLevel.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// UserProfile holds the single user's settings. It is the only mutable
// record in the snapshot; everything else is append-only.
type UserProfile struct {
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	ExperienceLevel  string    `json:"experienceLevel"`
	HealthConditions []string  `json:"healthConditions"`
	FitnessGoals     []string  `json:"fitnessGoals"`
	WeeklyGoal       int       `json:"weeklyGoal"`
	WorkoutLocation  string    `json:"workoutLocation"`
	StartDate        time.Time `json:"startDate"`
	ReminderTime     string    `json:"reminderTime"` // "HH:MM"
	ReminderEnabled  bool      `json:"reminderEnabled"`
}

// HasCondition reports whether the given health condition tag is set.
func (p UserProfile) HasCondition(name string) bool {
	for _, c := range p.HealthConditions {
		if c == name {
			return true
		}
	}
	return false
}

// WorkoutLog is a single logged workout. Immutable after creation.
type WorkoutLog struct {
	ID       int64     `json:"id"`
	Type     string    `json:"type"`
	Duration int       `json:"duration"` // minutes
	Rating   int       `json:"rating"`   // energy rating, 1-5
	Notes    string    `json:"notes"`
	Date     time.Time `json:"date"`
}

// BodyMetricEntry is a single body measurement. Append-only.
type BodyMetricEntry struct {
	ID     int64     `json:"id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"` // lbs
	Waist  float64   `json:"waist"`  // inches
	Notes  string    `json:"notes"`
}

// PainEntry is a single pain/discomfort report. Append-only.
type PainEntry struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Severity int       `json:"severity"` // 1-10
	Notes    string    `json:"notes"`
}

// Snapshot is the full persisted state. Engines take a snapshot plus
// an explicit "now" and never write back; all mutations go through the
// service layer, which rewrites the whole blob.
type Snapshot struct {
	Profile        UserProfile       `json:"profile"`
	Workouts       []WorkoutLog      `json:"workouts"`
	BodyMetrics    []BodyMetricEntry `json:"bodyMetrics"`
	ProgressPhotos []ProgressPhoto   `json:"progressPhotos"`
	PainLog        []PainEntry       `json:"painLog"`
}

// ProgressPhoto is carried through the blob untouched so that state
// written by other builds survives a save cycle. Photo capture itself
// happens outside the tracker.
type ProgressPhoto struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"date"`
	DataURL string    `json:"dataUrl"`
}

// DefaultProfile returns the profile used when the snapshot is missing
// or has no stored profile.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:            "Friend",
		Age:             65,
		ExperienceLevel: ExperienceBeginner,
		WeeklyGoal:      3,
		WorkoutLocation: "home",
		ReminderTime:    "09:00",
		ReminderEnabled: false,
	}
}

// DefaultSnapshot returns the state used on first run.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{Profile: DefaultProfile()}
}
