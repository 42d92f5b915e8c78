package analysis

import (
	"strings"
	"testing"
	"time"

	"retirestrong/internal/store"
)

func TestRecommendPainPreemptsEverything(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	// Excellent recent history that would otherwise hit the momentum rule.
	workouts := []store.WorkoutLog{
		{Type: store.TypeWalking, Rating: 3, Date: now.AddDate(0, 0, -5)},
		{Type: store.TypeCardio, Rating: 4, Date: now.AddDate(0, 0, -3)},
		{Type: store.TypeBalance, Rating: 5, Date: now.AddDate(0, 0, -1)},
		{Type: store.TypeMixed, Rating: 5, Date: now},
	}
	painLog := []store.PainEntry{
		{Location: "Knee", Severity: 7, Date: now.AddDate(0, 0, -1)},
	}

	rec := Recommend(workouts, painLog, store.DefaultProfile(), now)
	if rec.Priority != PriorityWarning {
		t.Errorf("Priority = %q, want %q", rec.Priority, PriorityWarning)
	}
	if !strings.Contains(rec.Text, "pain") {
		t.Errorf("Text = %q, want a pain warning", rec.Text)
	}
}

func TestRecommendPainWindowAndSeverity(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	profile := store.DefaultProfile()

	tests := []struct {
		name     string
		pain     store.PainEntry
		wantPain bool
	}{
		{
			name:     "severe and recent",
			pain:     store.PainEntry{Severity: 6, Date: now.AddDate(0, 0, -2)},
			wantPain: true,
		},
		{
			name:     "severe but four days old",
			pain:     store.PainEntry{Severity: 9, Date: now.AddDate(0, 0, -4)},
			wantPain: false,
		},
		{
			name:     "recent but mild",
			pain:     store.PainEntry{Severity: 5, Date: now.AddDate(0, 0, -1)},
			wantPain: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(nil, []store.PainEntry{tt.pain}, profile, now)
			gotPain := strings.Contains(rec.Text, "pain")
			if gotPain != tt.wantPain {
				t.Errorf("pain rule fired = %v, want %v (text %q)", gotPain, tt.wantPain, rec.Text)
			}
		})
	}
}

func TestRecommendOvertraining(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	// Six low-energy workouts inside the trailing week.
	var workouts []store.WorkoutLog
	for i := 0; i < 6; i++ {
		workouts = append(workouts, store.WorkoutLog{
			Type:   store.TypeCardio,
			Rating: 3,
			Date:   now.AddDate(0, 0, -i),
		})
	}

	rec := Recommend(workouts, nil, store.DefaultProfile(), now)
	if rec.Priority != PriorityWarning {
		t.Errorf("Priority = %q, want %q", rec.Priority, PriorityWarning)
	}
	if !strings.Contains(rec.Text, "6 workouts") {
		t.Errorf("Text = %q, want the weekly count included", rec.Text)
	}
}

func TestRecommendMomentum(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	// Chronological ratings climbing from 3 to 5: newest pair averages
	// 5, oldest pair 3.5, trend +1.5 with overall average 4.5.
	buildWorkouts := func(types []string) []store.WorkoutLog {
		ratings := []int{3, 4, 5, 5, 5, 5}
		var workouts []store.WorkoutLog
		for i, r := range ratings {
			workouts = append(workouts, store.WorkoutLog{
				Type:   types[i%len(types)],
				Rating: r,
				Date:   now.AddDate(0, 0, -(len(ratings) - 1 - i)),
			})
		}
		return workouts
	}

	t.Run("without variety", func(t *testing.T) {
		rec := Recommend(buildWorkouts([]string{store.TypeWalking}), nil, store.DefaultProfile(), now)
		if rec.Priority != PrioritySuccess {
			t.Fatalf("Priority = %q, want %q", rec.Priority, PrioritySuccess)
		}
		if !strings.Contains(rec.Text, "Try adding variety") {
			t.Errorf("Text = %q, want the variety suggestion", rec.Text)
		}
		if !strings.Contains(rec.Text, "4.5/5") {
			t.Errorf("Text = %q, want the average rating included", rec.Text)
		}
	})

	t.Run("with variety", func(t *testing.T) {
		types := []string{store.TypeWalking, store.TypeCardio, store.TypeBalance}
		rec := Recommend(buildWorkouts(types), nil, store.DefaultProfile(), now)
		if rec.Priority != PrioritySuccess {
			t.Fatalf("Priority = %q, want %q", rec.Priority, PrioritySuccess)
		}
		if !strings.Contains(rec.Text, "Great workout variety") {
			t.Errorf("Text = %q, want the variety praise", rec.Text)
		}
	})
}

func TestRecommendInactivity(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	t.Run("five quiet days", func(t *testing.T) {
		workouts := []store.WorkoutLog{
			{Type: store.TypeWalking, Rating: 4, Date: now.AddDate(0, 0, -5)},
		}
		rec := Recommend(workouts, nil, store.DefaultProfile(), now)
		if rec.Priority != PriorityWarning {
			t.Errorf("Priority = %q, want %q", rec.Priority, PriorityWarning)
		}
		if !strings.Contains(rec.Text, "5 days") {
			t.Errorf("Text = %q, want the day count included", rec.Text)
		}
	})

	t.Run("no history at all", func(t *testing.T) {
		rec := Recommend(nil, nil, store.DefaultProfile(), now)
		if rec.Priority != PriorityWarning {
			t.Errorf("Priority = %q, want %q", rec.Priority, PriorityWarning)
		}
		if !strings.Contains(rec.Text, "since your last workout") {
			t.Errorf("Text = %q, want the re-engagement message", rec.Text)
		}
	})
}

func TestRecommendGoalMet(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	profile := store.DefaultProfile()
	profile.WeeklyGoal = 3

	// Flat ratings keep the trend at zero so the momentum rule stays out.
	workouts := []store.WorkoutLog{
		{Type: store.TypeWalking, Rating: 4, Date: now.AddDate(0, 0, -4)},
		{Type: store.TypeWalking, Rating: 4, Date: now.AddDate(0, 0, -2)},
		{Type: store.TypeWalking, Rating: 4, Date: now},
	}

	t.Run("plain", func(t *testing.T) {
		rec := Recommend(workouts, nil, profile, now)
		if rec.Priority != PrioritySuccess {
			t.Fatalf("Priority = %q, want %q", rec.Priority, PrioritySuccess)
		}
		if !strings.Contains(rec.Text, "3 workout goal") {
			t.Errorf("Text = %q, want the weekly goal included", rec.Text)
		}
		if !strings.Contains(rec.Text, "sustainable pace") {
			t.Errorf("Text = %q, want the plain encouragement", rec.Text)
		}
	})

	t.Run("with arthritis", func(t *testing.T) {
		p := profile
		p.HealthConditions = []string{ConditionArthritis}
		rec := Recommend(workouts, nil, p, now)
		if !strings.Contains(rec.Text, "arthritis") {
			t.Errorf("Text = %q, want the arthritis branch", rec.Text)
		}
	})
}

func TestRecommendSteadyProgressFallback(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	profile := store.DefaultProfile()
	profile.WeeklyGoal = 4

	// Two workouts this week, below the goal, middling energy, active
	// yesterday, no pain: no earlier rule matches.
	workouts := []store.WorkoutLog{
		{Type: store.TypeWalking, Rating: 3, Date: now.AddDate(0, 0, -3)},
		{Type: store.TypeWalking, Rating: 3, Date: now.AddDate(0, 0, -1)},
	}

	t.Run("plain", func(t *testing.T) {
		rec := Recommend(workouts, nil, profile, now)
		if rec.Priority != PriorityInfo {
			t.Fatalf("Priority = %q, want %q", rec.Priority, PriorityInfo)
		}
		if !strings.Contains(rec.Text, "Steady progress") {
			t.Errorf("Text = %q, want the steady progress message", rec.Text)
		}
		if !strings.Contains(rec.Text, "3.0/5") {
			t.Errorf("Text = %q, want the average rating included", rec.Text)
		}
	})

	t.Run("with balance issues", func(t *testing.T) {
		p := profile
		p.HealthConditions = []string{ConditionBalanceIssues}
		rec := Recommend(workouts, nil, p, now)
		if !strings.Contains(rec.Text, "balance exercises") {
			t.Errorf("Text = %q, want the balance branch", rec.Text)
		}
	})
}
