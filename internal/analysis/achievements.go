package analysis

// Achievement is an unlocked milestone badge.
type Achievement struct {
	Icon string
	Name string
	Desc string
}

// MaxAchievements caps how many badges are shown at once. When more
// are unlocked, the earliest entries in the rule table drop off first.
const MaxAchievements = 6

type badgeMetric int

const (
	byTotalWorkouts badgeMetric = iota
	byStreak
	byTotalMinutes
)

// badgeRules is evaluated top to bottom; every satisfied rule appends
// its badge. The table order is the display order, so do not reorder.
var badgeRules = []struct {
	metric    badgeMetric
	threshold int
	badge     Achievement
}{
	{byTotalWorkouts, 1, Achievement{"🎯", "First Step", "First workout!"}},
	{byTotalWorkouts, 10, Achievement{"💪", "Committed", "10 workouts"}},
	{byTotalWorkouts, 25, Achievement{"🏆", "Quarter Century", "25 workouts"}},
	{byTotalWorkouts, 50, Achievement{"⭐", "Half Century", "50 workouts"}},
	{byTotalWorkouts, 100, Achievement{"👑", "Century Club", "100 workouts"}},
	{byStreak, 3, Achievement{"🔥", "On Fire", "3 day streak"}},
	{byStreak, 7, Achievement{"⚡", "Week Warrior", "7 days!"}},
	{byStreak, 14, Achievement{"🌟", "Fortnight", "14 days!"}},
	{byStreak, 30, Achievement{"💎", "Monthly Master", "30 days!"}},
	{byTotalMinutes, 300, Achievement{"🎖️", "5 Hour Hero", "300+ min"}},
}

// Achievements returns the unlocked badges, capped at the last
// MaxAchievements in table order.
func Achievements(totalWorkouts, totalMinutes, streak int) []Achievement {
	var unlocked []Achievement

	for _, rule := range badgeRules {
		var value int
		switch rule.metric {
		case byTotalWorkouts:
			value = totalWorkouts
		case byStreak:
			value = streak
		case byTotalMinutes:
			value = totalMinutes
		}
		if value >= rule.threshold {
			unlocked = append(unlocked, rule.badge)
		}
	}

	if len(unlocked) > MaxAchievements {
		unlocked = unlocked[len(unlocked)-MaxAchievements:]
	}
	return unlocked
}
