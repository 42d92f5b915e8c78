package analysis

import (
	"math"
	"sort"
	"time"

	"retirestrong/internal/store"
)

// Aggregation windows.
const (
	WeeklyWindowDays = 7
	ChartWindowDays  = 30
	ChartMaxDays     = 14
)

// dateLabelFormat is the grouping key and axis label for day-grouped
// series ("Jun 3").
const dateLabelFormat = "Jan 2"

// WeeklyStats summarizes the trailing seven days of workouts.
type WeeklyStats struct {
	Count     int
	Minutes   int
	AvgRating float64 // 1 decimal, 0 when Count == 0
}

// ComputeWeeklyStats filters workouts to the trailing week before now
// and totals them.
func ComputeWeeklyStats(workouts []store.WorkoutLog, now time.Time) WeeklyStats {
	cutoff := now.AddDate(0, 0, -WeeklyWindowDays)

	var stats WeeklyStats
	var ratingSum int
	for _, w := range workouts {
		if w.Date.Before(cutoff) {
			continue
		}
		stats.Count++
		stats.Minutes += w.Duration
		ratingSum += w.Rating
	}

	if stats.Count > 0 {
		stats.AvgRating = round1(float64(ratingSum) / float64(stats.Count))
	}
	return stats
}

// ChartPoint is one day of grouped workout data for the history chart.
type ChartPoint struct {
	DateLabel string
	Duration  int     // summed minutes
	Rating    float64 // mean rating, 1 decimal
}

// ChartSeries groups the trailing 30 days of workouts by calendar day
// and returns the last ChartMaxDays groups in ascending date order.
// Each call recomputes from scratch; the result shares no state with
// the input.
func ChartSeries(workouts []store.WorkoutLog, now time.Time) []ChartPoint {
	cutoff := now.AddDate(0, 0, -ChartWindowDays)

	type group struct {
		day       time.Time
		duration  int
		ratingSum int
		count     int
	}
	groups := make(map[string]*group)

	for _, w := range workouts {
		if w.Date.Before(cutoff) {
			continue
		}
		label := w.Date.Format(dateLabelFormat)
		g, ok := groups[label]
		if !ok {
			g = &group{day: startOfDay(w.Date)}
			groups[label] = g
		}
		g.duration += w.Duration
		g.ratingSum += w.Rating
		g.count++
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].day.Before(ordered[j].day)
	})

	if len(ordered) > ChartMaxDays {
		ordered = ordered[len(ordered)-ChartMaxDays:]
	}

	points := make([]ChartPoint, 0, len(ordered))
	for _, g := range ordered {
		points = append(points, ChartPoint{
			DateLabel: g.day.Format(dateLabelFormat),
			Duration:  g.duration,
			Rating:    round1(float64(g.ratingSum) / float64(g.count)),
		})
	}
	return points
}

// MetricPoint is one body measurement for the metrics chart.
type MetricPoint struct {
	DateLabel string
	Weight    float64
	Waist     float64
}

// BodyMetricSeries maps every measurement in original order. No
// windowing: the metrics chart always shows full history.
func BodyMetricSeries(metrics []store.BodyMetricEntry) []MetricPoint {
	points := make([]MetricPoint, 0, len(metrics))
	for _, m := range metrics {
		points = append(points, MetricPoint{
			DateLabel: m.Date.Format(dateLabelFormat),
			Weight:    m.Weight,
			Waist:     m.Waist,
		})
	}
	return points
}

// TotalMinutes sums all workout durations.
func TotalMinutes(workouts []store.WorkoutLog) int {
	total := 0
	for _, w := range workouts {
		total += w.Duration
	}
	return total
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
