package stats

import (
	"math"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/diary/entries"
)

// DailyBucket is one day's folded total of diary records. Built fresh
// on every aggregation call, never persisted.
type DailyBucket struct {
	Date          calendar.Date `json:"date"`
	TotalCalories int           `json:"totalCalories"`
	TotalProtein  int           `json:"totalProtein"`
	StrengthCount int           `json:"strengthCount"`
	CardioCount   int           `json:"cardioCount"`
}

func (b *DailyBucket) empty() bool {
	return b.TotalCalories == 0 &&
		b.TotalProtein == 0 &&
		b.StrengthCount == 0 &&
		b.CardioCount == 0
}

// HasWorkout reports whether any workout was logged on that day.
func (b *DailyBucket) HasWorkout() bool {
	return b.StrengthCount > 0 || b.CardioCount > 0
}

type MonthlyStats struct {
	DaysLogged      int `json:"daysLogged"`
	AvgCalories     int `json:"avgCalories"`
	AvgProtein      int `json:"avgProtein"`
	WorkoutDays     int `json:"workoutDays"`
	CardioCount     int `json:"cardioCount"`
	StrengthCount   int `json:"strengthCount"`
	ProgressPercent int `json:"progressPercent"`

	// weight and burned-calories rollups, not part of the buckets
	TotalCaloriesBurned int     `json:"totalCaloriesBurned"`
	AvgWeightKg         float64 `json:"avgWeightKg"`
	LastWeightKg        float64 `json:"lastWeightKg"`
}

type PeriodSummary struct {
	From    calendar.Date                  `json:"from"`
	To      calendar.Date                  `json:"to"`
	Buckets map[calendar.Date]*DailyBucket `json:"buckets"`
	Stats   MonthlyStats                   `json:"stats"`
}

// AggregatePeriod folds the given records into per-day buckets over the
// inclusive [from, to] range and computes the period rollup. Records
// outside the range are ignored; future dates simply stay all-zero.
/// The fold is pure: inputs are never mutated, output is deterministic.
func AggregatePeriod(
	from, to calendar.Date,
	meals []entries.MealEntry,
	workouts []entries.WorkoutEntry,
	weights []entries.WeightEntry,
	dailyCalorieGoal int,
) (*PeriodSummary, error) {
	dates, err := calendar.DateRange(from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[calendar.Date]*DailyBucket, len(dates))
	for _, d := range dates {
		buckets[d] = &DailyBucket{Date: d}
	}

	for _, meal := range meals {
		bucket, ok := buckets[meal.Date]
		if !ok {
			continue
		}
		bucket.TotalCalories += meal.Calories
		bucket.TotalProtein += meal.ProteinGrams
	}

	totalCaloriesBurned := 0
	for _, workout := range workouts {
		totalCaloriesBurned += workout.CaloriesBurned
		bucket, ok := buckets[workout.Date]
		if !ok {
			continue
		}
		switch workout.Kind {
		case entries.WorkoutStrength:
			bucket.StrengthCount++
		case entries.WorkoutCardio:
			bucket.CardioCount++
		}
	}

	stats := MonthlyStats{
		TotalCaloriesBurned: totalCaloriesBurned,
	}

	totalCalories := 0
	totalProtein := 0
	for _, bucket := range buckets {
		if bucket.empty() {
			continue
		}
		stats.DaysLogged++
		totalCalories += bucket.TotalCalories
		totalProtein += bucket.TotalProtein
		if bucket.HasWorkout() {
			stats.WorkoutDays++
		}
		stats.StrengthCount += bucket.StrengthCount
		stats.CardioCount += bucket.CardioCount
	}

	if stats.DaysLogged > 0 {
		stats.AvgCalories = roundDiv(totalCalories, stats.DaysLogged)
		stats.AvgProtein = roundDiv(totalProtein, stats.DaysLogged)
		if dailyCalorieGoal > 0 {
			progress := float64(totalCalories) / float64(dailyCalorieGoal*stats.DaysLogged) * 100
			stats.ProgressPercent = clamp(int(math.Round(progress)), 0, 100)
		}
	}

	var weightSum float64
	var lastWeightDate calendar.Date
	weightCount := 0
	for _, weight := range weights {
		if weight.Date.Before(from) || weight.Date.After(to) {
			continue
		}
		weightSum += weight.WeightKg
		weightCount++
		if !weight.Date.Before(lastWeightDate) {
			lastWeightDate = weight.Date
			stats.LastWeightKg = weight.WeightKg
		}
	}
	if weightCount > 0 {
		stats.AvgWeightKg = math.Round(weightSum/float64(weightCount)*10) / 10
	}

	return &PeriodSummary{
		From:    from,
		To:      to,
		Buckets: buckets,
		Stats:   stats,
	}, nil
}

func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
