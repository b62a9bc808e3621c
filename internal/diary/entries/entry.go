package entries

import (
	"github.com/2beens/fitjournal/internal/calendar"
)

type WorkoutKind string

const (
	WorkoutStrength WorkoutKind = "strength"
	WorkoutCardio   WorkoutKind = "cardio"
)

func (k WorkoutKind) Valid() bool {
	return k == WorkoutStrength || k == WorkoutCardio
}

type MealEntry struct {
	ID           int           `json:"id"`
	Date         calendar.Date `json:"date"`
	Calories     int           `json:"calories"`
	ProteinGrams int           `json:"proteinGrams"`
	// Time is the meal time of day, "HH:MM", informational only
	Time string `json:"time,omitempty"`
}

type WorkoutEntry struct {
	ID              int           `json:"id"`
	Date            calendar.Date `json:"date"`
	Kind            WorkoutKind   `json:"kind"`
	DurationMinutes int           `json:"durationMinutes"`
	CaloriesBurned  int           `json:"caloriesBurned"`
}

type WeightEntry struct {
	ID       int           `json:"id"`
	Date     calendar.Date `json:"date"`
	WeightKg float64       `json:"weightKg"`
}
