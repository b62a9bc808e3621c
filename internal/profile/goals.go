package profile

// Goals are the user's current targets. Non-positive values are
// tolerated and simply switch off the dependent calculations
// downstream.
type Goals struct {
	CalorieGoal        int `json:"calorieGoal"`
	ProteinGoalGrams   int `json:"proteinGoalGrams"`
	WorkoutGoalPerWeek int `json:"workoutGoalPerWeek"`
}

var DefaultGoals = Goals{
	CalorieGoal:        2000,
	ProteinGoalGrams:   100,
	WorkoutGoalPerWeek: 3,
}
