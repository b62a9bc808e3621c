package habits_test

import (
	"testing"
	"time"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/habits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = calendar.NewDate(2024, time.May, 3)

func may(day int) calendar.Date {
	return calendar.NewDate(2024, time.May, day)
}

func april(day int) calendar.Date {
	return calendar.NewDate(2024, time.April, day)
}

func TestComputeStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, habits.ComputeStreak(today, nil))
	assert.Equal(t, 0, habits.ComputeStreak(today, habits.NewCompletionSet()))
}

func TestComputeStreak_TodayOnly(t *testing.T) {
	completions := habits.NewCompletionSet(today)
	assert.Equal(t, 1, habits.ComputeStreak(today, completions))
}

func TestComputeStreak_ConsecutiveDays(t *testing.T) {
	completions := habits.NewCompletionSet(may(1), may(2), may(3))
	assert.Equal(t, 3, habits.ComputeStreak(today, completions))
}

func TestComputeStreak_GracePeriod(t *testing.T) {
	// today not done yet, but yesterday was, streak survives
	completions := habits.NewCompletionSet(may(1), may(2))
	assert.Equal(t, 2, habits.ComputeStreak(today, completions))
}

func TestComputeStreak_Lapsed(t *testing.T) {
	// last completion two days ago, the streak is gone
	completions := habits.NewCompletionSet(
		april(25), april(26), april(27), april(28), april(29), april(30), may(1),
	)
	assert.Equal(t, 0, habits.ComputeStreak(today, completions))
}

func TestComputeStreak_ChainAcrossMonthBoundary(t *testing.T) {
	completions := habits.NewCompletionSet(
		april(29), april(30), may(1), may(2), may(3),
	)
	assert.Equal(t, 5, habits.ComputeStreak(today, completions))
}

func TestComputeStreak_HoleInChain(t *testing.T) {
	// April 30th missing, the chain stops there
	completions := habits.NewCompletionSet(april(29), may(1), may(2), may(3))
	assert.Equal(t, 3, habits.ComputeStreak(today, completions))
}

func TestComputeStreak_Monotonicity(t *testing.T) {
	completions := habits.NewCompletionSet(may(1), may(2))
	assert.Equal(t, 2, habits.ComputeStreak(today, completions))

	completions[today] = struct{}{}
	assert.Equal(t, 3, habits.ComputeStreak(today, completions))

	// adding today again changes nothing
	completions[today] = struct{}{}
	assert.Equal(t, 3, habits.ComputeStreak(today, completions))
}

func TestToggleCompletion(t *testing.T) {
	habit := habits.Habit{
		Name:        "morning run",
		Frequency:   habits.FrequencyDaily,
		Completions: habits.NewCompletionSet(may(1), may(2)),
		Streak:      2,
	}

	toggled := habit.ToggleCompletion(today, today)
	assert.Equal(t, 3, toggled.Streak)
	require.NotNil(t, toggled.LastCompletedDate)
	assert.Equal(t, "2024-05-03", toggled.LastCompletedDate.String())

	// toggling the same date again removes it
	toggledBack := toggled.ToggleCompletion(today, today)
	assert.Equal(t, 2, toggledBack.Streak)
	require.NotNil(t, toggledBack.LastCompletedDate)
	assert.Equal(t, "2024-05-02", toggledBack.LastCompletedDate.String())

	// the original habit is never mutated
	assert.Len(t, habit.Completions, 2)
	assert.False(t, habit.Completions.Contains(today))
}

func TestToggleCompletion_RemoveAll(t *testing.T) {
	habit := habits.Habit{
		Name:        "stretching",
		Frequency:   habits.FrequencyDaily,
		Completions: habits.NewCompletionSet(today),
		Streak:      1,
	}

	toggled := habit.ToggleCompletion(today, today)
	assert.Equal(t, 0, toggled.Streak)
	assert.Nil(t, toggled.LastCompletedDate)
	assert.Empty(t, toggled.Completions)
}
