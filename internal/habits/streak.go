package habits

import "github.com/2beens/fitjournal/internal/calendar"

// ComputeStreak counts consecutive completed days ending at today or,
// if today is not completed yet, at yesterday. That one-day grace
// period keeps a live streak alive through the current day. A gap of
// two or more days resets the streak to zero. The function is total,
// it never fails.
func ComputeStreak(today calendar.Date, completions CompletionSet) int {
	if len(completions) == 0 {
		return 0
	}

	yesterday := today.AddDays(-1)
	anchor := today
	if !completions.Contains(today) {
		if !completions.Contains(yesterday) {
			return 0
		}
		anchor = yesterday
	}

	// the anchor day itself counts
	streak := 1
	for d := anchor.AddDays(-1); completions.Contains(d); d = d.AddDays(-1) {
		streak++
	}
	return streak
}
