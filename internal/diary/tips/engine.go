package tips

import (
	"fmt"
	"time"

	"github.com/2beens/fitjournal/internal/calendar"
	"github.com/2beens/fitjournal/internal/diary/stats"
	"github.com/2beens/fitjournal/internal/profile"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityInfo   Severity = "info"
)

// Tip is one piece of advice derived from a period summary. Tips are
// recomputed wholesale on every request, never persisted or diffed.
type Tip struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

type ruleInput struct {
	stats   stats.MonthlyStats
	buckets map[calendar.Date]*stats.DailyBucket
	goals   profile.Goals
	days    int
}

func (in ruleInput) proteinRatio() float64 {
	if in.goals.ProteinGoalGrams <= 0 {
		return 0
	}
	return float64(in.stats.AvgProtein) / float64(in.goals.ProteinGoalGrams)
}

// strengthPerWeek divides the period's strength count by the number of
// weeks in the period. Deliberately a plain division, not a
// calendar-week bucketing.
func (in ruleInput) strengthPerWeek() float64 {
	if in.days <= 0 {
		return 0
	}
	return float64(in.stats.StrengthCount) / (float64(in.days) / 7)
}

type rule struct {
	id       string
	severity Severity
	title    string
	evaluate func(ruleInput) (string, bool)
}

// rules fire in declaration order; the thresholds are load-bearing.
var rules = []rule{
	{
		id:       "protein-deficit",
		severity: SeverityHigh,
		title:    "Protein far below goal",
		evaluate: func(in ruleInput) (string, bool) {
			if in.goals.ProteinGoalGrams <= 0 || in.proteinRatio() >= 0.5 {
				return "", false
			}
			return fmt.Sprintf(
				"You average %dg of protein against a %dg goal. Try adding a protein source to every meal.",
				in.stats.AvgProtein, in.goals.ProteinGoalGrams,
			), true
		},
	},
	{
		id:       "protein-low",
		severity: SeverityMedium,
		title:    "Protein below goal",
		evaluate: func(in ruleInput) (string, bool) {
			ratio := in.proteinRatio()
			if in.goals.ProteinGoalGrams <= 0 || ratio < 0.5 || ratio >= 0.7 {
				return "", false
			}
			return fmt.Sprintf(
				"You are at %dg of your %dg protein goal. A bit more and you are there.",
				in.stats.AvgProtein, in.goals.ProteinGoalGrams,
			), true
		},
	},
	{
		id:       "protein-ok",
		severity: SeverityInfo,
		title:    "Protein on track",
		evaluate: func(in ruleInput) (string, bool) {
			if in.goals.ProteinGoalGrams <= 0 || in.proteinRatio() < 0.7 {
				return "", false
			}
			return "Protein intake looks good, keep it up.", true
		},
	},
	{
		id:       "weekend-protein-gap",
		severity: SeverityMedium,
		title:    "Protein drops on weekends",
		evaluate: func(in ruleInput) (string, bool) {
			if in.goals.ProteinGoalGrams <= 0 {
				return "", false
			}
			weekendDays := 0
			lowDays := 0
			for d, bucket := range in.buckets {
				if !d.IsWeekend() {
					continue
				}
				weekendDays++
				if float64(bucket.TotalProtein) < 0.6*float64(in.goals.ProteinGoalGrams) {
					lowDays++
				}
			}
			if weekendDays < 4 || lowDays < 3 {
				return "", false
			}
			return fmt.Sprintf(
				"On %d weekend days this period your protein fell under 60%% of the goal. Plan weekend meals ahead.",
				lowDays,
			), true
		},
	},
	{
		id:       "cardio-very-low",
		severity: SeverityHigh,
		title:    "Cardio very low",
		evaluate: func(in ruleInput) (string, bool) {
			if in.stats.CardioCount >= 5 {
				return "", false
			}
			return fmt.Sprintf(
				"Only %d cardio sessions this period. Even short walks count.",
				in.stats.CardioCount,
			), true
		},
	},
	{
		id:       "cardio-moderate",
		severity: SeverityMedium,
		title:    "Cardio could be better",
		evaluate: func(in ruleInput) (string, bool) {
			if in.stats.CardioCount < 5 || in.stats.CardioCount >= 10 {
				return "", false
			}
			return fmt.Sprintf(
				"%d cardio sessions this period. Try squeezing in a couple more.",
				in.stats.CardioCount,
			), true
		},
	},
	{
		id:       "cardio-good",
		severity: SeverityInfo,
		title:    "Cardio on track",
		evaluate: func(in ruleInput) (string, bool) {
			if in.stats.CardioCount < 10 || in.stats.CardioCount >= 25 {
				return "", false
			}
			return fmt.Sprintf(
				"%d cardio sessions this period, solid work.",
				in.stats.CardioCount,
			), true
		},
	},
	{
		id:       "strength-low",
		severity: SeverityHigh,
		title:    "Strength training too low",
		evaluate: func(in ruleInput) (string, bool) {
			perWeek := in.strengthPerWeek()
			if perWeek >= 3 {
				return "", false
			}
			return fmt.Sprintf(
				"You average %.1f strength sessions per week. Aim for at least 3.",
				perWeek,
			), true
		},
	},
	{
		id:       "strength-good",
		severity: SeverityInfo,
		title:    "Strength training on point",
		evaluate: func(in ruleInput) (string, bool) {
			if in.strengthPerWeek() != 4 {
				return "", false
			}
			return "4 strength sessions per week is a great rhythm.", true
		},
	},
	{
		id:       "strength-excessive",
		severity: SeverityMedium,
		title:    "A lot of strength training",
		evaluate: func(in ruleInput) (string, bool) {
			perWeek := in.strengthPerWeek()
			if perWeek <= 5 {
				return "", false
			}
			return fmt.Sprintf(
				"Over %.1f strength sessions per week. Make sure recovery keeps up.",
				perWeek,
			), true
		},
	},
	{
		id:       "calories-over",
		severity: SeverityHigh,
		title:    "Calories over goal",
		evaluate: func(in ruleInput) (string, bool) {
			if in.goals.CalorieGoal <= 0 || in.stats.AvgCalories <= in.goals.CalorieGoal {
				return "", false
			}
			return fmt.Sprintf(
				"Average intake is %d kcal against a %d kcal goal.",
				in.stats.AvgCalories, in.goals.CalorieGoal,
			), true
		},
	},
	{
		id:       "calories-in-range",
		severity: SeverityInfo,
		title:    "Calories in range",
		evaluate: func(in ruleInput) (string, bool) {
			if in.goals.CalorieGoal <= 0 {
				return "", false
			}
			avg := float64(in.stats.AvgCalories)
			goal := float64(in.goals.CalorieGoal)
			if avg < 0.8*goal || avg > goal {
				return "", false
			}
			return "Calorie intake sits nicely within the goal.", true
		},
	},
	{
		id:       "inconsistent-weekday",
		severity: SeverityMedium,
		title:    "One weekday always skipped",
		evaluate: func(in ruleInput) (string, bool) {
			var occurrences, workoutHits [7]int
			for d, bucket := range in.buckets {
				occurrences[d.Weekday()]++
				if bucket.HasWorkout() {
					workoutHits[d.Weekday()]++
				}
			}
			for wd := 0; wd < 7; wd++ {
				if occurrences[wd] >= 3 && workoutHits[wd] == 0 {
					return fmt.Sprintf(
						"You never trained on a %s this period. A fixed slot could help.",
						time.Weekday(wd),
					), true
				}
			}
			return "", false
		},
	},
}

// Evaluate runs every rule against the period summary and returns the
// tips that fired, in stable rule order. It never fails; rules that
// have nothing to say simply stay silent.
func Evaluate(
	monthlyStats stats.MonthlyStats,
	buckets map[calendar.Date]*stats.DailyBucket,
	goals profile.Goals,
) []Tip {
	in := ruleInput{
		stats:   monthlyStats,
		buckets: buckets,
		goals:   goals,
		days:    len(buckets),
	}

	var tips []Tip
	for _, r := range rules {
		description, fired := r.evaluate(in)
		if !fired {
			continue
		}
		tips = append(tips, Tip{
			ID:          r.id,
			Title:       r.title,
			Description: description,
			Severity:    r.severity,
		})
	}
	return tips
}
