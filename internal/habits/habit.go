package habits

import (
	"encoding/json"
	"sort"

	"github.com/2beens/fitjournal/internal/calendar"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// CompletionSet holds the days a habit was marked done.
type CompletionSet map[calendar.Date]struct{}

func NewCompletionSet(dates ...calendar.Date) CompletionSet {
	set := make(CompletionSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func (s CompletionSet) Contains(d calendar.Date) bool {
	_, ok := s[d]
	return ok
}

// Clone keeps toggles pure, the original set is never touched.
func (s CompletionSet) Clone() CompletionSet {
	clone := make(CompletionSet, len(s))
	for d := range s {
		clone[d] = struct{}{}
	}
	return clone
}

func (s CompletionSet) Sorted() []calendar.Date {
	dates := make([]calendar.Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// on the wire a completion set is a sorted array of dates
func (s CompletionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *CompletionSet) UnmarshalJSON(data []byte) error {
	var dates []calendar.Date
	if err := json.Unmarshal(data, &dates); err != nil {
		return err
	}
	*s = NewCompletionSet(dates...)
	return nil
}

type Habit struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
	// Weekdays are 0..6 (Sunday 0), only set for weekly habits
	Weekdays    []int         `json:"weekdays,omitempty"`
	Completions CompletionSet `json:"completions"`
	// Streak is a cached value, always recomputable from Completions.
	// Every mutation path recomputes it before persisting.
	Streak            int            `json:"streak"`
	LastCompletedDate *calendar.Date `json:"lastCompletedDate,omitempty"`
}

// ToggleCompletion flips the completion for the given date and returns
// the resulting habit with a freshly computed streak. The receiver is
// left untouched.
func (h Habit) ToggleCompletion(date, today calendar.Date) Habit {
	completions := h.Completions.Clone()
	if completions.Contains(date) {
		delete(completions, date)
	} else {
		completions[date] = struct{}{}
	}

	h.Completions = completions
	h.Streak = ComputeStreak(today, completions)

	h.LastCompletedDate = nil
	for _, d := range completions.Sorted() {
		if d.After(today) {
			break
		}
		dd := d
		h.LastCompletedDate = &dd
	}
	return h
}
