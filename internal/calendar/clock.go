package calendar

import "time"

// Clock abstracts "now" so that everything deriving "today" from it
// (streaks, aggregation windows) stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func NewSystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func NewFixedClock(now time.Time) Clock {
	return fixedClock{now: now}
}

// Today is a convenience for the common clock -> local date step.
func Today(clock Clock) Date {
	return DateOf(clock.Now())
}
