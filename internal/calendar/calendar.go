package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("invalid date range: start after end")
)

const dateLayout = "2006-01-02"

// Date is a plain calendar date, no time of day, no timezone.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf takes the local calendar fields of t, i.e. "today" never
// shifts across midnight because of a UTC conversion.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a YYYY-MM-DD string. Meant for the HTTP/storage
// boundary; the rest of the code passes Date values around.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.time().AddDate(0, 0, days))
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Weekday returns 0..6, 0 being Sunday.
func (d Date) Weekday() int {
	return int(d.time().Weekday())
}

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == 0 || wd == 6
}

// MarshalText makes Date usable both as a JSON value and as a JSON
// map key (buckets are keyed by date on the wire).
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth is leap-year aware, month is 1..12.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month == last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateRange returns all dates from start to end, inclusive, ascending.
func DateRange(start, end Date) ([]Date, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	var dates []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}
