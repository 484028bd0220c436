package daterange

import (
	"time"
)

const dayFormat = "2006-01-02"

// Range is a half-open day interval [From, ToExclusive), both at UTC midnight.
// Using an exclusive end keeps downstream `date >= from AND date < to_exclusive`
// queries from dropping or duplicating the last day.
type Range struct {
	From        time.Time
	ToExclusive time.Time
}

// ParseDay parses a YYYY-MM-DD string into a UTC-midnight time.Time.
// Calendar validity is enforced (2025-02-30 is rejected).
func ParseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// Parse parses inclusive from/to day strings into a half-open Range.
func Parse(from, to string) (Range, error) {
	fromDay, err := ParseDay(from)
	if err != nil {
		return Range{}, err
	}
	toDay, err := ParseDay(to)
	if err != nil {
		return Range{}, err
	}
	return Range{From: fromDay, ToExclusive: AddDays(toDay, 1)}, nil
}

// AddDays shifts a UTC day by n calendar days.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// Days returns the number of calendar days covered by the range.
func (r Range) Days() int {
	return int(r.ToExclusive.Sub(r.From).Hours() / 24)
}

// Contains reports whether the UTC calendar day of t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	day := Truncate(t)
	return !day.Before(r.From) && day.Before(r.ToExclusive)
}

// To returns the inclusive end day of the range.
func (r Range) To() time.Time {
	return AddDays(r.ToExclusive, -1)
}

// Truncate drops the time component, anchoring t's UTC calendar day at midnight.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar day at midnight.
func Today() time.Time {
	return Truncate(time.Now())
}

// FormatDay renders a time as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.UTC().Format(dayFormat)
}
