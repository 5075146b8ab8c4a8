package models

import "time"

const dayLayout = "2006-01-02"

// Day is a calendar day in YYYY-MM-DD form with no time component or
// timezone. Ordering is lexical, which matches chronological order for
// this fixed-width format.
type Day string

// Today returns the current calendar day in local time.
func Today() Day {
	return Day(time.Now().Format(dayLayout))
}

// Weekday reports the day-of-week index (0=Sunday..6=Saturday). The
// second result is false when the value is not a valid YYYY-MM-DD day.
func (d Day) Weekday() (int, bool) {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// Valid reports whether the value parses as a YYYY-MM-DD day.
func (d Day) Valid() bool {
	_, err := time.Parse(dayLayout, string(d))
	return err == nil
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d < other
}
