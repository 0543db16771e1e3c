// Package calendar holds the date keying rules shared by the analytics packages.
// All comparisons work on YYYY-MM-DD keys of the wall-clock date a time carries,
// never on instants, so subjects and sessions recorded in different zones
// bucket the same way.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
)

const KeyLayout = "2006-01-02"

var ErrInvalidDate = fmt.Errorf("%w: malformed date", coaching.ErrInvalidInput)

// Key returns the YYYY-MM-DD key of t's wall-clock date.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// Date strips the time of day and the location from t, keeping its wall-clock date.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseKey accepts a YYYY-MM-DD key or an RFC 3339 timestamp.
// For timestamps only the date part is kept, the zone offset is ignored.
func ParseKey(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(KeyLayout) && s[len(KeyLayout)] == 'T' {
		if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		s = s[:len(KeyLayout)]
	}
	d, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// WeekKey returns the key of the Monday of the week containing t.
func WeekKey(t time.Time) string {
	d := Date(t)
	daysFromMonday := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return Key(d.AddDate(0, 0, -daysFromMonday))
}

// DaysAgo returns the key of the date n days before now.
func DaysAgo(n int, now time.Time) string {
	return Key(Date(now).AddDate(0, 0, -n))
}

// DaysBetween returns the number of calendar days from `from` to `to`,
// negative when `to` is before `from`.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / 24)
}

// DayOfProgram returns the 1-based day index within a 7 day program cycle.
// Dates before the program start are reported as day 1.
func DayOfProgram(start, now time.Time) int {
	daysSinceStart := DaysBetween(start, now)
	if daysSinceStart < 0 {
		daysSinceStart = 0
	}
	return daysSinceStart%7 + 1
}

// InWindow reports whether t falls within the trailing window of the given
// number of days ending today (both ends inclusive).
func InWindow(t, now time.Time, days int) bool {
	key := Key(t)
	return key >= DaysAgo(days, now) && key <= Key(now)
}
