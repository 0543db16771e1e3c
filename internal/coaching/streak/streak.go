// Package streak computes consecutive-day activity streaks.
package streak

import (
	"sort"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/calendar"
)

type Result struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// Calculate returns the current and the longest streak over the given activity days.
// Duplicate days collapse to one. The current streak stays alive as long as there
// is activity today or yesterday; two missed days in a row reset it to 0.
func Calculate(days []time.Time, now time.Time) Result {
	if len(days) == 0 {
		return Result{}
	}

	active := make(map[string]struct{}, len(days))
	for _, d := range days {
		active[calendar.Key(d)] = struct{}{}
	}

	return Result{
		CurrentStreak: currentStreak(active, now),
		LongestStreak: longestStreak(active),
	}
}

// FromActivityLogs calculates streaks over the completed logs only.
func FromActivityLogs(logs []coaching.ActivityLog, now time.Time) (Result, error) {
	days := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		if err := l.Validate(); err != nil {
			return Result{}, err
		}
		if !l.IsCompleted() {
			continue
		}
		days = append(days, l.ActivityDate)
	}
	return Calculate(days, now), nil
}

func currentStreak(active map[string]struct{}, now time.Time) int {
	day := calendar.Date(now)
	if _, ok := active[calendar.Key(day)]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := active[calendar.Key(day)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := active[calendar.Key(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func longestStreak(active map[string]struct{}) int {
	keys := make([]string, 0, len(active))
	for k := range active {
		keys = append(keys, k)
	}
	// YYYY-MM-DD keys sort chronologically
	sort.Strings(keys)

	longest, run := 0, 0
	var prev time.Time
	for i, k := range keys {
		// keys were produced by calendar.Key, they always parse
		day, _ := calendar.ParseKey(k)
		if i > 0 && calendar.DaysBetween(prev, day) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}
