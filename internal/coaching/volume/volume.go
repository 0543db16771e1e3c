// Package volume aggregates completed training sessions into weekly volume and frequency.
package volume

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/calendar"
)

const DefaultLookbackDays = 90

// Totals of a single session (or of a set of sessions).
type Totals struct {
	Sets    int     `json:"sets"`
	Reps    int     `json:"reps"`
	Tonnage float64 `json:"tonnage"`
}

func (t Totals) add(o Totals) Totals {
	return Totals{
		Sets:    t.Sets + o.Sets,
		Reps:    t.Reps + o.Reps,
		Tonnage: t.Tonnage + o.Tonnage,
	}
}

type WeekVolume struct {
	Week         string `json:"week"`
	TotalSets    int    `json:"totalSets"`
	TotalReps    int    `json:"totalReps"`
	TotalTonnage int    `json:"totalTonnage"`
}

type WeekFrequency struct {
	Week         string `json:"week"`
	SessionCount int    `json:"sessionCount"`
}

// Result holds two sequences aligned by week, in chronological order.
type Result struct {
	WeeklyVolume    []WeekVolume    `json:"weeklyVolume"`
	WeeklyFrequency []WeekFrequency `json:"weeklyFrequency"`
}

// SessionTotals sums the completed sets of the given exercise records.
func SessionTotals(records []coaching.ExerciseRecord) (Totals, error) {
	var totals Totals
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return Totals{}, err
		}
		for _, set := range rec.Sets {
			if !set.Completed {
				continue
			}
			totals.Sets++
			totals.Reps += *set.Reps
			totals.Tonnage += set.Weight * float64(*set.Reps)
		}
	}
	return totals, nil
}

// Aggregate groups the completed sessions inside the lookback window by week.
// Records are joined to their session by ExerciseRecord.SessionID == ActivityLog.ID;
// records of unknown, not completed or out of window sessions are ignored.
func Aggregate(
	logs []coaching.ActivityLog,
	records []coaching.ExerciseRecord,
	now time.Time,
	lookbackDays int,
) (Result, error) {
	if lookbackDays < 0 {
		return Result{}, coaching.Invalidf("lookback days must be >= 0, got %d", lookbackDays)
	}

	session2records := make(map[string][]coaching.ExerciseRecord)
	for _, rec := range records {
		session2records[rec.SessionID] = append(session2records[rec.SessionID], rec)
	}

	week2totals := make(map[string]Totals)
	week2sessions := make(map[string]int)
	for _, l := range logs {
		if err := l.Validate(); err != nil {
			return Result{}, err
		}
		if !l.IsCompleted() || !calendar.InWindow(l.ActivityDate, now, lookbackDays) {
			continue
		}

		sessionTotals, err := SessionTotals(session2records[l.ID])
		if err != nil {
			return Result{}, err
		}

		week := calendar.WeekKey(l.ActivityDate)
		week2totals[week] = week2totals[week].add(sessionTotals)
		week2sessions[week]++
	}

	weeks := make([]string, 0, len(week2sessions))
	for week := range week2sessions {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	res := Result{
		WeeklyVolume:    make([]WeekVolume, 0, len(weeks)),
		WeeklyFrequency: make([]WeekFrequency, 0, len(weeks)),
	}
	for _, week := range weeks {
		totals := week2totals[week]
		res.WeeklyVolume = append(res.WeeklyVolume, WeekVolume{
			Week:         week,
			TotalSets:    totals.Sets,
			TotalReps:    totals.Reps,
			TotalTonnage: int(math.Round(totals.Tonnage)),
		})
		res.WeeklyFrequency = append(res.WeeklyFrequency, WeekFrequency{
			Week:         week,
			SessionCount: week2sessions[week],
		})
	}

	return res, nil
}
