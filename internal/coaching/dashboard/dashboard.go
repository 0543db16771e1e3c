// Package dashboard assembles the landing view read-model of a subject.
package dashboard

import (
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/calendar"
	"github.com/2beens/coachstats/internal/coaching/streak"
)

const (
	DefaultCheckinFrequencyDays = 7
	labelLayout                 = "Jan 2, 2006"
	overdueSuffix               = " (Overdue)"
)

type PlanKind string

const (
	PlanKindWorkout PlanKind = "workout"
	PlanKindDiet    PlanKind = "diet"
)

// PlanAssignment is a workout or diet plan assigned to a subject.
type PlanAssignment struct {
	PlanID    string     `json:"planId"`
	Kind      PlanKind   `json:"kind"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Active    bool       `json:"active"`
}

// IsActiveOn reports whether the assignment is flagged active and now falls
// between its start and (optional) end date.
func (p PlanAssignment) IsActiveOn(now time.Time) bool {
	if !p.Active {
		return false
	}
	today := calendar.Key(now)
	if calendar.Key(p.StartDate) > today {
		return false
	}
	return p.EndDate == nil || calendar.Key(*p.EndDate) >= today
}

type ActivePlan struct {
	PlanID       string `json:"planId"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	DayOfProgram int    `json:"dayOfProgram"`
}

type Input struct {
	Activities           []coaching.ActivityLog
	CheckIns             []coaching.CheckIn
	CheckinFrequencyDays int
	WorkoutPlan          *PlanAssignment
	DietPlan             *PlanAssignment
}

// Summary is the landing view read-model. Plans without an active assignment are nil.
type Summary struct {
	CurrentStreak        int         `json:"currentStreak"`
	LongestStreak        int         `json:"longestStreak"`
	WorkoutsThisWeek     int         `json:"workoutsThisWeek"`
	TotalMinutesThisWeek int         `json:"totalMinutesThisWeek"`
	NextCheckinDate      string      `json:"nextCheckinDate"`
	NextCheckinLabel     string      `json:"nextCheckinLabel"`
	CheckinOverdue       bool        `json:"checkinOverdue"`
	WorkoutPlan          *ActivePlan `json:"workoutPlan"`
	DietPlan             *ActivePlan `json:"dietPlan"`
}

func Build(in Input, now time.Time) (Summary, error) {
	streaks, err := streak.FromActivityLogs(in.Activities, now)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		CurrentStreak: streaks.CurrentStreak,
		LongestStreak: streaks.LongestStreak,
	}

	thisWeek := calendar.WeekKey(now)
	for _, l := range in.Activities {
		if !l.IsCompleted() || calendar.WeekKey(l.ActivityDate) != thisWeek {
			continue
		}
		summary.WorkoutsThisWeek++
		summary.TotalMinutesThisWeek += l.DurationMinutes
	}

	next, err := nextCheckin(in.CheckIns, in.CheckinFrequencyDays, now)
	if err != nil {
		return Summary{}, err
	}
	summary.NextCheckinDate = calendar.Key(next)
	summary.CheckinOverdue = summary.NextCheckinDate < calendar.Key(now)
	summary.NextCheckinLabel = next.Format(labelLayout)
	if summary.CheckinOverdue {
		summary.NextCheckinLabel += overdueSuffix
	}

	summary.WorkoutPlan = activePlan(in.WorkoutPlan, now)
	summary.DietPlan = activePlan(in.DietPlan, now)

	return summary, nil
}

// nextCheckin projects the next check-in from the latest submitted one.
// Without any submitted check-in the next one is due today.
func nextCheckin(checkins []coaching.CheckIn, frequencyDays int, now time.Time) (time.Time, error) {
	if frequencyDays <= 0 {
		frequencyDays = DefaultCheckinFrequencyDays
	}

	var last *time.Time
	for _, c := range checkins {
		if err := c.Validate(); err != nil {
			return time.Time{}, err
		}
		if c.SubmittedAt == nil {
			continue
		}
		if last == nil || calendar.Key(*c.SubmittedAt) > calendar.Key(*last) {
			last = c.SubmittedAt
		}
	}

	if last == nil {
		return calendar.Date(now), nil
	}
	return calendar.Date(*last).AddDate(0, 0, frequencyDays), nil
}

func activePlan(assignment *PlanAssignment, now time.Time) *ActivePlan {
	if assignment == nil || !assignment.IsActiveOn(now) {
		return nil
	}
	return &ActivePlan{
		PlanID:       assignment.PlanID,
		Name:         assignment.Name,
		StartDate:    calendar.Key(assignment.StartDate),
		DayOfProgram: calendar.DayOfProgram(assignment.StartDate, now),
	}
}
