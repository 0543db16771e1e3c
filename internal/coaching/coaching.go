package coaching

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is wrapped by every validation error returned from the analytics packages.
var ErrInvalidInput = errors.New("invalid input")

// Invalidf builds an error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ActivityStatus can be one of:
//   - completed
//   - in_progress
//   - planned
type ActivityStatus string

const (
	ActivityStatusCompleted  ActivityStatus = "completed"
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusPlanned    ActivityStatus = "planned"
)

func (s ActivityStatus) String() string {
	return string(s)
}

func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityStatusCompleted,
		ActivityStatusInProgress,
		ActivityStatusPlanned:
		return true
	default:
		return false
	}
}

// ActivityLog is a single workout session of a subject.
// ActivityDate carries a calendar date only, the time of day is ignored.
type ActivityLog struct {
	ID              string         `json:"id"`
	SubjectID       string         `json:"subjectId"`
	ActivityDate    time.Time      `json:"activityDate"`
	DurationMinutes int            `json:"durationMinutes"`
	Status          ActivityStatus `json:"status"`
}

func (l ActivityLog) IsCompleted() bool {
	return l.Status == ActivityStatusCompleted
}

func (l ActivityLog) Validate() error {
	if l.SubjectID == "" {
		return Invalidf("activity log [%s]: subject id empty", l.ID)
	}
	if l.ActivityDate.IsZero() {
		return Invalidf("activity log [%s]: activity date missing", l.ID)
	}
	if l.DurationMinutes < 0 {
		return Invalidf("activity log [%s]: negative duration %d", l.ID, l.DurationMinutes)
	}
	if !l.Status.IsValid() {
		return Invalidf("activity log [%s]: unknown status %q", l.ID, l.Status)
	}
	return nil
}

// SetEntry is one set of an exercise. Reps is required for completed sets.
type SetEntry struct {
	Completed bool    `json:"completed"`
	Reps      *int    `json:"reps"`
	Weight    float64 `json:"weight"`
}

// ExerciseRecord is one exercise performed during a session (ActivityLog.ID == SessionID).
type ExerciseRecord struct {
	SessionID     string     `json:"sessionId"`
	PrimaryMuscle string     `json:"primaryMuscle"`
	Sets          []SetEntry `json:"sets"`
}

func (r ExerciseRecord) Validate() error {
	if r.SessionID == "" {
		return Invalidf("exercise record: session id empty")
	}
	for i, set := range r.Sets {
		if set.Weight < 0 {
			return Invalidf("exercise record [%s] set %d: negative weight %v", r.SessionID, i, set.Weight)
		}
		if set.Reps != nil && *set.Reps < 0 {
			return Invalidf("exercise record [%s] set %d: negative reps %d", r.SessionID, i, *set.Reps)
		}
		if set.Completed && set.Reps == nil {
			return Invalidf("exercise record [%s] set %d: completed set without reps", r.SessionID, i)
		}
	}
	return nil
}

// CheckIn is a periodic self report. Adherence ratings are in [0, 10] or nil when not given.
type CheckIn struct {
	ID               string     `json:"id"`
	SubjectID        string     `json:"subjectId"`
	SubmittedAt      *time.Time `json:"submittedAt"`
	DietAdherence    *int       `json:"dietAdherence"`
	WorkoutAdherence *int       `json:"workoutAdherence"`
}

const MaxAdherenceRating = 10

func (c CheckIn) Validate() error {
	if err := validateRating(c.ID, "diet adherence", c.DietAdherence); err != nil {
		return err
	}
	return validateRating(c.ID, "workout adherence", c.WorkoutAdherence)
}

func validateRating(checkInID, name string, rating *int) error {
	if rating != nil && (*rating < 0 || *rating > MaxAdherenceRating) {
		return Invalidf("check-in [%s]: %s %d out of range [0, %d]", checkInID, name, *rating, MaxAdherenceRating)
	}
	return nil
}

// AdherenceMean returns the mean of the present adherence ratings.
// ok is false when the check-in carries no rating at all.
func (c CheckIn) AdherenceMean() (mean float64, ok bool) {
	var sum, count int
	for _, rating := range []*int{c.DietAdherence, c.WorkoutAdherence} {
		if rating == nil {
			continue
		}
		sum += *rating
		count++
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// GoalTally is precomputed upstream, the counts are treated as opaque.
type GoalTally struct {
	SubjectID string `json:"subjectId"`
	Completed int    `json:"completed"`
	Active    int    `json:"active"`
}

func (g GoalTally) Validate() error {
	if g.Completed < 0 || g.Active < 0 {
		return Invalidf("goal tally [%s]: negative counts (completed %d, active %d)", g.SubjectID, g.Completed, g.Active)
	}
	return nil
}

// Subject is a coached client. CheckinFrequencyDays <= 0 means the default cadence.
type Subject struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	CheckinFrequencyDays int    `json:"checkinFrequencyDays"`
	Active               bool   `json:"active"`
}
