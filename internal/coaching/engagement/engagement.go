// Package engagement scores how engaged a subject is with their coaching program
// and ranks subjects into a leaderboard.
//
// The composite score blends three parts:
//   - adherence: mean of the self-reported diet/workout adherence ratings, scaled to 0-100
//   - consistency: submitted check-ins against the expected weekly cadence, capped at 100
//   - goal credit: 10 points per completed goal, capped at 20
package engagement

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/calendar"
)

const (
	WindowDays = 30
	// ExpectedCheckins assumes a weekly check-in cadence over the window.
	ExpectedCheckins  = 4
	GoalCreditPerGoal = 10
	GoalCreditCap     = 20
	LeaderboardSize   = 10

	adherenceWeight   = 0.4
	consistencyWeight = 0.4
)

type SubjectScore struct {
	SubjectID        string `json:"subjectId"`
	Score            int    `json:"score"`
	AdherenceScore   int    `json:"adherenceScore"`
	ConsistencyScore int    `json:"consistencyScore"`
	GoalsCompleted   int    `json:"goalsCompleted"`
	// LastCheckinDate is the YYYY-MM-DD key of the latest submitted check-in, empty when none.
	LastCheckinDate string `json:"lastCheckinDate"`
}

type RankedScore struct {
	Rank int `json:"rank"`
	SubjectScore
}

// Score computes the engagement of one subject from the check-ins submitted
// within the trailing WindowDays window. A subject without any activity gets
// a zeroed record, not an error.
func Score(
	subjectID string,
	checkins []coaching.CheckIn,
	goals coaching.GoalTally,
	now time.Time,
) (SubjectScore, error) {
	if err := goals.Validate(); err != nil {
		return SubjectScore{}, err
	}

	var (
		inWindow     int
		meansSum     float64
		meansCount   int
		lastCheckin  time.Time
		hasSubmitted bool
	)
	for _, c := range checkins {
		if err := c.Validate(); err != nil {
			return SubjectScore{}, err
		}
		if c.SubmittedAt == nil {
			continue
		}

		submitted := *c.SubmittedAt
		if !hasSubmitted || calendar.Key(submitted) > calendar.Key(lastCheckin) {
			lastCheckin = submitted
			hasSubmitted = true
		}

		if !calendar.InWindow(submitted, now, WindowDays) {
			continue
		}
		inWindow++
		if mean, ok := c.AdherenceMean(); ok {
			meansSum += mean
			meansCount++
		}
	}

	score := SubjectScore{
		SubjectID:      subjectID,
		GoalsCompleted: goals.Completed,
	}
	if hasSubmitted {
		score.LastCheckinDate = calendar.Key(lastCheckin)
	}

	if meansCount > 0 {
		// ratings are 0-10, scale the average to 0-100
		score.AdherenceScore = int(math.Round(meansSum / float64(meansCount) * 10))
	}
	score.ConsistencyScore = min(100, int(math.Round(float64(inWindow)/ExpectedCheckins*100)))

	goalCredit := min(goals.Completed*GoalCreditPerGoal, GoalCreditCap)
	score.Score = int(math.Round(
		float64(score.AdherenceScore)*adherenceWeight +
			float64(score.ConsistencyScore)*consistencyWeight +
			float64(goalCredit),
	))

	return score, nil
}

// Leaderboard ranks the scores descending. Equal scores keep their input order.
// A limit <= 0 returns all subjects.
func Leaderboard(scores []SubjectScore, limit int) []RankedScore {
	sorted := make([]SubjectScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ranked := make([]RankedScore, 0, len(sorted))
	for i, s := range sorted {
		ranked = append(ranked, RankedScore{
			Rank:         i + 1,
			SubjectScore: s,
		})
	}
	return ranked
}
