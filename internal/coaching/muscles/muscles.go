package muscles

import (
	"sort"
	"strings"

	"github.com/2beens/coachstats/internal/coaching"
)

const (
	DefaultTopN = 8
	OtherMuscle = "other"
)

type MuscleCount struct {
	Muscle string `json:"muscle"`
	Count  int    `json:"count"`
}

// Distribution returns the DefaultTopN most trained primary muscles.
func Distribution(records []coaching.ExerciseRecord) []MuscleCount {
	return TopN(records, DefaultTopN)
}

// TopN tallies one hit per exercise record (not per set) for its primary muscle
// and returns the n most frequent muscles, sorted by count descending.
// Ties keep the order in which the muscles were first seen.
func TopN(records []coaching.ExerciseRecord, n int) []MuscleCount {
	muscle2idx := make(map[string]int)
	counts := make([]MuscleCount, 0)
	for _, rec := range records {
		muscle := normalizeMuscle(rec.PrimaryMuscle)
		idx, ok := muscle2idx[muscle]
		if !ok {
			idx = len(counts)
			muscle2idx[muscle] = idx
			counts = append(counts, MuscleCount{Muscle: muscle})
		}
		counts[idx].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func normalizeMuscle(muscle string) string {
	muscle = strings.ToLower(strings.TrimSpace(muscle))
	if muscle == "" || muscle == "unknown" {
		return OtherMuscle
	}
	return muscle
}
