package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/2beens/coachstats/internal/coaching/engagement"
)

var csvHeader = []string{
	"rank",
	"subject_id",
	"name",
	"score",
	"adherence_score",
	"consistency_score",
	"goals_completed",
	"last_checkin_date",
}

func writeLeaderboardCSV(w io.Writer, ranked []engagement.RankedScore, names map[string]string) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range ranked {
		record := []string{
			strconv.Itoa(r.Rank),
			r.SubjectID,
			names[r.SubjectID],
			strconv.Itoa(r.Score),
			strconv.Itoa(r.AdherenceScore),
			strconv.Itoa(r.ConsistencyScore),
			strconv.Itoa(r.GoalsCompleted),
			r.LastCheckinDate,
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("write csv record [%s]: %w", r.SubjectID, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
