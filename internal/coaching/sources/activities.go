package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ActivityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepo(db *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{
		db: db,
	}
}

// ListActivities returns the subject's logs with from <= activity_date < to.
// A zero from means no lower bound.
func (r *ActivityRepo) ListActivities(ctx context.Context, subjectID string, from, to time.Time) (_ []coaching.ActivityLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.activities.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, subject_id, activity_date, duration_minutes, status
			FROM activity_log
			WHERE subject_id = $1 AND activity_date >= $2 AND activity_date < $3
			ORDER BY activity_date;`,
		subjectID, rangeFrom(from), to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []coaching.ActivityLog
	for rows.Next() {
		var (
			l      coaching.ActivityLog
			status string
		)
		if err := rows.Scan(&l.ID, &l.SubjectID, &l.ActivityDate, &l.DurationMinutes, &status); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		l.ActivityDate = calendarDate(l.ActivityDate)
		l.Status = coaching.ActivityStatus(status)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("activities.count", len(logs)))

	return logs, nil
}

func (r *ActivityRepo) ListExerciseRecords(ctx context.Context, sessionIDs []string) (_ []coaching.ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.exercise_records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("sessions.count", len(sessionIDs)))

	if len(sessionIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT session_id, primary_muscle, sets
			FROM exercise_record
			WHERE session_id = ANY($1)
			ORDER BY id;`,
		sessionIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []coaching.ExerciseRecord
	for rows.Next() {
		var (
			rec      coaching.ExerciseRecord
			setsJson []byte
		)
		if err := rows.Scan(&rec.SessionID, &rec.PrimaryMuscle, &setsJson); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(setsJson, &rec.Sets); err != nil {
			return nil, fmt.Errorf("unmarshal sets of session %s: %w", rec.SessionID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
