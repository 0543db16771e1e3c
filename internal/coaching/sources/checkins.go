package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	goalStatusActive    = "active"
	goalStatusCompleted = "completed"
)

type CheckInRepo struct {
	db *pgxpool.Pool
}

func NewCheckInRepo(db *pgxpool.Pool) *CheckInRepo {
	return &CheckInRepo{
		db: db,
	}
}

// ListCheckIns returns the subject's check-ins submitted within [from, to).
// Pending check-ins (not submitted yet) are not returned.
func (r *CheckInRepo) ListCheckIns(ctx context.Context, subjectID string, from, to time.Time) (_ []coaching.CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.checkins.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, subject_id, submitted_at, diet_adherence, workout_adherence
			FROM check_in
			WHERE subject_id = $1 AND submitted_at >= $2 AND submitted_at < $3
			ORDER BY submitted_at;`,
		subjectID, rangeFrom(from), to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []coaching.CheckIn
	for rows.Next() {
		var c coaching.CheckIn
		if err := rows.Scan(&c.ID, &c.SubjectID, &c.SubmittedAt, &c.DietAdherence, &c.WorkoutAdherence); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return checkins, nil
}

// LastSubmittedCheckIn returns ErrNotFound when the subject never submitted one.
func (r *CheckInRepo) LastSubmittedCheckIn(ctx context.Context, subjectID string) (_ *coaching.CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.checkins.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	var c coaching.CheckIn
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, subject_id, submitted_at, diet_adherence, workout_adherence
			FROM check_in
			WHERE subject_id = $1 AND submitted_at IS NOT NULL
			ORDER BY submitted_at DESC
			LIMIT 1;`,
		subjectID,
	).Scan(&c.ID, &c.SubjectID, &c.SubmittedAt, &c.DietAdherence, &c.WorkoutAdherence)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CheckInRepo) GoalTally(ctx context.Context, subjectID string) (_ coaching.GoalTally, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.goals.tally")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	tally := coaching.GoalTally{SubjectID: subjectID}
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				count(*) FILTER (WHERE status = $2),
				count(*) FILTER (WHERE status = $3)
			FROM goal
			WHERE subject_id = $1;`,
		subjectID, goalStatusCompleted, goalStatusActive,
	).Scan(&tally.Completed, &tally.Active)
	if err != nil {
		return coaching.GoalTally{}, err
	}

	return tally, nil
}
