package sources

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/dashboard"
	"github.com/2beens/coachstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type SubjectRepo struct {
	db *pgxpool.Pool
}

func NewSubjectRepo(db *pgxpool.Pool) *SubjectRepo {
	return &SubjectRepo{
		db: db,
	}
}

func (r *SubjectRepo) GetSubject(ctx context.Context, subjectID string) (_ *coaching.Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.subjects.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	var s coaching.Subject
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, checkin_frequency_days, active FROM subject WHERE id = $1;`,
		subjectID,
	).Scan(&s.ID, &s.Name, &s.CheckinFrequencyDays, &s.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("subject %s: %w", subjectID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *SubjectRepo) ListActiveSubjects(ctx context.Context) (_ []coaching.Subject, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.subjects.list_active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, checkin_frequency_days, active FROM subject WHERE active ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []coaching.Subject
	for rows.Next() {
		var s coaching.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.CheckinFrequencyDays, &s.Active); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("subjects.count", len(subjects)))

	return subjects, nil
}

// ActivePlans returns the active plan assignments of a subject, latest start first.
func (r *SubjectRepo) ActivePlans(ctx context.Context, subjectID string) (_ []dashboard.PlanAssignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.plans.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT plan_id, kind, name, start_date, end_date, active
			FROM plan_assignment
			WHERE subject_id = $1 AND active
			ORDER BY start_date DESC;`,
		subjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []dashboard.PlanAssignment
	for rows.Next() {
		var (
			p    dashboard.PlanAssignment
			kind string
		)
		if err := rows.Scan(&p.PlanID, &kind, &p.Name, &p.StartDate, &p.EndDate, &p.Active); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		p.Kind = dashboard.PlanKind(kind)
		p.StartDate = calendarDate(p.StartDate)
		if p.EndDate != nil {
			end := calendarDate(*p.EndDate)
			p.EndDate = &end
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
