// Package sources reads coaching snapshots out of postgres.
// Rows are owned upstream; nothing here writes domain data.
package sources

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

//go:embed schema.sql
var Schema string

// Migrate creates the tables read by the sources, if missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sources.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// unbounded lower end of a time range
var beginningOfTime = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func rangeFrom(from time.Time) time.Time {
	if from.IsZero() {
		return beginningOfTime
	}
	return from
}

// calendarDate keeps only the wall-clock day of a DATE column, pinned to UTC
// midnight, so day keys never depend on the host time zone.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
