package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/coachstats/internal/coaching/dashboard"
	"github.com/2beens/coachstats/internal/coaching/engagement"
	"github.com/2beens/coachstats/internal/coaching/muscles"
	"github.com/2beens/coachstats/internal/coaching/nutrition"
	"github.com/2beens/coachstats/internal/coaching/stats"
	"github.com/2beens/coachstats/internal/coaching/streak"
	"github.com/2beens/coachstats/internal/coaching/volume"
)

// statsService is the subset of stats.Service the tools read from.
type statsService interface {
	Streak(ctx context.Context, subjectID string, now time.Time) (streak.Result, error)
	Volume(ctx context.Context, subjectID string, lookbackDays int, now time.Time) (volume.Result, error)
	Muscles(ctx context.Context, subjectID string, lookbackDays int, now time.Time) ([]muscles.MuscleCount, error)
	Engagement(ctx context.Context, subjectID string, now time.Time) (engagement.SubjectScore, error)
	Leaderboard(ctx context.Context, limit int, now time.Time) ([]engagement.RankedScore, error)
	Dashboard(ctx context.Context, subjectID string, now time.Time) (dashboard.Summary, error)
	FoodNutrition(ctx context.Context, foodID string, quantity float64, unit string) (nutrition.Nutrition, error)
	RecipeNutrition(ctx context.Context, recipeID string, servings float64) (stats.RecipeNutrition, error)
}

// contextService is what the tool handlers call; the clock is resolved here.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	Streak(ctx context.Context, subjectID string) (streak.Result, error)
	Volume(ctx context.Context, subjectID string, lookbackDays int) (volume.Result, error)
	Muscles(ctx context.Context, subjectID string, lookbackDays int) ([]muscles.MuscleCount, error)
	Engagement(ctx context.Context, subjectID string) (engagement.SubjectScore, error)
	Leaderboard(ctx context.Context, limit int) ([]engagement.RankedScore, error)
	Dashboard(ctx context.Context, subjectID string) (dashboard.Summary, error)
	FoodNutrition(ctx context.Context, foodID string, quantity float64, unit string) (nutrition.Nutrition, error)
	RecipeNutrition(ctx context.Context, recipeID string, servings float64) (stats.RecipeNutrition, error)
}

type ContextService struct {
	schema SchemaRepo
	stats  statsService
	now    func() time.Time
}

func NewContextService(schemaRepo SchemaRepo, statsService statsService, now func() time.Time) *ContextService {
	if now == nil {
		now = time.Now
	}
	return &ContextService{
		schema: schemaRepo,
		stats:  statsService,
		now:    now,
	}
}

// GetSchema returns the coaching tables as markdown: columns, types, nullable, default.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetCoachingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatCoachingSchema(cols), nil
}

func formatCoachingSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Coaching DB Schema\n\nNo coaching tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Coaching DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) Streak(ctx context.Context, subjectID string) (streak.Result, error) {
	return s.stats.Streak(ctx, subjectID, s.now())
}

func (s *ContextService) Volume(ctx context.Context, subjectID string, lookbackDays int) (volume.Result, error) {
	return s.stats.Volume(ctx, subjectID, lookbackDays, s.now())
}

func (s *ContextService) Muscles(ctx context.Context, subjectID string, lookbackDays int) ([]muscles.MuscleCount, error) {
	return s.stats.Muscles(ctx, subjectID, lookbackDays, s.now())
}

func (s *ContextService) Engagement(ctx context.Context, subjectID string) (engagement.SubjectScore, error) {
	return s.stats.Engagement(ctx, subjectID, s.now())
}

func (s *ContextService) Leaderboard(ctx context.Context, limit int) ([]engagement.RankedScore, error) {
	return s.stats.Leaderboard(ctx, limit, s.now())
}

func (s *ContextService) Dashboard(ctx context.Context, subjectID string) (dashboard.Summary, error) {
	return s.stats.Dashboard(ctx, subjectID, s.now())
}

func (s *ContextService) FoodNutrition(ctx context.Context, foodID string, quantity float64, unit string) (nutrition.Nutrition, error) {
	return s.stats.FoodNutrition(ctx, foodID, quantity, unit)
}

func (s *ContextService) RecipeNutrition(ctx context.Context, recipeID string, servings float64) (stats.RecipeNutrition, error) {
	return s.stats.RecipeNutrition(ctx, recipeID, servings)
}
