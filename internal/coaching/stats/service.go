// Package stats serves the coaching analytics: it reads snapshots from the
// sources and runs the pure engine computations over them.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/calendar"
	"github.com/2beens/coachstats/internal/coaching/dashboard"
	"github.com/2beens/coachstats/internal/coaching/engagement"
	"github.com/2beens/coachstats/internal/coaching/muscles"
	"github.com/2beens/coachstats/internal/coaching/nutrition"
	"github.com/2beens/coachstats/internal/coaching/sources"
	"github.com/2beens/coachstats/internal/coaching/streak"
	"github.com/2beens/coachstats/internal/coaching/volume"
	"github.com/2beens/coachstats/internal/telemetry/metrics"
	"github.com/2beens/coachstats/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

const (
	metricStreak      = "streak"
	metricVolume      = "volume"
	metricMuscles     = "muscles"
	metricEngagement  = "engagement"
	metricLeaderboard = "leaderboard"
	metricDashboard   = "dashboard"
	metricFood        = "food_nutrition"
	metricRecipe      = "recipe_nutrition"

	DefaultLeaderboardCacheTTL = 10 * time.Minute
	leaderboardCacheKeyPrefix  = "coachstats::leaderboard"
)

type activitySource interface {
	ListActivities(ctx context.Context, subjectID string, from, to time.Time) ([]coaching.ActivityLog, error)
	ListExerciseRecords(ctx context.Context, sessionIDs []string) ([]coaching.ExerciseRecord, error)
}

type checkInSource interface {
	ListCheckIns(ctx context.Context, subjectID string, from, to time.Time) ([]coaching.CheckIn, error)
	LastSubmittedCheckIn(ctx context.Context, subjectID string) (*coaching.CheckIn, error)
	GoalTally(ctx context.Context, subjectID string) (coaching.GoalTally, error)
}

type foodSource interface {
	GetFood(ctx context.Context, foodID string) (*nutrition.Food, error)
	ListRecipeIngredients(ctx context.Context, recipeID string) ([]nutrition.RecipeIngredient, error)
}

type subjectSource interface {
	GetSubject(ctx context.Context, subjectID string) (*coaching.Subject, error)
	ListActiveSubjects(ctx context.Context) ([]coaching.Subject, error)
	ActivePlans(ctx context.Context, subjectID string) ([]dashboard.PlanAssignment, error)
}

type Service struct {
	activities activitySource
	checkIns   checkInSource
	foods      foodSource
	subjects   subjectSource

	// optional, leaderboards are recomputed on every call without it
	redisClient    *redis.Client
	leaderboardTTL time.Duration
	metricsManager *metrics.Manager
}

type NewServiceParams struct {
	Activities     activitySource
	CheckIns       checkInSource
	Foods          foodSource
	Subjects       subjectSource
	RedisClient    *redis.Client
	LeaderboardTTL time.Duration
	MetricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	if params.LeaderboardTTL <= 0 {
		params.LeaderboardTTL = DefaultLeaderboardCacheTTL
	}
	if params.MetricsManager == nil {
		// one-shot tools (export, mcp stdio) have no metrics endpoint
		params.MetricsManager = metrics.NewManager("coachstats", "offline", prometheus.NewRegistry())
	}
	return &Service{
		activities:     params.Activities,
		checkIns:       params.CheckIns,
		foods:          params.Foods,
		subjects:       params.Subjects,
		redisClient:    params.RedisClient,
		leaderboardTTL: params.LeaderboardTTL,
		metricsManager: params.MetricsManager,
	}
}

// RecipeNutrition holds the totals of a whole recipe and of a single serving.
type RecipeNutrition struct {
	RecipeID   string                 `json:"recipeId"`
	Servings   float64                `json:"servings"`
	Totals     nutrition.RecipeTotals `json:"totals"`
	PerServing nutrition.RecipeTotals `json:"perServing"`
}

func (s *Service) Streak(ctx context.Context, subjectID string, now time.Time) (_ streak.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.streak")
	done := s.track(metricStreak)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	if _, err := s.subjects.GetSubject(ctx, subjectID); err != nil {
		return streak.Result{}, fmt.Errorf("get subject: %w", err)
	}

	logs, err := s.activities.ListActivities(ctx, subjectID, time.Time{}, historyEnd(now))
	if err != nil {
		return streak.Result{}, fmt.Errorf("list activities: %w", err)
	}

	return streak.FromActivityLogs(logs, now)
}

func (s *Service) Volume(ctx context.Context, subjectID string, lookbackDays int, now time.Time) (_ volume.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.volume")
	done := s.track(metricVolume)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("subject.id", subjectID),
		attribute.Int("lookback.days", lookbackDays),
	)

	logs, records, err := s.completedSessions(ctx, subjectID, lookbackDays, now)
	if err != nil {
		return volume.Result{}, err
	}

	return volume.Aggregate(logs, records, now, lookbackDays)
}

func (s *Service) Muscles(ctx context.Context, subjectID string, lookbackDays int, now time.Time) (_ []muscles.MuscleCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.muscles")
	done := s.track(metricMuscles)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("subject.id", subjectID),
		attribute.Int("lookback.days", lookbackDays),
	)

	_, records, err := s.completedSessions(ctx, subjectID, lookbackDays, now)
	if err != nil {
		return nil, err
	}

	return muscles.Distribution(records), nil
}

// completedSessions returns the completed sessions inside the lookback window
// together with their exercise records.
func (s *Service) completedSessions(
	ctx context.Context,
	subjectID string,
	lookbackDays int,
	now time.Time,
) ([]coaching.ActivityLog, []coaching.ExerciseRecord, error) {
	if lookbackDays < 0 {
		return nil, nil, coaching.Invalidf("lookback days must be >= 0, got %d", lookbackDays)
	}

	if _, err := s.subjects.GetSubject(ctx, subjectID); err != nil {
		return nil, nil, fmt.Errorf("get subject: %w", err)
	}

	// one extra day on each side, the exact window is cut on calendar days below
	from := now.AddDate(0, 0, -(lookbackDays + 1))
	logs, err := s.activities.ListActivities(ctx, subjectID, from, historyEnd(now))
	if err != nil {
		return nil, nil, fmt.Errorf("list activities: %w", err)
	}

	var (
		sessions   []coaching.ActivityLog
		sessionIDs []string
	)
	for _, l := range logs {
		if err := l.Validate(); err != nil {
			return nil, nil, err
		}
		if !l.IsCompleted() || !calendar.InWindow(l.ActivityDate, now, lookbackDays) {
			continue
		}
		sessions = append(sessions, l)
		sessionIDs = append(sessionIDs, l.ID)
	}

	if len(sessionIDs) == 0 {
		return sessions, nil, nil
	}

	records, err := s.activities.ListExerciseRecords(ctx, sessionIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("list exercise records: %w", err)
	}

	return sessions, records, nil
}

func (s *Service) Engagement(ctx context.Context, subjectID string, now time.Time) (_ engagement.SubjectScore, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.engagement")
	done := s.track(metricEngagement)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	if _, err := s.subjects.GetSubject(ctx, subjectID); err != nil {
		return engagement.SubjectScore{}, fmt.Errorf("get subject: %w", err)
	}

	return s.score(ctx, subjectID, now)
}

func (s *Service) score(ctx context.Context, subjectID string, now time.Time) (engagement.SubjectScore, error) {
	from := now.AddDate(0, 0, -(engagement.WindowDays + 1))
	checkins, err := s.checkIns.ListCheckIns(ctx, subjectID, from, historyEnd(now))
	if err != nil {
		return engagement.SubjectScore{}, fmt.Errorf("list check-ins: %w", err)
	}

	// the last check-in date is reported even when it is older than the window
	last, err := s.lastSubmittedCheckIn(ctx, subjectID)
	if err != nil {
		return engagement.SubjectScore{}, err
	}
	if last != nil && !containsCheckIn(checkins, last.ID) {
		checkins = append(checkins, *last)
	}

	goals, err := s.checkIns.GoalTally(ctx, subjectID)
	if err != nil {
		return engagement.SubjectScore{}, fmt.Errorf("goal tally: %w", err)
	}

	return engagement.Score(subjectID, checkins, goals, now)
}

// Leaderboard ranks the active subjects by engagement score. limit <= 0 means all of them.
// Rankings are cached in redis per calendar day and limit.
func (s *Service) Leaderboard(ctx context.Context, limit int, now time.Time) (_ []engagement.RankedScore, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.leaderboard")
	done := s.track(metricLeaderboard)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	if limit < 0 {
		return nil, coaching.Invalidf("leaderboard limit must be >= 0, got %d", limit)
	}

	cacheKey := leaderboardCacheKey(now, limit)
	if cached, ok := s.cachedLeaderboard(ctx, cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	subjects, err := s.subjects.ListActiveSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active subjects: %w", err)
	}

	scores := make([]engagement.SubjectScore, 0, len(subjects))
	for _, subject := range subjects {
		score, err := s.score(ctx, subject.ID, now)
		if err != nil {
			return nil, fmt.Errorf("score subject %s: %w", subject.ID, err)
		}
		scores = append(scores, score)
	}

	ranked := engagement.Leaderboard(scores, limit)
	s.cacheLeaderboard(ctx, cacheKey, ranked)

	return ranked, nil
}

func (s *Service) Dashboard(ctx context.Context, subjectID string, now time.Time) (_ dashboard.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.dashboard")
	done := s.track(metricDashboard)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	subject, err := s.subjects.GetSubject(ctx, subjectID)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("get subject: %w", err)
	}

	logs, err := s.activities.ListActivities(ctx, subjectID, time.Time{}, historyEnd(now))
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("list activities: %w", err)
	}

	var checkins []coaching.CheckIn
	last, err := s.lastSubmittedCheckIn(ctx, subjectID)
	if err != nil {
		return dashboard.Summary{}, err
	}
	if last != nil {
		checkins = append(checkins, *last)
	}

	plans, err := s.subjects.ActivePlans(ctx, subjectID)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("active plans: %w", err)
	}

	return dashboard.Build(dashboard.Input{
		Activities:           logs,
		CheckIns:             checkins,
		CheckinFrequencyDays: subject.CheckinFrequencyDays,
		WorkoutPlan:          pickPlan(plans, dashboard.PlanKindWorkout, now),
		DietPlan:             pickPlan(plans, dashboard.PlanKindDiet, now),
	}, now)
}

func (s *Service) FoodNutrition(ctx context.Context, foodID string, quantity float64, unit string) (_ nutrition.Nutrition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.nutrition.food")
	done := s.track(metricFood)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("food.id", foodID),
		attribute.Float64("quantity", quantity),
		attribute.String("unit", unit),
	)

	food, err := s.foods.GetFood(ctx, foodID)
	if err != nil {
		return nutrition.Nutrition{}, fmt.Errorf("get food: %w", err)
	}

	return nutrition.ScaleNutrition(*food, quantity, unit)
}

func (s *Service) RecipeNutrition(ctx context.Context, recipeID string, servings float64) (_ RecipeNutrition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.nutrition.recipe")
	done := s.track(metricRecipe)
	defer func() {
		done(err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("recipe.id", recipeID),
		attribute.Float64("servings", servings),
	)

	ingredients, err := s.foods.ListRecipeIngredients(ctx, recipeID)
	if err != nil {
		return RecipeNutrition{}, fmt.Errorf("list recipe ingredients: %w", err)
	}

	totals, err := nutrition.RollupRecipe(ingredients)
	if err != nil {
		return RecipeNutrition{}, err
	}

	perServing, err := totals.PerServing(servings)
	if err != nil {
		return RecipeNutrition{}, err
	}

	return RecipeNutrition{
		RecipeID:   recipeID,
		Servings:   servings,
		Totals:     totals,
		PerServing: perServing,
	}, nil
}

func (s *Service) lastSubmittedCheckIn(ctx context.Context, subjectID string) (*coaching.CheckIn, error) {
	last, err := s.checkIns.LastSubmittedCheckIn(ctx, subjectID)
	if errors.Is(err, sources.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last submitted check-in: %w", err)
	}
	return last, nil
}

func (s *Service) cachedLeaderboard(ctx context.Context, cacheKey string) ([]engagement.RankedScore, bool) {
	if s.redisClient == nil {
		return nil, false
	}

	cachedBytes, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnf("get leaderboard [%s] from cache: %s", cacheKey, err)
		}
		s.metricsManager.CounterLeaderboardCacheMisses.Inc()
		return nil, false
	}

	var ranked []engagement.RankedScore
	if err := json.Unmarshal(cachedBytes, &ranked); err != nil {
		log.Errorf("failed to unmarshal cached leaderboard [%s]: %s", cacheKey, err)
		s.metricsManager.CounterLeaderboardCacheMisses.Inc()
		return nil, false
	}

	log.Tracef("leaderboard [%s] served from cache", cacheKey)
	s.metricsManager.CounterLeaderboardCacheHits.Inc()
	return ranked, true
}

func (s *Service) cacheLeaderboard(ctx context.Context, cacheKey string, ranked []engagement.RankedScore) {
	if s.redisClient == nil {
		return
	}

	rankedBytes, err := json.Marshal(ranked)
	if err != nil {
		log.Errorf("failed to marshal leaderboard [%s]: %s", cacheKey, err)
		return
	}
	if err := s.redisClient.Set(ctx, cacheKey, rankedBytes, s.leaderboardTTL).Err(); err != nil {
		log.Errorf("failed to cache leaderboard [%s]: %s", cacheKey, err)
	}
}

// track records the duration and outcome of one computation.
func (s *Service) track(metric string) func(err error) {
	begin := time.Now()
	return func(err error) {
		s.metricsManager.HistComputationDuration.WithLabelValues(metric).Observe(time.Since(begin).Seconds())
		if err != nil {
			s.metricsManager.CounterComputationErrors.WithLabelValues(metric).Inc()
			return
		}
		s.metricsManager.CounterComputations.WithLabelValues(metric).Inc()
	}
}

func leaderboardCacheKey(now time.Time, limit int) string {
	return fmt.Sprintf("%s::%s::%d", leaderboardCacheKeyPrefix, calendar.Key(now), limit)
}

// historyEnd is the exclusive upper bound when reading logs up to now.
func historyEnd(now time.Time) time.Time {
	return now.AddDate(0, 0, 1)
}

func containsCheckIn(checkins []coaching.CheckIn, id string) bool {
	for _, c := range checkins {
		if c.ID == id {
			return true
		}
	}
	return false
}

// pickPlan prefers an assignment of the given kind active on now, then any of that kind.
func pickPlan(plans []dashboard.PlanAssignment, kind dashboard.PlanKind, now time.Time) *dashboard.PlanAssignment {
	var fallback *dashboard.PlanAssignment
	for i := range plans {
		if plans[i].Kind != kind {
			continue
		}
		if plans[i].IsActiveOn(now) {
			return &plans[i]
		}
		if fallback == nil {
			fallback = &plans[i]
		}
	}
	return fallback
}
