package stats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/dashboard"
	"github.com/2beens/coachstats/internal/coaching/engagement"
	"github.com/2beens/coachstats/internal/coaching/muscles"
	"github.com/2beens/coachstats/internal/coaching/nutrition"
	"github.com/2beens/coachstats/internal/coaching/sources"
	"github.com/2beens/coachstats/internal/coaching/streak"
	"github.com/2beens/coachstats/internal/coaching/volume"
	"github.com/2beens/coachstats/internal/telemetry/tracing"
	"github.com/2beens/coachstats/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const (
	defaultQuantity = 100
	defaultUnit     = "g"
	defaultServings = 1
)

type service interface {
	Streak(ctx context.Context, subjectID string, now time.Time) (streak.Result, error)
	Volume(ctx context.Context, subjectID string, lookbackDays int, now time.Time) (volume.Result, error)
	Muscles(ctx context.Context, subjectID string, lookbackDays int, now time.Time) ([]muscles.MuscleCount, error)
	Engagement(ctx context.Context, subjectID string, now time.Time) (engagement.SubjectScore, error)
	Leaderboard(ctx context.Context, limit int, now time.Time) ([]engagement.RankedScore, error)
	Dashboard(ctx context.Context, subjectID string, now time.Time) (dashboard.Summary, error)
	FoodNutrition(ctx context.Context, foodID string, quantity float64, unit string) (nutrition.Nutrition, error)
	RecipeNutrition(ctx context.Context, recipeID string, servings float64) (RecipeNutrition, error)
}

type Handler struct {
	service service
	// wall clock, read once per request
	now func() time.Time
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// NewHandlerWithClock is NewHandler with a fixed clock source.
func NewHandlerWithClock(service service, now func() time.Time) *Handler {
	return &Handler{
		service: service,
		now:     now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/coaching/subjects/{id}/streak", h.HandleStreak).Methods("GET", "OPTIONS").Name("coaching-streak")
	r.HandleFunc("/coaching/subjects/{id}/volume", h.HandleVolume).Methods("GET", "OPTIONS").Name("coaching-volume")
	r.HandleFunc("/coaching/subjects/{id}/muscles", h.HandleMuscles).Methods("GET", "OPTIONS").Name("coaching-muscles")
	r.HandleFunc("/coaching/subjects/{id}/engagement", h.HandleEngagement).Methods("GET", "OPTIONS").Name("coaching-engagement")
	r.HandleFunc("/coaching/subjects/{id}/dashboard", h.HandleDashboard).Methods("GET", "OPTIONS").Name("coaching-dashboard")
	r.HandleFunc("/coaching/leaderboard", h.HandleLeaderboard).Methods("GET", "OPTIONS").Name("coaching-leaderboard")
	r.HandleFunc("/coaching/foods/{id}/nutrition", h.HandleFoodNutrition).Methods("GET", "OPTIONS").Name("coaching-food-nutrition")
	r.HandleFunc("/coaching/recipes/{id}/nutrition", h.HandleRecipeNutrition).Methods("GET", "OPTIONS").Name("coaching-recipe-nutrition")
}

func (h *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.streak")
	defer span.End()

	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.service.Streak(ctx, subjectID, h.now())
	if err != nil {
		writeError(w, fmt.Errorf("streak of subject %s: %w", subjectID, err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.volume")
	defer span.End()

	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}
	days, ok := queryInt(w, r, "days", volume.DefaultLookbackDays)
	if !ok {
		return
	}

	res, err := h.service.Volume(ctx, subjectID, days, h.now())
	if err != nil {
		writeError(w, fmt.Errorf("volume of subject %s: %w", subjectID, err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.muscles")
	defer span.End()

	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}
	days, ok := queryInt(w, r, "days", volume.DefaultLookbackDays)
	if !ok {
		return
	}

	res, err := h.service.Muscles(ctx, subjectID, days, h.now())
	if err != nil {
		writeError(w, fmt.Errorf("muscles of subject %s: %w", subjectID, err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleEngagement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.engagement")
	defer span.End()

	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.service.Engagement(ctx, subjectID, h.now())
	if err != nil {
		writeError(w, fmt.Errorf("engagement of subject %s: %w", subjectID, err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.dashboard")
	defer span.End()

	subjectID, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.service.Dashboard(ctx, subjectID, h.now())
	if err != nil {
		writeError(w, fmt.Errorf("dashboard of subject %s: %w", subjectID, err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.leaderboard")
	defer span.End()

	limit, ok := queryInt(w, r, "limit", engagement.LeaderboardSize)
	if !ok {
		return
	}

	res, err := h.service.Leaderboard(ctx, limit, h.now())
	if err != nil {
		writeError(w, fmt.Errorf("leaderboard: %w", err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleFoodNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.nutrition.food")
	defer span.End()

	foodID, ok := pathID(w, r)
	if !ok {
		return
	}
	quantity, ok := queryFloat(w, r, "quantity", defaultQuantity)
	if !ok {
		return
	}
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = defaultUnit
	}

	res, err := h.service.FoodNutrition(ctx, foodID, quantity, unit)
	if err != nil {
		writeError(w, fmt.Errorf("nutrition of food %s: %w", foodID, err))
		return
	}
	writeJSON(w, res)
}

func (h *Handler) HandleRecipeNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coaching.nutrition.recipe")
	defer span.End()

	recipeID, ok := pathID(w, r)
	if !ok {
		return
	}
	servings, ok := queryFloat(w, r, "servings", defaultServings)
	if !ok {
		return
	}

	res, err := h.service.RecipeNutrition(ctx, recipeID, servings)
	if err != nil {
		writeError(w, fmt.Errorf("nutrition of recipe %s: %w", recipeID, err))
		return
	}
	writeJSON(w, res)
}

func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		log.Debugf("invalid id [%s]: %s", id, err)
		http.Error(w, "invalid id", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid %s", name), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func queryFloat(w http.ResponseWriter, r *http.Request, name string, defaultValue float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid %s", name), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, coaching.ErrInvalidInput):
		log.Debugf("bad request: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, sources.ErrNotFound):
		log.Debugf("not found: %s", err)
		http.Error(w, "not found", http.StatusNotFound)
	default:
		log.Errorf("%s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := pkg.WriteJSON(w, v, http.StatusOK); err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
