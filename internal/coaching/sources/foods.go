package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/coachstats/internal/coaching/nutrition"
	"github.com/2beens/coachstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneHour         = 60 * 60
	foodCacheExpire = oneHour * 6 // seconds
	megabyte        = 1024 * 1024
	// DefaultFoodCacheSize is the freecache size used when none is given.
	DefaultFoodCacheSize = 20 * megabyte
)

// FoodRepo keeps recently read food records in an in-process cache.
// Food records are treated as immutable reference data.
type FoodRepo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewFoodRepo(db *pgxpool.Pool, cacheSize int) *FoodRepo {
	if cacheSize <= 0 {
		cacheSize = DefaultFoodCacheSize
	}
	return &FoodRepo{
		db:    db,
		cache: freecache.NewCache(cacheSize),
	}
}

func (r *FoodRepo) GetFood(ctx context.Context, foodID string) (_ *nutrition.Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.foods.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("food.id", foodID))

	if food, ok := r.cachedFood(foodID); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return food, nil
	}

	var food nutrition.Food
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, name, protein_per_100g, carbs_per_100g, fat_per_100g, fiber_per_100g,
			       default_serving_size, default_serving_unit
			FROM food
			WHERE id = $1;`,
		foodID,
	).Scan(
		&food.ID, &food.Name, &food.ProteinPer100g, &food.CarbsPer100g, &food.FatPer100g, &food.FiberPer100g,
		&food.DefaultServingSize, &food.DefaultServingUnit,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("food %s: %w", foodID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	r.cacheFood(food)

	return &food, nil
}

// ListRecipeIngredients returns ErrNotFound when the recipe does not exist.
// An existing recipe without ingredients yields an empty list.
func (r *FoodRepo) ListRecipeIngredients(ctx context.Context, recipeID string) (_ []nutrition.RecipeIngredient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sources.recipes.ingredients")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("recipe.id", recipeID))

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recipe WHERE id = $1);`, recipeID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check recipe exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("recipe %s: %w", recipeID, ErrNotFound)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT ri.quantity, ri.unit,
			       f.id, f.name, f.protein_per_100g, f.carbs_per_100g, f.fat_per_100g, f.fiber_per_100g,
			       f.default_serving_size, f.default_serving_unit
			FROM recipe_ingredient ri
			JOIN food f ON f.id = ri.food_id
			WHERE ri.recipe_id = $1
			ORDER BY ri.id;`,
		recipeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make([]nutrition.RecipeIngredient, 0)
	for rows.Next() {
		var ing nutrition.RecipeIngredient
		if err := rows.Scan(
			&ing.Quantity, &ing.Unit,
			&ing.Food.ID, &ing.Food.Name, &ing.Food.ProteinPer100g, &ing.Food.CarbsPer100g, &ing.Food.FatPer100g, &ing.Food.FiberPer100g,
			&ing.Food.DefaultServingSize, &ing.Food.DefaultServingUnit,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("ingredients.count", len(ingredients)))

	for _, ing := range ingredients {
		r.cacheFood(ing.Food)
	}

	return ingredients, nil
}

func foodCacheKey(foodID string) []byte {
	return []byte("food::" + foodID)
}

func (r *FoodRepo) cachedFood(foodID string) (*nutrition.Food, bool) {
	foodBytes, err := r.cache.Get(foodCacheKey(foodID))
	if err != nil {
		return nil, false
	}
	food := &nutrition.Food{}
	if err := json.Unmarshal(foodBytes, food); err != nil {
		log.Errorf("failed to unmarshal food %s from cache: %s", foodID, err)
		return nil, false
	}
	log.Tracef("found food %s in cache", foodID)
	return food, true
}

func (r *FoodRepo) cacheFood(food nutrition.Food) {
	foodBytes, err := json.Marshal(food)
	if err != nil {
		log.Errorf("failed to marshal food %s for cache: %s", food.ID, err)
		return
	}
	if err := r.cache.Set(foodCacheKey(food.ID), foodBytes, foodCacheExpire); err != nil {
		log.Errorf("failed to write food %s to cache: %s", food.ID, err)
	}
}
