// Package nutrition derives calories and macros from per-100g food data.
// Calories are never stored, they are always derived from the macros,
// so calories == round(4P + 4C + 9F) holds for every value this package returns.
package nutrition

import (
	"math"
	"strings"

	"github.com/2beens/coachstats/internal/coaching"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	gramsPerOunce = 28.35
	gramsPerPound = 453.6
)

// Food holds nutrient values per 100 grams.
type Food struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ProteinPer100g     float64 `json:"proteinPer100g"`
	CarbsPer100g       float64 `json:"carbsPer100g"`
	FatPer100g         float64 `json:"fatPer100g"`
	FiberPer100g       float64 `json:"fiberPer100g"`
	DefaultServingSize float64 `json:"defaultServingSize"`
	DefaultServingUnit string  `json:"defaultServingUnit"`
}

type RecipeIngredient struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Food     Food    `json:"food"`
}

// Nutrition is the scaled nutrient content of a quantity of food.
type Nutrition struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type RecipeTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func CaloriesFromMacros(proteinG, carbsG, fatG float64) int {
	return int(math.Round(proteinG*kcalPerGramProtein + carbsG*kcalPerGramCarbs + fatG*kcalPerGramFat))
}

// ScaleNutrition converts quantity+unit to grams and scales the per-100g values.
// Each macro is rounded to one decimal, calories are derived from the rounded macros.
func ScaleNutrition(food Food, quantity float64, unit string) (Nutrition, error) {
	grams, err := toGrams(food, quantity, unit)
	if err != nil {
		return Nutrition{}, err
	}

	multiplier := grams / 100
	protein := round1(food.ProteinPer100g * multiplier)
	carbs := round1(food.CarbsPer100g * multiplier)
	fat := round1(food.FatPer100g * multiplier)

	return Nutrition{
		Calories: CaloriesFromMacros(protein, carbs, fat),
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    round1(food.FiberPer100g * multiplier),
	}, nil
}

// RollupRecipe sums the unrounded macros of all ingredients and rounds each total once.
func RollupRecipe(ingredients []RecipeIngredient) (RecipeTotals, error) {
	var protein, carbs, fat float64
	for _, ing := range ingredients {
		grams, err := toGrams(ing.Food, ing.Quantity, ing.Unit)
		if err != nil {
			return RecipeTotals{}, err
		}
		multiplier := grams / 100
		protein += ing.Food.ProteinPer100g * multiplier
		carbs += ing.Food.CarbsPer100g * multiplier
		fat += ing.Food.FatPer100g * multiplier
	}
	return newTotals(protein, carbs, fat), nil
}

// RollupMeal totals a logged meal with the same rule as a recipe.
func RollupMeal(items []RecipeIngredient) (RecipeTotals, error) {
	return RollupRecipe(items)
}

// PerServing splits recipe totals into the given number of servings.
func (t RecipeTotals) PerServing(servings float64) (RecipeTotals, error) {
	if servings <= 0 || math.IsNaN(servings) || math.IsInf(servings, 0) {
		return RecipeTotals{}, coaching.Invalidf("servings must be > 0, got %v", servings)
	}
	return newTotals(t.Protein/servings, t.Carbs/servings, t.Fat/servings), nil
}

func newTotals(protein, carbs, fat float64) RecipeTotals {
	protein, carbs, fat = round1(protein), round1(carbs), round1(fat)
	return RecipeTotals{
		Calories: CaloriesFromMacros(protein, carbs, fat),
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

func toGrams(food Food, quantity float64, unit string) (float64, error) {
	if quantity < 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, coaching.Invalidf("food [%s]: quantity must be >= 0, got %v", food.ID, quantity)
	}
	switch normalizeUnit(unit) {
	case "oz":
		return quantity * gramsPerOunce, nil
	case "lb":
		return quantity * gramsPerPound, nil
	case "serving":
		return quantity * servingGrams(food), nil
	default:
		// grams and unknown units
		return quantity, nil
	}
}

// servingGrams converts the food's default serving to grams.
// A missing serving size falls back to 100g, the reference amount of the food data.
func servingGrams(food Food) float64 {
	if food.DefaultServingSize <= 0 {
		return 100
	}
	switch normalizeUnit(food.DefaultServingUnit) {
	case "oz":
		return food.DefaultServingSize * gramsPerOunce
	case "lb":
		return food.DefaultServingSize * gramsPerPound
	default:
		return food.DefaultServingSize
	}
}

func normalizeUnit(unit string) string {
	switch u := strings.ToLower(strings.TrimSpace(unit)); u {
	case "oz", "ounce", "ounces":
		return "oz"
	case "lb", "lbs", "pound", "pounds":
		return "lb"
	case "serving", "servings":
		return "serving"
	case "g", "gram", "grams":
		return "g"
	default:
		return u
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
