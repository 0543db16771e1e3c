package sources

import (
	"context"
	"testing"

	"github.com/2beens/coachstats/internal/coaching/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodRepo_Cache(t *testing.T) {
	repo := NewFoodRepo(nil, 0)

	_, ok := repo.cachedFood("food-oats")
	assert.False(t, ok)

	oats := nutrition.Food{
		ID:                 "food-oats",
		Name:               "Oats",
		ProteinPer100g:     13.2,
		CarbsPer100g:       67.7,
		FatPer100g:         6.5,
		DefaultServingSize: 40,
		DefaultServingUnit: "g",
	}
	repo.cacheFood(oats)

	cached, ok := repo.cachedFood("food-oats")
	require.True(t, ok)
	assert.Equal(t, oats, *cached)

	// a cached food never reaches the (nil) pool
	food, err := repo.GetFood(context.Background(), "food-oats")
	require.NoError(t, err)
	assert.Equal(t, oats, *food)
}
