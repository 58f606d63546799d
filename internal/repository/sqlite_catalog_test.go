package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/repository"
	"github.com/alexanderramin/mise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepo_ReplaceAllAndLoadAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCatalogRepo(database)
	ctx := context.Background()

	wantIngredients := testutil.TestIngredients()
	wantRecipes := testutil.TestRecipes()
	require.NoError(t, repo.ReplaceAll(ctx, wantIngredients, wantRecipes))

	ingredients, recipes, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ingredients, len(wantIngredients))
	assert.Len(t, recipes, len(wantRecipes))

	byID := make(map[string]domain.Ingredient)
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}
	rice := byID["ing-rice"]
	require.NotNil(t, rice.Prep)
	assert.Equal(t, "Boil", rice.Prep.Method)
	assert.Equal(t, domain.GroupBoiledGrains, rice.Prep.Group)
	assert.Nil(t, byID["ing-spinach"].Prep)

	var bowl *domain.Recipe
	for i := range recipes {
		if recipes[i].ID == "rec-chicken-rice" {
			bowl = &recipes[i]
		}
	}
	require.NotNil(t, bowl)
	assert.Equal(t, float64(650), bowl.BaseCalories)
	assert.ElementsMatch(t, []domain.MealType{domain.MealLunch, domain.MealDinner}, bowl.MealTypes)
	require.Len(t, bowl.Ingredients, 4)
	// Order must survive the round trip.
	assert.Equal(t, "ing-chicken", bowl.Ingredients[0].IngredientID)
	assert.Equal(t, float64(150), bowl.Ingredients[0].Amount)
}

func TestCatalogRepo_ReplaceAllOverwritesPrevious(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCatalogRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testutil.TestIngredients(), testutil.TestRecipes()))

	smaller := []domain.Ingredient{{ID: "ing-tofu", Name: "Tofu", Unit: "g"}}
	require.NoError(t, repo.ReplaceAll(ctx, smaller, nil))

	ingredients, recipes, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "ing-tofu", ingredients[0].ID)
	assert.Empty(t, recipes)
}

func TestCatalogRepo_LoadAllEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCatalogRepo(database)

	ingredients, recipes, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ingredients)
	assert.Empty(t, recipes)
}
