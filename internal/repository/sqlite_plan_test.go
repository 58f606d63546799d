package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/repository"
	"github.com/alexanderramin/mise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *domain.DayPlan {
	plan := &domain.DayPlan{Meals: []domain.Meal{
		{
			RecipeID:     "rec-oatmeal",
			Name:         "Banana Oatmeal",
			Type:         domain.MealBreakfast,
			Instructions: []string{"Cook the oats.", "Top with banana."},
			Ingredients: []domain.MealIngredient{
				{IngredientID: "ing-oats", Name: "Rolled Oats", Amount: 80, Unit: "g"},
				{IngredientID: "ing-banana", Name: "Banana", Amount: 100, Unit: "g"},
			},
			Calories: 410, Protein: 14, Carbs: 62, Fats: 9,
		},
		{
			RecipeID:     "rec-chicken-rice",
			Name:         "Chicken Rice Bowl",
			Type:         domain.MealLunch,
			Instructions: []string{"Take the prepped Chicken Breast, Brown Rice from the fridge.", "Serve and enjoy."},
			Ingredients: []domain.MealIngredient{
				{IngredientID: "ing-chicken", Name: "Chicken Breast", Amount: 160, Unit: "g"},
				{IngredientID: "ing-rice", Name: "Brown Rice", Amount: 95, Unit: "g"},
				{IngredientID: "ing-broccoli", Name: "Broccoli", Amount: 120, Unit: "g"},
			},
			Prep: &domain.MealPrepBreakdown{
				Prepped: []domain.MealIngredient{
					{IngredientID: "ing-chicken", Name: "Chicken Breast", Amount: 160, Unit: "g"},
					{IngredientID: "ing-rice", Name: "Brown Rice", Amount: 95, Unit: "g"},
				},
				Fresh: []domain.MealIngredient{
					{IngredientID: "ing-broccoli", Name: "Broccoli", Amount: 120, Unit: "g"},
				},
			},
			Calories: 805, Protein: 58, Carbs: 90, Fats: 23,
		},
		{
			RecipeID:     "rec-stirfry",
			Name:         "Chicken Stir Fry",
			Type:         domain.MealDinner,
			Instructions: []string{"Stir fry everything."},
			Ingredients: []domain.MealIngredient{
				{IngredientID: "ing-chicken", Name: "Chicken Breast", Amount: 130, Unit: "g"},
			},
			Calories: 598, Protein: 45, Carbs: 48, Fats: 17,
		},
	}}
	plan.RecomputeTotals()
	return plan
}

func TestPlanRepo_UpsertAndGetRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	want := samplePlan()
	require.NoError(t, repo.Upsert(ctx, date, want))

	got, err := repo.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPlanRepo_PrepModeSurvivesRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, date, samplePlan()))
	got, err := repo.GetByDate(ctx, date)
	require.NoError(t, err)

	lunch := got.MealAt(domain.MealLunch)
	require.NotNil(t, lunch)
	require.True(t, lunch.IsPrepMode())
	assert.Len(t, lunch.Prep.Prepped, 2)
	assert.Len(t, lunch.Prep.Fresh, 1)

	breakfast := got.MealAt(domain.MealBreakfast)
	require.NotNil(t, breakfast)
	assert.False(t, breakfast.IsPrepMode())
}

func TestPlanRepo_UpsertReplacesExistingPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, date, samplePlan()))

	replacement := samplePlan()
	replacement.Meals[0].Name = "Yogurt Parfait"
	replacement.Meals[0].RecipeID = "rec-parfait"
	require.NoError(t, repo.Upsert(ctx, date, replacement))

	got, err := repo.GetByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, got.Meals, 3)
	assert.Equal(t, "rec-parfait", got.Meals[0].RecipeID)
}

func TestPlanRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)

	_, err := repo.GetByDate(context.Background(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanRepo_ListRangeSkipsMissingDays(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, start, samplePlan()))
	require.NoError(t, repo.Upsert(ctx, start.AddDate(0, 0, 2), samplePlan()))

	plans, err := repo.ListRange(ctx, start, 4)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, start, plans[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 2), plans[1].Date)
}

func TestPlanRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(database)
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(ctx, date, samplePlan()))
	require.NoError(t, repo.Delete(ctx, date))

	_, err := repo.GetByDate(ctx, date)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, date)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
