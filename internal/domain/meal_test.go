package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() DayPlan {
	p := DayPlan{
		Meals: []Meal{
			{RecipeID: "r-1", Type: MealBreakfast, Calories: 600, Protein: 40, Carbs: 60, Fats: 20},
			{RecipeID: "r-2", Type: MealLunch, Calories: 800, Protein: 55, Carbs: 85, Fats: 25},
			{RecipeID: "r-3", Type: MealDinner, Calories: 610, Protein: 42, Carbs: 58, Fats: 21},
		},
	}
	p.RecomputeTotals()
	return p
}

func TestRecomputeTotals_SumsAllMeals(t *testing.T) {
	p := testPlan()
	assert.Equal(t, float64(2010), p.Totals.Calories)
	assert.Equal(t, float64(137), p.Totals.Protein)
	assert.Equal(t, float64(203), p.Totals.Carbs)
	assert.Equal(t, float64(66), p.Totals.Fats)
}

func TestReplaceMeal_SwapsSlotAndRecomputes(t *testing.T) {
	p := testPlan()
	ok := p.ReplaceMeal(Meal{RecipeID: "r-9", Type: MealLunch, Calories: 790, Protein: 50, Carbs: 80, Fats: 30})
	require.True(t, ok)

	lunch := p.MealAt(MealLunch)
	require.NotNil(t, lunch)
	assert.Equal(t, "r-9", lunch.RecipeID)

	// Totals must always equal the full sum, never a stale value.
	assert.Equal(t, float64(600+790+610), p.Totals.Calories)
	assert.Equal(t, float64(40+50+42), p.Totals.Protein)
}

func TestReplaceMeal_UnknownSlot(t *testing.T) {
	p := DayPlan{Meals: []Meal{{Type: MealBreakfast}}}
	assert.False(t, p.ReplaceMeal(Meal{Type: MealDinner}))
}

func TestMealAt_MissingSlot(t *testing.T) {
	p := DayPlan{Meals: []Meal{{Type: MealBreakfast}}}
	assert.Nil(t, p.MealAt(MealDinner))
}

func TestIsPrepMode(t *testing.T) {
	standard := Meal{RecipeID: "r-1"}
	assert.False(t, standard.IsPrepMode())

	prepped := Meal{RecipeID: "r-1", Prep: &MealPrepBreakdown{}}
	assert.True(t, prepped.IsPrepMode())
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, (&Meal{Name: "No recipe available"}).IsPlaceholder())
	assert.False(t, (&Meal{RecipeID: "r-1"}).IsPlaceholder())
}
