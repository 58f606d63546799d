package planner_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/planner"
	"github.com/alexanderramin/mise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleMeal_CaloriesWithinTwoPercentOfTarget(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(17))
	recipe := cat.Recipe("rec-chicken-rice")
	require.NotNil(t, recipe)

	for i := 0; i < 1000; i++ {
		target := 300 + rng.Float64()*900
		meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
			Recipe:         recipe,
			TargetCalories: target,
			MealType:       domain.MealLunch,
		})
		// Rounding to whole kcal adds at most half a calorie on top of the
		// ±2% jitter window.
		assert.GreaterOrEqual(t, meal.Calories, math.Floor(target*0.98))
		assert.LessOrEqual(t, meal.Calories, math.Ceil(target*1.02))
	}
}

func TestScaleMeal_IngredientAmountsScaleWithTarget(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(5))
	recipe := cat.Recipe("rec-chicken-rice") // base 650 kcal, 150 g chicken

	meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
		Recipe:         recipe,
		TargetCalories: 1300,
		MealType:       domain.MealLunch,
	})

	require.Len(t, meal.Ingredients, 4)
	chicken := meal.Ingredients[0]
	assert.Equal(t, "ing-chicken", chicken.IngredientID)
	assert.Equal(t, "Chicken Breast", chicken.Name)
	assert.Equal(t, float64(300), chicken.Amount)
	assert.Equal(t, "g", chicken.Unit)
}

func TestScaleMeal_DropsAmountsThatRoundToZero(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(5))
	recipe := cat.Recipe("rec-stirfry") // includes 8 g garlic

	// Scaling 600 kcal down to 20 kcal puts garlic at ~0.27 g, which rounds
	// away entirely.
	meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
		Recipe:         recipe,
		TargetCalories: 20,
		MealType:       domain.MealDinner,
	})

	for _, mi := range meal.Ingredients {
		assert.NotEqual(t, "ing-garlic", mi.IngredientID)
		assert.Greater(t, mi.Amount, float64(0))
	}
}

func TestScaleMeal_MacrosFromProfileTargets(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(23))
	recipe := cat.Recipe("rec-chicken-rice")
	macros := &planner.MacroTargets{Protein: 150, Carbs: 220, Fats: 60}

	for i := 0; i < 500; i++ {
		meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
			Recipe:         recipe,
			TargetCalories: 800,
			MealType:       domain.MealLunch, // 40% share
			Macros:         macros,
		})
		// 150 * 0.4 = 60 g protein, ±10% jitter plus rounding.
		assert.GreaterOrEqual(t, meal.Protein, float64(53))
		assert.LessOrEqual(t, meal.Protein, float64(67))
		assert.GreaterOrEqual(t, meal.Carbs, float64(78))
		assert.LessOrEqual(t, meal.Carbs, float64(97))
		assert.GreaterOrEqual(t, meal.Fats, float64(20))
		assert.LessOrEqual(t, meal.Fats, float64(27))
	}
}

func TestScaleMeal_MacrosDerivedFromCalories(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(29))
	recipe := cat.Recipe("rec-chicken-rice")

	for i := 0; i < 500; i++ {
		meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
			Recipe:         recipe,
			TargetCalories: 800,
			MealType:       domain.MealLunch,
		})
		// 45% carbs at 4 kcal/g, 30% protein at 4 kcal/g, 25% fat at
		// 9 kcal/g, each with ±10% jitter plus half a gram of rounding.
		assert.InDelta(t, meal.Calories*0.45/4, meal.Carbs, meal.Calories*0.45/4*0.10+0.6)
		assert.InDelta(t, meal.Calories*0.30/4, meal.Protein, meal.Calories*0.30/4*0.10+0.6)
		assert.InDelta(t, meal.Calories*0.25/9, meal.Fats, meal.Calories*0.25/9*0.10+0.6)
	}
}

func TestScaleMeal_NilRecipeYieldsPlaceholder(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(1))

	meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
		Recipe:         nil,
		TargetCalories: 600,
		MealType:       domain.MealDinner,
	})

	assert.True(t, meal.IsPlaceholder())
	assert.Equal(t, planner.PlaceholderMealName, meal.Name)
	assert.Equal(t, domain.MealDinner, meal.Type)
	assert.Zero(t, meal.Calories)
	assert.Zero(t, meal.Protein)
	assert.NotEmpty(t, meal.Instructions)
}

func TestScaleMeal_StandardMealKeepsRecipeInstructions(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(13))
	recipe := cat.Recipe("rec-chicken-rice")

	meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
		Recipe:         recipe,
		TargetCalories: 650,
		MealType:       domain.MealLunch,
	})

	assert.False(t, meal.IsPrepMode())
	assert.Equal(t, recipe.Instructions, meal.Instructions)
}

func TestScaleMeal_PrepModePartitionsAndRewritesInstructions(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(13))
	recipe := cat.Recipe("rec-chicken-rice") // chicken, rice, broccoli, oil

	prepped := []domain.PreppedGroup{
		{Group: domain.GroupCookedProteins, Items: []domain.PreppedItem{
			{IngredientID: "ing-chicken", Name: "Chicken Breast", TotalAmount: 500, Unit: "g", Method: "Grill"},
		}},
		{Group: domain.GroupBoiledGrains, Items: []domain.PreppedItem{
			{IngredientID: "ing-rice", Name: "Brown Rice", TotalAmount: 300, Unit: "g", Method: "Boil"},
		}},
	}

	meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
		Recipe:         recipe,
		TargetCalories: 650,
		MealType:       domain.MealLunch,
		Prepped:        prepped,
	})

	require.True(t, meal.IsPrepMode())
	preppedIDs := ingredientIDs(meal.Prep.Prepped)
	freshIDs := ingredientIDs(meal.Prep.Fresh)
	assert.ElementsMatch(t, []string{"ing-chicken", "ing-rice"}, preppedIDs)
	assert.ElementsMatch(t, []string{"ing-broccoli", "ing-oil"}, freshIDs)

	text := strings.Join(meal.Instructions, " ")
	assert.Contains(t, text, "fresh ingredients")
	assert.Contains(t, text, "from the fridge")
	assert.Contains(t, text, "Reheat")
	assert.Equal(t, "Serve and enjoy.", meal.Instructions[len(meal.Instructions)-1])
	assert.NotEqual(t, recipe.Instructions, meal.Instructions)
}

func TestScaleMeal_PrepModeSkipsReheatForColdComponents(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(13))
	recipe := cat.Recipe("rec-stirfry") // chicken, pepper, onion, garlic

	prepped := []domain.PreppedGroup{
		{Group: domain.GroupChoppedVeggies, Items: []domain.PreppedItem{
			{IngredientID: "ing-pepper", Name: "Bell Pepper", TotalAmount: 200, Unit: "g", Method: "Chop"},
		}},
		{Group: domain.GroupChoppedAromatics, Items: []domain.PreppedItem{
			{IngredientID: "ing-onion", Name: "Onion", TotalAmount: 100, Unit: "g", Method: "Chop"},
		}},
	}

	meal := planner.ScaleMeal(cat, rng, planner.ScaleInput{
		Recipe:         recipe,
		TargetCalories: 600,
		MealType:       domain.MealDinner,
		Prepped:        prepped,
	})

	require.True(t, meal.IsPrepMode())
	for _, step := range meal.Instructions {
		assert.NotContains(t, step, "Reheat")
	}
}

func TestSlotShare(t *testing.T) {
	assert.Equal(t, 0.30, planner.SlotShare(domain.MealBreakfast))
	assert.Equal(t, 0.40, planner.SlotShare(domain.MealLunch))
	assert.Equal(t, 0.30, planner.SlotShare(domain.MealDinner))
	assert.Equal(t, 0.33, planner.SlotShare("snack"))
}

func ingredientIDs(ings []domain.MealIngredient) []string {
	ids := make([]string, len(ings))
	for i, mi := range ings {
		ids[i] = mi.IngredientID
	}
	return ids
}
