package prep_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/planner"
	"github.com/alexanderramin/mise/internal/prep"
	"github.com/alexanderramin/mise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealWith(ings ...domain.MealIngredient) domain.Meal {
	return domain.Meal{RecipeID: "rec-x", Name: "X", Type: domain.MealLunch, Ingredients: ings}
}

func planOf(date string, meals ...domain.Meal) domain.DatedPlan {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.DatedPlan{Date: day, Plan: domain.DayPlan{Meals: meals}}
}

func TestAggregate_SumsAmountsPerIngredient(t *testing.T) {
	cat := testutil.NewTestCatalog(t)

	plans := []domain.DatedPlan{
		planOf("2026-03-02",
			mealWith(
				domain.MealIngredient{IngredientID: "ing-chicken", Name: "Chicken Breast", Amount: 150, Unit: "g"},
				domain.MealIngredient{IngredientID: "ing-rice", Name: "Brown Rice", Amount: 90, Unit: "g"},
			)),
		planOf("2026-03-03",
			mealWith(
				domain.MealIngredient{IngredientID: "ing-chicken", Name: "Chicken Breast", Amount: 130, Unit: "g"},
			)),
	}

	groups, skipped := prep.Aggregate(cat, plans)
	assert.Zero(t, skipped)
	require.Len(t, groups, 2)

	proteins := findGroup(t, groups, domain.GroupCookedProteins)
	require.Len(t, proteins.Items, 1)
	assert.Equal(t, float64(280), proteins.Items[0].TotalAmount)
	assert.Equal(t, "Grill", proteins.Items[0].Method)

	grains := findGroup(t, groups, domain.GroupBoiledGrains)
	require.Len(t, grains.Items, 1)
	assert.Equal(t, float64(90), grains.Items[0].TotalAmount)
}

func TestAggregate_IgnoresNonPreppableIngredients(t *testing.T) {
	cat := testutil.NewTestCatalog(t)

	plans := []domain.DatedPlan{
		planOf("2026-03-02",
			mealWith(
				domain.MealIngredient{IngredientID: "ing-spinach", Name: "Spinach", Amount: 60, Unit: "g"},
				domain.MealIngredient{IngredientID: "ing-oil", Name: "Olive Oil", Amount: 10, Unit: "ml"},
			)),
	}

	groups, skipped := prep.Aggregate(cat, plans)
	assert.Zero(t, skipped)
	assert.Empty(t, groups)
}

func TestAggregate_SkipsAndCountsUnresolvable(t *testing.T) {
	cat := testutil.NewTestCatalog(t)

	plans := []domain.DatedPlan{
		planOf("2026-03-02",
			mealWith(
				domain.MealIngredient{IngredientID: "ing-ghost", Name: "Ghost Pepper", Amount: 10, Unit: "g"},
				domain.MealIngredient{Name: "Unknown Leaf", Amount: 20, Unit: "g"},
				domain.MealIngredient{IngredientID: "ing-rice", Name: "Brown Rice", Amount: 90, Unit: "g"},
			)),
	}

	groups, skipped := prep.Aggregate(cat, plans)
	assert.Equal(t, 2, skipped)
	require.Len(t, groups, 1)
	assert.Equal(t, domain.GroupBoiledGrains, groups[0].Group)
}

func TestAggregate_ResolvesLegacyEntriesByName(t *testing.T) {
	cat := testutil.NewTestCatalog(t)

	// Plans persisted before ids were stored only carry display names.
	plans := []domain.DatedPlan{
		planOf("2026-03-02",
			mealWith(domain.MealIngredient{Name: "Brown Rice", Amount: 80, Unit: "g"})),
	}

	groups, skipped := prep.Aggregate(cat, plans)
	assert.Zero(t, skipped)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "ing-rice", groups[0].Items[0].IngredientID)
}

func TestAggregate_OrderInvariantUnderPermutation(t *testing.T) {
	cat := testutil.NewTestCatalog(t)
	rng := rand.New(rand.NewSource(89))

	var plans []domain.DatedPlan
	for day := 2; day <= 4; day++ {
		plan := planner.GenerateDayPlan(cat, rng, &domain.Profile{ID: "p", TargetCalories: 2000}, nil)
		require.NotNil(t, plan)
		plans = append(plans, domain.DatedPlan{
			Date: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
			Plan: *plan,
		})
	}

	want, wantSkipped := prep.Aggregate(cat, plans)
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.DatedPlan, len(plans))
		copy(shuffled, plans)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, gotSkipped := prep.Aggregate(cat, shuffled)
		assert.Equal(t, want, got)
		assert.Equal(t, wantSkipped, gotSkipped)
	}
}

func findGroup(t *testing.T, groups []domain.PreppedGroup, name string) domain.PreppedGroup {
	t.Helper()
	for _, g := range groups {
		if g.Group == name {
			return g
		}
	}
	t.Fatalf("group %q not found", name)
	return domain.PreppedGroup{}
}
