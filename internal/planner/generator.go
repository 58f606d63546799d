package planner

import (
	"math/rand"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/domain"
)

// MacrosFrom extracts daily macro targets from a profile, or nil when the
// profile does not specify all three. Partial macro targets are ignored so
// meals never mix target-derived and calorie-derived macros.
func MacrosFrom(p *domain.Profile) *MacroTargets {
	if p == nil || !p.HasMacroTargets() {
		return nil
	}
	return &MacroTargets{
		Protein: p.TargetProtein,
		Carbs:   p.TargetCarbs,
		Fats:    p.TargetFats,
	}
}

// GenerateDayPlan builds a full day of meals for the profile. Each slot gets
// its share of the daily calorie target, recipes already used earlier in the
// day are excluded from later slots, and totals are recomputed from the
// final meals. Returns nil when the profile has no calorie target.
func GenerateDayPlan(cat *catalog.Catalog, rng *rand.Rand, profile *domain.Profile, prepped []domain.PreppedGroup) *domain.DayPlan {
	if profile == nil || !profile.HasCalorieTarget() {
		return nil
	}

	macros := MacrosFrom(profile)
	plan := &domain.DayPlan{Meals: make([]domain.Meal, 0, len(domain.MealSlots))}

	var usedRecipes []string
	for _, slot := range domain.MealSlots {
		recipe := SelectRecipe(cat, rng, SelectInput{
			MealType:     slot,
			LikedTags:    profile.LikedFoods,
			DislikedTags: profile.DislikedFoods,
			ExcludeIDs:   usedRecipes,
		})
		meal := ScaleMeal(cat, rng, ScaleInput{
			Recipe:         recipe,
			TargetCalories: profile.TargetCalories * SlotShare(slot),
			MealType:       slot,
			Macros:         macros,
			Prepped:        prepped,
		})
		plan.Meals = append(plan.Meals, meal)
		if recipe != nil {
			usedRecipes = append(usedRecipes, recipe.ID)
		}
	}

	plan.RecomputeTotals()
	return plan
}

// RegenerateMeal produces a replacement meal for one slot, guaranteed not to
// reuse the current recipe when any other candidate exists for the slot.
// Returns nil when the profile has no calorie target.
func RegenerateMeal(cat *catalog.Catalog, rng *rand.Rand, profile *domain.Profile, mealType domain.MealType, current *domain.Meal, prepped []domain.PreppedGroup) *domain.Meal {
	if profile == nil || !profile.HasCalorieTarget() {
		return nil
	}

	var exclude []string
	if current != nil && current.RecipeID != "" {
		exclude = []string{current.RecipeID}
	}
	recipe := SelectRecipe(cat, rng, SelectInput{
		MealType:     mealType,
		LikedTags:    profile.LikedFoods,
		DislikedTags: profile.DislikedFoods,
		ExcludeIDs:   exclude,
	})
	meal := ScaleMeal(cat, rng, ScaleInput{
		Recipe:         recipe,
		TargetCalories: profile.TargetCalories * SlotShare(mealType),
		MealType:       mealType,
		Macros:         MacrosFrom(profile),
		Prepped:        prepped,
	})
	return &meal
}
