package planner

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/domain"
)

// PlaceholderMealName is used when no recipe exists for a slot. Such meals
// carry an empty RecipeID and zero nutrition.
const PlaceholderMealName = "No recipe available"

// Slot calorie shares. Slots the generator does not know about fall back to
// an even third.
const defaultSlotShare = 0.33

var slotCalorieShare = map[domain.MealType]float64{
	domain.MealBreakfast: 0.30,
	domain.MealLunch:     0.40,
	domain.MealDinner:    0.30,
}

// SlotShare returns the fraction of the daily calorie target assigned to a
// meal slot.
func SlotShare(t domain.MealType) float64 {
	if share, ok := slotCalorieShare[t]; ok {
		return share
	}
	return defaultSlotShare
}

// Calorie-derived macro split, applied when the profile has no explicit
// macro targets: 45% of calories from carbs, 30% from protein, 25% from fat,
// converted to grams at 4/4/9 kcal per gram.
const (
	carbCalorieShare    = 0.45
	proteinCalorieShare = 0.30
	fatCalorieShare     = 0.25

	kcalPerGramCarb    = 4.0
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0
)

// MacroTargets are the daily gram targets taken from a profile when all
// three are set.
type MacroTargets struct {
	Protein float64
	Carbs   float64
	Fats    float64
}

// ScaleInput describes one meal to scale.
type ScaleInput struct {
	Recipe         *domain.Recipe
	TargetCalories float64
	MealType       domain.MealType
	Macros         *MacroTargets        // nil: derive macros from calories
	Prepped        []domain.PreppedGroup // nil: standard (non-prep) meal
}

// ScaleMeal scales a recipe's portions to the calorie target and fills in
// nutrition. Calories land within ±2% of the target; macros carry a ±10%
// jitter so repeated plans do not look machine-stamped. A nil recipe yields
// a placeholder meal so a day plan always has all slots filled.
func ScaleMeal(cat *catalog.Catalog, rng *rand.Rand, in ScaleInput) domain.Meal {
	if in.Recipe == nil {
		return placeholderMeal(in.MealType)
	}

	factor := in.TargetCalories / in.Recipe.BaseCalories
	calories := math.Round(in.Recipe.BaseCalories * factor * jitter(rng, 0.02))

	meal := domain.Meal{
		RecipeID: in.Recipe.ID,
		Name:     in.Recipe.Name,
		Type:     in.MealType,
		ImageURL: in.Recipe.ImageURL,
		Calories: calories,
	}

	if in.Macros != nil {
		share := SlotShare(in.MealType)
		meal.Protein = math.Round(in.Macros.Protein * share * jitter(rng, 0.10))
		meal.Carbs = math.Round(in.Macros.Carbs * share * jitter(rng, 0.10))
		meal.Fats = math.Round(in.Macros.Fats * share * jitter(rng, 0.10))
	} else {
		meal.Carbs = math.Round(calories * carbCalorieShare / kcalPerGramCarb * jitter(rng, 0.10))
		meal.Protein = math.Round(calories * proteinCalorieShare / kcalPerGramProtein * jitter(rng, 0.10))
		meal.Fats = math.Round(calories * fatCalorieShare / kcalPerGramFat * jitter(rng, 0.10))
	}

	meal.Ingredients = scaleIngredients(cat, in.Recipe, factor)

	if prepped, fresh, ok := partitionPrepped(meal.Ingredients, in.Prepped); ok {
		meal.Prep = &domain.MealPrepBreakdown{Prepped: prepped, Fresh: fresh}
		meal.Instructions = prepModeInstructions(in.Recipe.Name, prepped, fresh, in.Prepped)
	} else {
		meal.Instructions = append([]string(nil), in.Recipe.Instructions...)
	}

	return meal
}

// jitter returns a factor uniformly drawn from [1-spread, 1+spread].
func jitter(rng *rand.Rand, spread float64) float64 {
	return 1 - spread + rng.Float64()*2*spread
}

func placeholderMeal(t domain.MealType) domain.Meal {
	return domain.Meal{
		Name: PlaceholderMealName,
		Type: t,
		Instructions: []string{
			"No recipe in the catalog matches this meal slot. Import more recipes or relax your preferences.",
		},
	}
}

// scaleIngredients applies the scaling factor and rounds amounts to whole
// units. Amounts that round to zero are dropped rather than listed as "0 g".
func scaleIngredients(cat *catalog.Catalog, r *domain.Recipe, factor float64) []domain.MealIngredient {
	out := make([]domain.MealIngredient, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		amount := math.Round(ri.Amount * factor)
		if amount <= 0 {
			continue
		}
		name := ri.IngredientID
		if ing := cat.Ingredient(ri.IngredientID); ing != nil {
			name = ing.Name
		}
		out = append(out, domain.MealIngredient{
			IngredientID: ri.IngredientID,
			Name:         name,
			Amount:       amount,
			Unit:         ri.Unit,
		})
	}
	return out
}

// partitionPrepped splits a meal's ingredients into those covered by the
// batch-prep manifest and those that must be prepared fresh. ok is false
// when no manifest groups were supplied, which keeps the meal a standard
// (non-prep) variant.
func partitionPrepped(ings []domain.MealIngredient, groups []domain.PreppedGroup) (prepped, fresh []domain.MealIngredient, ok bool) {
	if len(groups) == 0 {
		return nil, nil, false
	}
	available := make(map[string]bool)
	for _, g := range groups {
		for _, item := range g.Items {
			available[item.IngredientID] = true
		}
	}
	for _, mi := range ings {
		if available[mi.IngredientID] {
			prepped = append(prepped, mi)
		} else {
			fresh = append(fresh, mi)
		}
	}
	return prepped, fresh, true
}

// prepModeInstructions replaces a recipe's cook-from-scratch instructions
// with assembly steps that lean on the batch-prepped components.
func prepModeInstructions(recipeName string, prepped, fresh []domain.MealIngredient, groups []domain.PreppedGroup) []string {
	steps := make([]string, 0, 5)
	if len(fresh) > 0 {
		steps = append(steps, fmt.Sprintf("Prepare the fresh ingredients: %s.", joinNames(fresh)))
	}
	if len(prepped) > 0 {
		steps = append(steps, fmt.Sprintf("Take the prepped %s from the fridge.", joinNames(prepped)))
	}
	steps = append(steps, fmt.Sprintf("Combine everything into %s.", recipeName))
	if needsReheat(prepped, groups) {
		steps = append(steps, "Reheat in a pan or microwave until hot throughout.")
	}
	steps = append(steps, "Serve and enjoy.")
	return steps
}

// needsReheat reports whether any prepped ingredient belongs to a group
// that is stored cooked and eaten warm.
func needsReheat(prepped []domain.MealIngredient, groups []domain.PreppedGroup) bool {
	groupOf := make(map[string]string)
	for _, g := range groups {
		for _, item := range g.Items {
			groupOf[item.IngredientID] = g.Group
		}
	}
	for _, mi := range prepped {
		switch groupOf[mi.IngredientID] {
		case domain.GroupCookedProteins, domain.GroupBoiledGrains:
			return true
		}
	}
	return false
}

func joinNames(ings []domain.MealIngredient) string {
	names := make([]string, len(ings))
	for i, mi := range ings {
		names[i] = mi.Name
	}
	return strings.Join(names, ", ")
}
