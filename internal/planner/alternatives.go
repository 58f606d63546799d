package planner

import (
	"math"
	"math/rand"
	"sort"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/domain"
)

// Alternative-matching tolerances. A candidate counts as nutritionally
// equivalent when it lands within both windows after scaling to the current
// meal's calories.
const (
	maxAlternatives  = 6
	calorieTolerance = 75.0
	proteinTolerance = 10.0

	// Protein misses are weighted double in the ranking score: swapping a
	// meal should not quietly trade away protein.
	proteinWeight = 2.0
)

// FindAlternatives returns up to six meals nutritionally equivalent to the
// current one, ranked by closeness. Candidates share the slot's meal type,
// never repeat the current recipe, and never carry a disliked tag. The
// result may be empty when nothing scales close enough.
func FindAlternatives(cat *catalog.Catalog, rng *rand.Rand, profile *domain.Profile, mealType domain.MealType, current *domain.Meal, prepped []domain.PreppedGroup) []domain.Meal {
	if current == nil || current.RecipeID == "" {
		return nil
	}

	macros := MacrosFrom(profile)

	type scored struct {
		meal  domain.Meal
		score float64
	}
	var candidates []scored
	for _, recipe := range cat.RecipesFor(mealType) {
		if recipe.ID == current.RecipeID {
			continue
		}
		if profile != nil && recipe.HasAnyTag(profile.DislikedFoods) {
			continue
		}
		meal := ScaleMeal(cat, rng, ScaleInput{
			Recipe:         recipe,
			TargetCalories: current.Calories,
			MealType:       mealType,
			Macros:         macros,
			Prepped:        prepped,
		})
		dCal := math.Abs(meal.Calories - current.Calories)
		dProt := math.Abs(meal.Protein - current.Protein)
		if dCal > calorieTolerance || dProt > proteinTolerance {
			continue
		}
		candidates = append(candidates, scored{meal: meal, score: dCal + proteinWeight*dProt})
	}

	// Stable keeps catalog order for ties, so equal-scoring alternatives
	// come back in a predictable order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})
	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}

	out := make([]domain.Meal, len(candidates))
	for i, c := range candidates {
		out[i] = c.meal
	}
	return out
}
