// Package planner is the computation core: recipe selection, meal scaling,
// day-plan generation and alternative ranking. Every function is a pure
// transformation over the supplied catalog plus an explicit random source,
// so callers can run plans concurrently with independent generators and
// tests can pin outcomes with a seeded rng.
package planner

import (
	"math/rand"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/domain"
)

// likedPickProbability is the chance a liked-tag match is preferred over the
// full candidate pool when at least one liked match exists.
const likedPickProbability = 0.7

// SelectInput carries the constraints for one slot's recipe selection.
type SelectInput struct {
	MealType     domain.MealType
	LikedTags    []string
	DislikedTags []string
	ExcludeIDs   []string
}

// selectionStage is one rung of the progressive relaxation ladder. Stages
// are tried in order; the first stage yielding a non-empty pool wins.
type selectionStage struct {
	applyDietary   bool
	applyExclusion bool
}

// relaxationStages is the declarative fallback chain: full constraints
// first, then drop the already-used exclusion, then drop the dietary filter
// instead, and as a last resort match on meal type alone. The final stage is
// deliberate: serving a disliked recipe beats serving nothing.
var relaxationStages = []selectionStage{
	{applyDietary: true, applyExclusion: true},
	{applyDietary: true, applyExclusion: false},
	{applyDietary: false, applyExclusion: true},
	{applyDietary: false, applyExclusion: false},
}

// SelectRecipe picks a recipe for a meal slot under progressive relaxation.
// It returns nil only when the catalog has no recipe for the meal type at
// all; the scaler turns that into a placeholder meal.
func SelectRecipe(cat *catalog.Catalog, rng *rand.Rand, in SelectInput) *domain.Recipe {
	pool := cat.RecipesFor(in.MealType)
	if len(pool) == 0 {
		return nil
	}

	excluded := make(map[string]bool, len(in.ExcludeIDs))
	for _, id := range in.ExcludeIDs {
		excluded[id] = true
	}

	var candidates []*domain.Recipe
	for _, stage := range relaxationStages {
		candidates = candidates[:0]
		for _, r := range pool {
			if stage.applyDietary && r.HasAnyTag(in.DislikedTags) {
				continue
			}
			if stage.applyExclusion && excluded[r.ID] {
				continue
			}
			candidates = append(candidates, r)
		}
		if len(candidates) > 0 {
			break
		}
	}
	// The last stage is the unfiltered pool, so candidates is non-empty here.

	var liked []*domain.Recipe
	for _, r := range candidates {
		if r.HasAnyTag(in.LikedTags) {
			liked = append(liked, r)
		}
	}
	if len(liked) > 0 && rng.Float64() < likedPickProbability {
		return liked[rng.Intn(len(liked))]
	}
	return candidates[rng.Intn(len(candidates))]
}
