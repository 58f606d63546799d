package prep

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mise/internal/domain"
)

// Synthetic step ids. Item-level steps derive their id from the ingredient
// id instead.
const (
	stepIDPreheat = "step-preheat-oven"
	stepIDWash    = "step-wash-rinse"
	stepIDChop    = "step-chop-all"
	stepIDCool    = "step-cool-store"
)

// groupPriority fixes the cooking order: aromatics and veggies get chopped
// first, long-running boils start next, and proteins finish last so they go
// into storage freshest.
var groupPriority = map[string]int{
	domain.GroupChoppedAromatics: 1,
	domain.GroupChoppedVeggies:   2,
	domain.GroupBoiledGrains:     3,
	domain.GroupBoiledLegumes:    3,
	domain.GroupBoiledEggs:       3,
	domain.GroupCookedVeggies:    4,
	domain.GroupCookedProteins:   5,
}

const unknownGroupPriority = 99

// ovenKeywords mark methods that need the oven preheated before anything
// else happens.
var ovenKeywords = []string{"oven", "bake", "roast"}

type flatItem struct {
	group string
	item  domain.PreppedItem
}

// BuildSteps converts a manifest into the ordered prep procedure: optional
// oven preheat, wash/rinse, a single combined chop step covering every
// chopped item, one cook step per remaining item in priority order, and a
// closing cool-down. Steps are deduplicated by id, first occurrence wins.
func BuildSteps(groups []domain.PreppedGroup) []domain.PrepStep {
	var items []flatItem
	for _, g := range groups {
		for _, it := range g.Items {
			items = append(items, flatItem{group: g.Group, item: it})
		}
	}
	// Insertion sort keeps equal priorities in manifest order.
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && priorityOf(items[j].group) < priorityOf(items[j-1].group); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}

	needsOven := false
	var choppedIDs []string
	for _, fi := range items {
		if containsOvenKeyword(fi.item.Method) {
			needsOven = true
		}
		if isChoppedGroup(fi.group) {
			choppedIDs = append(choppedIDs, fi.item.IngredientID)
		}
	}

	var steps []domain.PrepStep
	if needsOven {
		steps = append(steps, domain.PrepStep{
			ID:   stepIDPreheat,
			Text: "Preheat the oven to 200°C.",
		})
	}
	steps = append(steps, domain.PrepStep{
		ID:   stepIDWash,
		Text: "Wash all vegetables and rinse the grains.",
	})

	for _, fi := range items {
		if isChoppedGroup(fi.group) {
			steps = append(steps, domain.PrepStep{
				ID:            stepIDChop,
				Text:          "Chop all aromatics and vegetables.",
				IngredientIDs: choppedIDs,
			})
			continue
		}
		steps = append(steps, domain.PrepStep{
			ID:            "step-" + fi.item.IngredientID,
			Text:          fmt.Sprintf("%s %.0f%s of %s.", fi.item.Method, fi.item.TotalAmount, fi.item.Unit, fi.item.Name),
			IngredientIDs: []string{fi.item.IngredientID},
		})
	}

	steps = append(steps, domain.PrepStep{
		ID:   stepIDCool,
		Text: "Let everything cool before storing in the fridge.",
	})

	return dedupeSteps(steps)
}

func isChoppedGroup(group string) bool {
	return group == domain.GroupChoppedAromatics || group == domain.GroupChoppedVeggies
}

func priorityOf(group string) int {
	if p, ok := groupPriority[group]; ok {
		return p
	}
	return unknownGroupPriority
}

func containsOvenKeyword(method string) bool {
	lower := strings.ToLower(method)
	for _, kw := range ovenKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func dedupeSteps(steps []domain.PrepStep) []domain.PrepStep {
	seen := make(map[string]bool, len(steps))
	out := steps[:0]
	for _, s := range steps {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}
