// Package prep reconciles multiple day plans into a batch-cooking manifest
// and turns that manifest into an ordered, deduplicated step procedure.
// Like the planner, it is pure computation over caller-supplied data.
package prep

import (
	"sort"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/domain"
)

// Aggregate sums the preppable ingredient demand across every meal of the
// supplied plans, grouped by prep group. Amounts for the same ingredient are
// summed across all occurrences. Non-preppable ingredients are ignored;
// ingredients that cannot be resolved against the catalog are skipped and
// counted so callers can surface the discrepancy.
//
// The returned groups and their items are sorted by name, so the manifest is
// identical no matter the order plans are supplied in.
func Aggregate(cat *catalog.Catalog, plans []domain.DatedPlan) (groups []domain.PreppedGroup, skipped int) {
	type key struct {
		group        string
		ingredientID string
	}
	sums := make(map[key]*domain.PreppedItem)

	for _, dp := range plans {
		for _, meal := range dp.Plan.Meals {
			for _, mi := range meal.Ingredients {
				ing := resolveIngredient(cat, mi)
				if ing == nil {
					skipped++
					continue
				}
				if !ing.Preppable() {
					continue
				}
				k := key{group: ing.Prep.Group, ingredientID: ing.ID}
				if item, ok := sums[k]; ok {
					item.TotalAmount += mi.Amount
					continue
				}
				sums[k] = &domain.PreppedItem{
					IngredientID: ing.ID,
					Name:         ing.Name,
					TotalAmount:  mi.Amount,
					Unit:         ing.Unit,
					Method:       ing.Prep.Method,
				}
			}
		}
	}

	byGroup := make(map[string][]domain.PreppedItem)
	for k, item := range sums {
		byGroup[k.group] = append(byGroup[k.group], *item)
	}
	for group, items := range byGroup {
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		groups = append(groups, domain.PreppedGroup{Group: group, Items: items})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Group < groups[j].Group })
	return groups, skipped
}

// resolveIngredient maps a meal ingredient back to its catalog entry. Meals
// carry ingredient ids, so the id lookup is authoritative; the name lookup
// only serves plans persisted before ids were stored.
func resolveIngredient(cat *catalog.Catalog, mi domain.MealIngredient) *domain.Ingredient {
	if mi.IngredientID != "" {
		return cat.Ingredient(mi.IngredientID)
	}
	return cat.IngredientByName(mi.Name)
}
