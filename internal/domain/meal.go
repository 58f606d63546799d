package domain

import (
	"math"
	"time"
)

// MealIngredient is a display-ready ingredient line of a scaled meal. It
// always carries the catalog ingredient id alongside the display name so
// downstream aggregation never has to reverse-map names to ids.
type MealIngredient struct {
	IngredientID string
	Name         string
	Amount       float64
	Unit         string
}

// MealPrepBreakdown splits a prep-mode meal's ingredients into those already
// batch-prepped and those that must be used fresh. Present only on prep-mode
// meals (Meal.Prep != nil); standard meals never carry it.
type MealPrepBreakdown struct {
	Prepped []MealIngredient
	Fresh   []MealIngredient
}

// Meal is one scaled slot of a day plan. It is derived data: regenerating a
// slot produces a fresh Meal, never mutates one in place.
type Meal struct {
	RecipeID     string
	Name         string
	Type         MealType
	ImageURL     string
	Instructions []string
	Ingredients  []MealIngredient
	Prep         *MealPrepBreakdown

	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// IsPrepMode reports whether the meal was scaled against a prep manifest.
func (m *Meal) IsPrepMode() bool {
	return m.Prep != nil
}

// IsPlaceholder reports whether the meal is the zero-value stand-in emitted
// when no recipe was available for the slot.
func (m *Meal) IsPlaceholder() bool {
	return m.RecipeID == ""
}

// PlanTotals is the macro sum over a day plan's meals.
type PlanTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// DayPlan is one day's worth of meals in slot order (breakfast, lunch,
// dinner) plus recomputed totals.
type DayPlan struct {
	Meals  []Meal
	Totals PlanTotals
}

// DatedPlan pairs a stored day plan with its calendar date.
type DatedPlan struct {
	Date time.Time
	Plan DayPlan
}

// MealAt returns a pointer to the meal filling the given slot, or nil.
func (p *DayPlan) MealAt(t MealType) *Meal {
	for i := range p.Meals {
		if p.Meals[i].Type == t {
			return &p.Meals[i]
		}
	}
	return nil
}

// ReplaceMeal swaps the meal for the given slot and recomputes totals.
// Returns false if the plan has no such slot.
func (p *DayPlan) ReplaceMeal(m Meal) bool {
	for i := range p.Meals {
		if p.Meals[i].Type == m.Type {
			p.Meals[i] = m
			p.RecomputeTotals()
			return true
		}
	}
	return false
}

// RecomputeTotals re-derives Totals by full summation over all meals.
// It is always a full recompute, never an incremental adjustment, so a plan
// can never drift from its meals.
func (p *DayPlan) RecomputeTotals() {
	var t PlanTotals
	for _, m := range p.Meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	t.Calories = math.Round(t.Calories)
	t.Protein = math.Round(t.Protein)
	t.Carbs = math.Round(t.Carbs)
	t.Fats = math.Round(t.Fats)
	p.Totals = t
}
