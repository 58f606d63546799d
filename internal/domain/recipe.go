package domain

// RecipeIngredient is one line of a recipe's ingredient list, expressed at
// the recipe's base calorie amount.
type RecipeIngredient struct {
	IngredientID string
	Amount       float64
	Unit         string
}

// Recipe is a catalog-owned, immutable meal template. BaseCalories must be
// positive; the catalog enforces this at load time.
type Recipe struct {
	ID           string
	Name         string
	MealTypes    []MealType
	BaseCalories float64
	Tags         []string
	Ingredients  []RecipeIngredient
	Instructions []string
	ImageURL     string
}

// ForMealType reports whether the recipe can fill the given slot.
func (r *Recipe) ForMealType(t MealType) bool {
	for _, mt := range r.MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the recipe carries at least one of the tags.
func (r *Recipe) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	for _, t := range r.Tags {
		if set[t] {
			return true
		}
	}
	return false
}
