package testutil

import (
	"testing"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/domain"
)

// Recipe options
type RecipeOption func(*domain.Recipe)

func WithTags(tags ...string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Tags = tags
	}
}

func WithMealTypes(types ...domain.MealType) RecipeOption {
	return func(r *domain.Recipe) {
		r.MealTypes = types
	}
}

func WithBaseCalories(cal float64) RecipeOption {
	return func(r *domain.Recipe) {
		r.BaseCalories = cal
	}
}

func WithIngredients(ings ...domain.RecipeIngredient) RecipeOption {
	return func(r *domain.Recipe) {
		r.Ingredients = ings
	}
}

// NewTestRecipe builds a recipe with sane defaults for tests.
func NewTestRecipe(id, name string, opts ...RecipeOption) domain.Recipe {
	r := domain.Recipe{
		ID:           id,
		Name:         name,
		MealTypes:    []domain.MealType{domain.MealLunch},
		BaseCalories: 500,
		Instructions: []string{"Cook everything.", "Serve."},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// TestIngredients returns the standard ingredient set used across tests.
// It covers every prep group plus non-preppable ingredients.
func TestIngredients() []domain.Ingredient {
	return []domain.Ingredient{
		{ID: "ing-oats", Name: "Rolled Oats", Unit: "g"},
		{ID: "ing-milk", Name: "Milk", Unit: "ml"},
		{ID: "ing-banana", Name: "Banana", Unit: "g"},
		{ID: "ing-yogurt", Name: "Greek Yogurt", Unit: "g"},
		{ID: "ing-eggs", Name: "Eggs", Unit: "pcs",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Boil", Group: domain.GroupBoiledEggs}},
		{ID: "ing-chicken", Name: "Chicken Breast", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Grill", Group: domain.GroupCookedProteins}},
		{ID: "ing-salmon", Name: "Salmon Fillet", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Bake", Group: domain.GroupCookedProteins}},
		{ID: "ing-rice", Name: "Brown Rice", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Boil", Group: domain.GroupBoiledGrains}},
		{ID: "ing-quinoa", Name: "Quinoa", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Boil", Group: domain.GroupBoiledGrains}},
		{ID: "ing-lentils", Name: "Lentils", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Boil", Group: domain.GroupBoiledLegumes}},
		{ID: "ing-broccoli", Name: "Broccoli", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Roast", Group: domain.GroupCookedVeggies}},
		{ID: "ing-pepper", Name: "Bell Pepper", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Chop", Group: domain.GroupChoppedVeggies}},
		{ID: "ing-onion", Name: "Onion", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Chop", Group: domain.GroupChoppedAromatics}},
		{ID: "ing-garlic", Name: "Garlic", Unit: "g",
			Prep: &domain.PrepInfo{CanPrep: true, Method: "Chop", Group: domain.GroupChoppedAromatics}},
		{ID: "ing-spinach", Name: "Spinach", Unit: "g"},
		{ID: "ing-oil", Name: "Olive Oil", Unit: "ml"},
	}
}

// TestRecipes returns a catalog-worth of recipes spanning all three slots,
// including dairy-tagged recipes so dietary-exclusion tests have something
// to exclude.
func TestRecipes() []domain.Recipe {
	return []domain.Recipe{
		NewTestRecipe("rec-oatmeal", "Banana Oatmeal",
			WithMealTypes(domain.MealBreakfast),
			WithBaseCalories(400),
			WithTags("vegetarian", "dairy"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-oats", Amount: 80, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-milk", Amount: 200, Unit: "ml"},
				domain.RecipeIngredient{IngredientID: "ing-banana", Amount: 100, Unit: "g"},
			)),
		NewTestRecipe("rec-eggs", "Boiled Eggs & Spinach",
			WithMealTypes(domain.MealBreakfast),
			WithBaseCalories(350),
			WithTags("vegetarian"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-eggs", Amount: 3, Unit: "pcs"},
				domain.RecipeIngredient{IngredientID: "ing-spinach", Amount: 60, Unit: "g"},
			)),
		NewTestRecipe("rec-parfait", "Yogurt Parfait",
			WithMealTypes(domain.MealBreakfast),
			WithBaseCalories(380),
			WithTags("vegetarian", "dairy"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-yogurt", Amount: 200, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-banana", Amount: 80, Unit: "g"},
			)),
		NewTestRecipe("rec-chicken-rice", "Chicken Rice Bowl",
			WithMealTypes(domain.MealLunch, domain.MealDinner),
			WithBaseCalories(650),
			WithTags("high-protein"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-chicken", Amount: 150, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-rice", Amount: 90, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-broccoli", Amount: 120, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-oil", Amount: 10, Unit: "ml"},
			)),
		NewTestRecipe("rec-lentil-salad", "Lentil Salad",
			WithMealTypes(domain.MealLunch),
			WithBaseCalories(550),
			WithTags("vegan", "high-fiber"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-lentils", Amount: 100, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-pepper", Amount: 80, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-onion", Amount: 40, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-oil", Amount: 10, Unit: "ml"},
			)),
		NewTestRecipe("rec-salmon-quinoa", "Salmon Quinoa Plate",
			WithMealTypes(domain.MealLunch, domain.MealDinner),
			WithBaseCalories(700),
			WithTags("high-protein", "fish"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-salmon", Amount: 140, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-quinoa", Amount: 80, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-spinach", Amount: 50, Unit: "g"},
			)),
		NewTestRecipe("rec-stirfry", "Chicken Stir Fry",
			WithMealTypes(domain.MealDinner),
			WithBaseCalories(600),
			WithTags("high-protein"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-chicken", Amount: 130, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-pepper", Amount: 100, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-onion", Amount: 50, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-garlic", Amount: 8, Unit: "g"},
			)),
		NewTestRecipe("rec-veggie-curry", "Veggie Coconut Curry",
			WithMealTypes(domain.MealDinner),
			WithBaseCalories(580),
			WithTags("vegan"),
			WithIngredients(
				domain.RecipeIngredient{IngredientID: "ing-lentils", Amount: 90, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-broccoli", Amount: 100, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-rice", Amount: 80, Unit: "g"},
				domain.RecipeIngredient{IngredientID: "ing-onion", Amount: 40, Unit: "g"},
			)),
	}
}

// NewTestCatalog builds the standard test catalog, failing the test on any
// validation error.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(TestIngredients(), TestRecipes())
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}
