// Package catalog holds the immutable ingredient/recipe registry that every
// planning call reads. A Catalog is constructed once (from the database or an
// import file) and passed in explicitly; there is no package-level singleton,
// so tests and callers can hold several catalogs side by side.
package catalog

import (
	"fmt"

	"github.com/alexanderramin/mise/internal/domain"
)

// Catalog is a validated, read-only view over ingredients and recipes with
// the lookup indexes the planning core needs. Do not mutate the slices
// handed to New after construction.
type Catalog struct {
	ingredients []domain.Ingredient
	recipes     []domain.Recipe

	ingredientByID   map[string]*domain.Ingredient
	ingredientByName map[string]*domain.Ingredient
	recipeByID       map[string]*domain.Recipe
	recipesByType    map[domain.MealType][]*domain.Recipe
}

// New builds a Catalog, validating the load-time invariants the planning
// core depends on: positive base calories, positive ingredient amounts, and
// resolvable ingredient references. A violation here is catalog corruption
// and is the one condition the core treats as a hard error.
func New(ingredients []domain.Ingredient, recipes []domain.Recipe) (*Catalog, error) {
	c := &Catalog{
		ingredients:      ingredients,
		recipes:          recipes,
		ingredientByID:   make(map[string]*domain.Ingredient, len(ingredients)),
		ingredientByName: make(map[string]*domain.Ingredient, len(ingredients)),
		recipeByID:       make(map[string]*domain.Recipe, len(recipes)),
		recipesByType:    make(map[domain.MealType][]*domain.Recipe),
	}

	for i := range c.ingredients {
		ing := &c.ingredients[i]
		if ing.ID == "" {
			return nil, fmt.Errorf("ingredient %q: missing id", ing.Name)
		}
		if _, dup := c.ingredientByID[ing.ID]; dup {
			return nil, fmt.Errorf("ingredient %q: duplicate id", ing.ID)
		}
		c.ingredientByID[ing.ID] = ing
		// Duplicate display names are tolerated, last one wins. The name
		// index only backs legacy plans that predate stored ingredient ids.
		c.ingredientByName[ing.Name] = ing
	}

	for i := range c.recipes {
		r := &c.recipes[i]
		if r.ID == "" {
			return nil, fmt.Errorf("recipe %q: missing id", r.Name)
		}
		if _, dup := c.recipeByID[r.ID]; dup {
			return nil, fmt.Errorf("recipe %q: duplicate id", r.ID)
		}
		if r.BaseCalories <= 0 {
			return nil, fmt.Errorf("recipe %q: base calories must be positive, got %v", r.ID, r.BaseCalories)
		}
		for _, ri := range r.Ingredients {
			if ri.Amount <= 0 {
				return nil, fmt.Errorf("recipe %q: ingredient %q amount must be positive", r.ID, ri.IngredientID)
			}
			if _, ok := c.ingredientByID[ri.IngredientID]; !ok {
				return nil, fmt.Errorf("recipe %q: unknown ingredient %q", r.ID, ri.IngredientID)
			}
		}
		c.recipeByID[r.ID] = r
		for _, mt := range r.MealTypes {
			c.recipesByType[mt] = append(c.recipesByType[mt], r)
		}
	}

	return c, nil
}

// Ingredients returns all ingredients in load order.
func (c *Catalog) Ingredients() []domain.Ingredient { return c.ingredients }

// Recipes returns all recipes in load order.
func (c *Catalog) Recipes() []domain.Recipe { return c.recipes }

// RecipesFor returns the recipes that can fill the given slot, in catalog
// order. The returned slice is shared; callers must not mutate it.
func (c *Catalog) RecipesFor(t domain.MealType) []*domain.Recipe {
	return c.recipesByType[t]
}

// Recipe looks up a recipe by id, or nil.
func (c *Catalog) Recipe(id string) *domain.Recipe { return c.recipeByID[id] }

// Ingredient looks up an ingredient by id, or nil.
func (c *Catalog) Ingredient(id string) *domain.Ingredient { return c.ingredientByID[id] }

// IngredientByName resolves a display name back to an ingredient, or nil.
// Kept for plans stored before meals carried ingredient ids.
func (c *Catalog) IngredientByName(name string) *domain.Ingredient {
	return c.ingredientByName[name]
}
