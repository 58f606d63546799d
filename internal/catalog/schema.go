package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/mise/internal/domain"
)

// ImportSchema is the top-level JSON structure for catalog import.
type ImportSchema struct {
	Ingredients []IngredientImport `json:"ingredients"`
	Recipes     []RecipeImport     `json:"recipes"`
}

// IngredientImport defines one ingredient in the import file.
type IngredientImport struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Unit string          `json:"unit"`
	Prep *PrepInfoImport `json:"prep,omitempty"`
}

// PrepInfoImport defines optional batch-prep metadata.
type PrepInfoImport struct {
	CanPrep bool   `json:"can_prep"`
	Method  string `json:"method"`
	Group   string `json:"group"`
}

// RecipeImport defines one recipe in the import file.
type RecipeImport struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	MealTypes    []string                 `json:"meal_types"`
	BaseCalories float64                  `json:"base_calories"`
	Tags         []string                 `json:"tags,omitempty"`
	Ingredients  []RecipeIngredientImport `json:"ingredients"`
	Instructions []string                 `json:"instructions"`
	ImageURL     string                   `json:"image_url,omitempty"`
}

// RecipeIngredientImport defines one ingredient line of an imported recipe.
type RecipeIngredientImport struct {
	IngredientID string  `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
}

// LoadImportSchema reads and parses a catalog import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}

// Convert maps an import schema onto domain values, validating meal types.
func (s *ImportSchema) Convert() ([]domain.Ingredient, []domain.Recipe, error) {
	ingredients := make([]domain.Ingredient, 0, len(s.Ingredients))
	for _, ii := range s.Ingredients {
		ing := domain.Ingredient{ID: ii.ID, Name: ii.Name, Unit: ii.Unit}
		if ii.Prep != nil {
			ing.Prep = &domain.PrepInfo{
				CanPrep: ii.Prep.CanPrep,
				Method:  ii.Prep.Method,
				Group:   ii.Prep.Group,
			}
		}
		ingredients = append(ingredients, ing)
	}

	recipes := make([]domain.Recipe, 0, len(s.Recipes))
	for _, ri := range s.Recipes {
		r := domain.Recipe{
			ID:           ri.ID,
			Name:         ri.Name,
			BaseCalories: ri.BaseCalories,
			Tags:         ri.Tags,
			Instructions: ri.Instructions,
			ImageURL:     ri.ImageURL,
		}
		if len(ri.MealTypes) == 0 {
			return nil, nil, fmt.Errorf("recipe %q: at least one meal type required", ri.ID)
		}
		for _, mts := range ri.MealTypes {
			mt, ok := domain.ParseMealType(mts)
			if !ok {
				return nil, nil, fmt.Errorf("recipe %q: invalid meal type %q", ri.ID, mts)
			}
			r.MealTypes = append(r.MealTypes, mt)
		}
		for _, ing := range ri.Ingredients {
			r.Ingredients = append(r.Ingredients, domain.RecipeIngredient{
				IngredientID: ing.IngredientID,
				Amount:       ing.Amount,
				Unit:         ing.Unit,
			})
		}
		recipes = append(recipes, r)
	}

	return ingredients, recipes, nil
}

// LoadFile is the one-shot path from a JSON file to a validated Catalog.
func LoadFile(path string) (*Catalog, error) {
	schema, err := LoadImportSchema(path)
	if err != nil {
		return nil, err
	}
	ingredients, recipes, err := schema.Convert()
	if err != nil {
		return nil, err
	}
	return New(ingredients, recipes)
}
