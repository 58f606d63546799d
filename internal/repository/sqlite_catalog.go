package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

// ReplaceAll clears the stored catalog and writes the given one. Callers run
// it inside a UnitOfWork so a failed import never leaves a half-replaced
// catalog behind.
func (r *SQLiteCatalogRepo) ReplaceAll(ctx context.Context, ingredients []domain.Ingredient, recipes []domain.Recipe) error {
	for _, stmt := range []string{
		`DELETE FROM recipe_ingredients`,
		`DELETE FROM recipes`,
		`DELETE FROM ingredients`,
	} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing catalog: %w", err)
		}
	}

	for _, ing := range ingredients {
		if err := r.insertIngredient(ctx, ing); err != nil {
			return err
		}
	}
	for _, rec := range recipes {
		if err := r.insertRecipe(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) insertIngredient(ctx context.Context, ing domain.Ingredient) error {
	canPrep := 0
	method := ""
	group := ""
	if ing.Prep != nil {
		canPrep = boolToInt(ing.Prep.CanPrep)
		method = ing.Prep.Method
		group = ing.Prep.Group
	}
	query := `INSERT INTO ingredients (id, name, unit, can_prep, prep_method, prep_group)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, ing.ID, ing.Name, ing.Unit, canPrep, method, group); err != nil {
		return fmt.Errorf("inserting ingredient %s: %w", ing.ID, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) insertRecipe(ctx context.Context, rec domain.Recipe) error {
	mealTypes := make([]string, len(rec.MealTypes))
	for i, mt := range rec.MealTypes {
		mealTypes[i] = string(mt)
	}
	mealTypesJSON, err := marshalStrings(mealTypes)
	if err != nil {
		return err
	}
	tagsJSON, err := marshalStrings(rec.Tags)
	if err != nil {
		return err
	}
	instructionsJSON, err := marshalStrings(rec.Instructions)
	if err != nil {
		return err
	}

	query := `INSERT INTO recipes (id, name, base_calories, meal_types, tags, instructions, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.BaseCalories, mealTypesJSON, tagsJSON, instructionsJSON, rec.ImageURL,
	); err != nil {
		return fmt.Errorf("inserting recipe %s: %w", rec.ID, err)
	}

	for i, ri := range rec.Ingredients {
		query := `INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount, unit, order_index)
			VALUES (?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query, rec.ID, ri.IngredientID, ri.Amount, ri.Unit, i); err != nil {
			return fmt.Errorf("inserting recipe ingredient %s/%s: %w", rec.ID, ri.IngredientID, err)
		}
	}
	return nil
}

// LoadAll reads the full stored catalog.
func (r *SQLiteCatalogRepo) LoadAll(ctx context.Context) ([]domain.Ingredient, []domain.Recipe, error) {
	ingredients, err := r.loadIngredients(ctx)
	if err != nil {
		return nil, nil, err
	}
	recipes, err := r.loadRecipes(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ingredients, recipes, nil
}

func (r *SQLiteCatalogRepo) loadIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, unit, can_prep, prep_method, prep_group FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading ingredients: %w", err)
	}
	defer rows.Close()

	var out []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		var canPrep int
		var method, group string
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &canPrep, &method, &group); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		if canPrep != 0 || method != "" || group != "" {
			ing.Prep = &domain.PrepInfo{CanPrep: intToBool(canPrep), Method: method, Group: group}
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) loadRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, base_calories, meal_types, tags, instructions, image_url FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	defer rows.Close()

	var out []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		var mealTypesJSON, tagsJSON, instructionsJSON string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.BaseCalories, &mealTypesJSON, &tagsJSON, &instructionsJSON, &rec.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		mealTypes, err := unmarshalStrings(mealTypesJSON)
		if err != nil {
			return nil, fmt.Errorf("recipe %s meal types: %w", rec.ID, err)
		}
		for _, mt := range mealTypes {
			rec.MealTypes = append(rec.MealTypes, domain.MealType(mt))
		}
		if rec.Tags, err = unmarshalStrings(tagsJSON); err != nil {
			return nil, fmt.Errorf("recipe %s tags: %w", rec.ID, err)
		}
		if rec.Instructions, err = unmarshalStrings(instructionsJSON); err != nil {
			return nil, fmt.Errorf("recipe %s instructions: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		ings, err := r.loadRecipeIngredients(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Ingredients = ings
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) loadRecipeIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ingredient_id, amount, unit FROM recipe_ingredients
		WHERE recipe_id = ? ORDER BY order_index`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("loading ingredients for recipe %s: %w", recipeID, err)
	}
	defer rows.Close()

	var out []domain.RecipeIngredient
	for rows.Next() {
		var ri domain.RecipeIngredient
		if err := rows.Scan(&ri.IngredientID, &ri.Amount, &ri.Unit); err != nil {
			return nil, fmt.Errorf("scanning recipe ingredient: %w", err)
		}
		out = append(out, ri)
	}
	return out, rows.Err()
}
