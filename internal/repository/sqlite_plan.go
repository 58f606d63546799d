package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

// Upsert stores the plan under its date, replacing any existing plan for
// that day. Replacement is whole-plan: meals and ingredient lines are
// rewritten together so a stored plan is never a mix of two generations.
func (r *SQLitePlanRepo) Upsert(ctx context.Context, date time.Time, plan *domain.DayPlan) error {
	day := date.Format(dateLayout)

	if _, err := r.db.ExecContext(ctx, `DELETE FROM day_plans WHERE date = ?`, day); err != nil {
		return fmt.Errorf("clearing plan for %s: %w", day, err)
	}
	now := nowUTC()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO day_plans (date, created_at, updated_at) VALUES (?, ?, ?)`, day, now, now); err != nil {
		return fmt.Errorf("inserting plan for %s: %w", day, err)
	}

	for _, meal := range plan.Meals {
		if err := r.insertMeal(ctx, day, meal); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePlanRepo) insertMeal(ctx context.Context, day string, meal domain.Meal) error {
	instructionsJSON, err := marshalStrings(meal.Instructions)
	if err != nil {
		return err
	}

	mealID := uuid.New().String()
	query := `INSERT INTO meals (id, plan_date, slot, recipe_id, name, image_url,
		is_prep_mode, instructions, calories, protein, carbs, fats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		mealID, day, string(meal.Type), meal.RecipeID, meal.Name, meal.ImageURL,
		boolToInt(meal.IsPrepMode()), instructionsJSON,
		meal.Calories, meal.Protein, meal.Carbs, meal.Fats,
	); err != nil {
		return fmt.Errorf("inserting %s meal for %s: %w", meal.Type, day, err)
	}

	preppedSet := make(map[string]bool)
	if meal.Prep != nil {
		for _, mi := range meal.Prep.Prepped {
			preppedSet[mi.IngredientID] = true
		}
	}
	for i, mi := range meal.Ingredients {
		query := `INSERT INTO meal_ingredients (meal_id, order_index, ingredient_id, name, amount, unit, prepped)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			mealID, i, mi.IngredientID, mi.Name, mi.Amount, mi.Unit,
			boolToInt(preppedSet[mi.IngredientID]),
		); err != nil {
			return fmt.Errorf("inserting meal ingredient %s: %w", mi.Name, err)
		}
	}
	return nil
}

// GetByDate loads one day's plan. Totals are recomputed from the stored
// meals rather than persisted separately.
func (r *SQLitePlanRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DayPlan, error) {
	day := date.Format(dateLayout)

	var exists string
	err := r.db.QueryRowContext(ctx, `SELECT date FROM day_plans WHERE date = ?`, day).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan for %s: %w", day, ErrNotFound)
		}
		return nil, fmt.Errorf("loading plan for %s: %w", day, err)
	}

	meals, err := r.loadMeals(ctx, day)
	if err != nil {
		return nil, err
	}
	plan := &domain.DayPlan{Meals: meals}
	plan.RecomputeTotals()
	return plan, nil
}

// ListRange loads the plans stored within [start, start+days). Days without
// a stored plan are simply absent from the result.
func (r *SQLitePlanRepo) ListRange(ctx context.Context, start time.Time, days int) ([]domain.DatedPlan, error) {
	var out []domain.DatedPlan
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		plan, err := r.GetByDate(ctx, day)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, domain.DatedPlan{Date: day, Plan: *plan})
	}
	return out, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, date time.Time) error {
	day := date.Format(dateLayout)
	res, err := r.db.ExecContext(ctx, `DELETE FROM day_plans WHERE date = ?`, day)
	if err != nil {
		return fmt.Errorf("deleting plan for %s: %w", day, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan for %s: %w", day, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) loadMeals(ctx context.Context, day string) ([]domain.Meal, error) {
	query := `SELECT id, slot, recipe_id, name, image_url, is_prep_mode, instructions,
		calories, protein, carbs, fats
		FROM meals WHERE plan_date = ?
		ORDER BY CASE slot WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 ELSE 2 END`
	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("loading meals for %s: %w", day, err)
	}
	defer rows.Close()

	type storedMeal struct {
		id       string
		prepMode bool
		meal     domain.Meal
	}
	var stored []storedMeal
	for rows.Next() {
		var sm storedMeal
		var slot, instructionsJSON string
		var prepModeInt int
		if err := rows.Scan(
			&sm.id, &slot, &sm.meal.RecipeID, &sm.meal.Name, &sm.meal.ImageURL,
			&prepModeInt, &instructionsJSON,
			&sm.meal.Calories, &sm.meal.Protein, &sm.meal.Carbs, &sm.meal.Fats,
		); err != nil {
			return nil, fmt.Errorf("scanning meal: %w", err)
		}
		sm.meal.Type = domain.MealType(slot)
		sm.prepMode = intToBool(prepModeInt)
		if sm.meal.Instructions, err = unmarshalStrings(instructionsJSON); err != nil {
			return nil, fmt.Errorf("meal %s instructions: %w", sm.id, err)
		}
		stored = append(stored, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	meals := make([]domain.Meal, 0, len(stored))
	for _, sm := range stored {
		if err := r.loadMealIngredients(ctx, sm.id, sm.prepMode, &sm.meal); err != nil {
			return nil, err
		}
		meals = append(meals, sm.meal)
	}
	return meals, nil
}

func (r *SQLitePlanRepo) loadMealIngredients(ctx context.Context, mealID string, prepMode bool, meal *domain.Meal) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ingredient_id, name, amount, unit, prepped FROM meal_ingredients
		WHERE meal_id = ? ORDER BY order_index`, mealID)
	if err != nil {
		return fmt.Errorf("loading ingredients for meal %s: %w", mealID, err)
	}
	defer rows.Close()

	var breakdown domain.MealPrepBreakdown
	for rows.Next() {
		var mi domain.MealIngredient
		var preppedInt int
		if err := rows.Scan(&mi.IngredientID, &mi.Name, &mi.Amount, &mi.Unit, &preppedInt); err != nil {
			return fmt.Errorf("scanning meal ingredient: %w", err)
		}
		meal.Ingredients = append(meal.Ingredients, mi)
		if intToBool(preppedInt) {
			breakdown.Prepped = append(breakdown.Prepped, mi)
		} else {
			breakdown.Fresh = append(breakdown.Fresh, mi)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if prepMode {
		meal.Prep = &breakdown
	}
	return nil
}
