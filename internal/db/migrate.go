package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ingredients (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		unit        TEXT NOT NULL DEFAULT '',
		can_prep    INTEGER NOT NULL DEFAULT 0,
		prep_method TEXT NOT NULL DEFAULT '',
		prep_group  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ingredients_name ON ingredients(name)`,

	`CREATE TABLE IF NOT EXISTS recipes (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		base_calories REAL NOT NULL CHECK(base_calories > 0),
		meal_types    TEXT NOT NULL DEFAULT '[]',
		tags          TEXT NOT NULL DEFAULT '[]',
		instructions  TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS recipe_ingredients (
		recipe_id     TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		ingredient_id TEXT NOT NULL REFERENCES ingredients(id),
		amount        REAL NOT NULL CHECK(amount > 0),
		unit          TEXT NOT NULL DEFAULT '',
		order_index   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (recipe_id, ingredient_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe ON recipe_ingredients(recipe_id)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id              TEXT PRIMARY KEY DEFAULT 'default',
		target_calories REAL NOT NULL DEFAULT 0,
		target_protein  REAL NOT NULL DEFAULT 0,
		target_carbs    REAL NOT NULL DEFAULT 0,
		target_fats     REAL NOT NULL DEFAULT 0,
		liked_foods     TEXT NOT NULL DEFAULT '[]',
		disliked_foods  TEXT NOT NULL DEFAULT '[]'
	)`,

	// Seed default profile
	`INSERT OR IGNORE INTO profile (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS day_plans (
		date       TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS meals (
		id           TEXT PRIMARY KEY,
		plan_date    TEXT NOT NULL REFERENCES day_plans(date) ON DELETE CASCADE,
		slot         TEXT NOT NULL CHECK(slot IN ('breakfast','lunch','dinner')),
		recipe_id    TEXT NOT NULL DEFAULT '',
		name         TEXT NOT NULL,
		image_url    TEXT NOT NULL DEFAULT '',
		is_prep_mode INTEGER NOT NULL DEFAULT 0,
		instructions TEXT NOT NULL DEFAULT '[]',
		calories     REAL NOT NULL DEFAULT 0,
		protein      REAL NOT NULL DEFAULT 0,
		carbs        REAL NOT NULL DEFAULT 0,
		fats         REAL NOT NULL DEFAULT 0,
		UNIQUE (plan_date, slot)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_meals_plan ON meals(plan_date)`,

	`CREATE TABLE IF NOT EXISTS meal_ingredients (
		meal_id       TEXT NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
		order_index   INTEGER NOT NULL,
		ingredient_id TEXT NOT NULL DEFAULT '',
		name          TEXT NOT NULL,
		amount        REAL NOT NULL,
		unit          TEXT NOT NULL DEFAULT '',
		prepped       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (meal_id, order_index)
	)`,

	`CREATE TABLE IF NOT EXISTS prep_manifests (
		id         TEXT PRIMARY KEY,
		start_date TEXT NOT NULL,
		days       INTEGER NOT NULL CHECK(days > 0),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_prep_manifests_start ON prep_manifests(start_date)`,

	`CREATE TABLE IF NOT EXISTS prep_manifest_items (
		manifest_id   TEXT NOT NULL REFERENCES prep_manifests(id) ON DELETE CASCADE,
		group_name    TEXT NOT NULL,
		ingredient_id TEXT NOT NULL,
		name          TEXT NOT NULL,
		total_amount  REAL NOT NULL,
		unit          TEXT NOT NULL DEFAULT '',
		method        TEXT NOT NULL DEFAULT '',
		order_index   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (manifest_id, group_name, ingredient_id)
	)`,

	// Recipe cards gained images after the initial schema shipped
	`ALTER TABLE recipes ADD COLUMN image_url TEXT NOT NULL DEFAULT ''`,
}
