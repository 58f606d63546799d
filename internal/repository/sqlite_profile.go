package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT id, target_calories, target_protein, target_carbs, target_fats,
		liked_foods, disliked_foods
		FROM profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Profile
	var likedJSON, dislikedJSON string
	err := row.Scan(
		&p.ID,
		&p.TargetCalories,
		&p.TargetProtein,
		&p.TargetCarbs,
		&p.TargetFats,
		&likedJSON,
		&dislikedJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	if p.LikedFoods, err = unmarshalStrings(likedJSON); err != nil {
		return nil, fmt.Errorf("profile liked foods: %w", err)
	}
	if p.DislikedFoods, err = unmarshalStrings(dislikedJSON); err != nil {
		return nil, fmt.Errorf("profile disliked foods: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = "default"
	}
	likedJSON, err := marshalStrings(p.LikedFoods)
	if err != nil {
		return err
	}
	dislikedJSON, err := marshalStrings(p.DislikedFoods)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO profile (id, target_calories, target_protein,
		target_carbs, target_fats, liked_foods, disliked_foods)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.TargetCalories,
		p.TargetProtein,
		p.TargetCarbs,
		p.TargetFats,
		likedJSON,
		dislikedJSON,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
