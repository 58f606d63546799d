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

// SQLiteManifestRepo implements ManifestRepo using a SQLite database.
type SQLiteManifestRepo struct {
	db db.DBTX
}

// NewSQLiteManifestRepo creates a new SQLiteManifestRepo.
func NewSQLiteManifestRepo(conn db.DBTX) *SQLiteManifestRepo {
	return &SQLiteManifestRepo{db: conn}
}

func (r *SQLiteManifestRepo) Create(ctx context.Context, m *domain.PrepManifest) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO prep_manifests (id, start_date, days, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		m.ID, m.StartDate.Format(dateLayout), m.Days, m.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting prep manifest: %w", err)
	}

	order := 0
	for _, g := range m.Groups {
		for _, item := range g.Items {
			query := `INSERT INTO prep_manifest_items (manifest_id, group_name, ingredient_id,
				name, total_amount, unit, method, order_index)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
			if _, err := r.db.ExecContext(ctx, query,
				m.ID, g.Group, item.IngredientID, item.Name, item.TotalAmount, item.Unit, item.Method, order,
			); err != nil {
				return fmt.Errorf("inserting manifest item %s: %w", item.IngredientID, err)
			}
			order++
		}
	}
	return nil
}

func (r *SQLiteManifestRepo) GetByID(ctx context.Context, id string) (*domain.PrepManifest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, start_date, days, created_at FROM prep_manifests WHERE id = ?`, id)
	return r.scanManifest(ctx, row)
}

// Latest returns the most recently created manifest.
func (r *SQLiteManifestRepo) Latest(ctx context.Context) (*domain.PrepManifest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, start_date, days, created_at FROM prep_manifests
		ORDER BY created_at DESC, id DESC LIMIT 1`)
	return r.scanManifest(ctx, row)
}

func (r *SQLiteManifestRepo) scanManifest(ctx context.Context, row *sql.Row) (*domain.PrepManifest, error) {
	var m domain.PrepManifest
	var startStr, createdStr string
	if err := row.Scan(&m.ID, &startStr, &m.Days, &createdStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prep manifest: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prep manifest: %w", err)
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest start date: %w", err)
	}
	m.StartDate = start
	created, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest created_at: %w", err)
	}
	m.CreatedAt = created

	if m.Groups, err = r.loadGroups(ctx, m.ID); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteManifestRepo) loadGroups(ctx context.Context, manifestID string) ([]domain.PreppedGroup, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_name, ingredient_id, name, total_amount, unit, method
		FROM prep_manifest_items WHERE manifest_id = ? ORDER BY order_index`, manifestID)
	if err != nil {
		return nil, fmt.Errorf("loading manifest items: %w", err)
	}
	defer rows.Close()

	var groups []domain.PreppedGroup
	index := make(map[string]int)
	for rows.Next() {
		var group string
		var item domain.PreppedItem
		if err := rows.Scan(&group, &item.IngredientID, &item.Name, &item.TotalAmount, &item.Unit, &item.Method); err != nil {
			return nil, fmt.Errorf("scanning manifest item: %w", err)
		}
		gi, ok := index[group]
		if !ok {
			gi = len(groups)
			index[group] = gi
			groups = append(groups, domain.PreppedGroup{Group: group})
		}
		groups[gi].Items = append(groups[gi].Items, item)
	}
	return groups, rows.Err()
}
