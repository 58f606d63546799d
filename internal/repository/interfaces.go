package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/mise/internal/domain"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// CatalogRepo persists the ingredient/recipe catalog. The catalog is
// replaced wholesale on import and loaded once at startup.
type CatalogRepo interface {
	ReplaceAll(ctx context.Context, ingredients []domain.Ingredient, recipes []domain.Recipe) error
	LoadAll(ctx context.Context) ([]domain.Ingredient, []domain.Recipe, error)
}

// ProfileRepo persists the single local nutrition profile.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// PlanRepo persists day plans keyed by calendar date.
type PlanRepo interface {
	Upsert(ctx context.Context, date time.Time, plan *domain.DayPlan) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DayPlan, error)
	ListRange(ctx context.Context, start time.Time, days int) ([]domain.DatedPlan, error)
	Delete(ctx context.Context, date time.Time) error
}

// ManifestRepo persists prep manifests.
type ManifestRepo interface {
	Create(ctx context.Context, m *domain.PrepManifest) error
	GetByID(ctx context.Context, id string) (*domain.PrepManifest, error)
	Latest(ctx context.Context) (*domain.PrepManifest, error)
}
