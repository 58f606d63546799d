package service

import (
	"context"

	"github.com/alexanderramin/mise/internal/contract"
	"github.com/alexanderramin/mise/internal/domain"
)

// PlanService generates, mutates, and persists day plans.
type PlanService interface {
	Generate(ctx context.Context, req contract.GeneratePlanRequest) (*contract.GeneratePlanResponse, error)
	Get(ctx context.Context, req contract.GeneratePlanRequest) (*contract.GeneratePlanResponse, error)
	Regenerate(ctx context.Context, req contract.RegenerateMealRequest) (*contract.RegenerateMealResponse, error)
	Alternatives(ctx context.Context, req contract.AlternativesRequest) (*contract.AlternativesResponse, error)
}

// PrepService derives and persists batch-prep manifests and their step
// sequences.
type PrepService interface {
	BuildManifest(ctx context.Context, req contract.BuildManifestRequest) (*contract.BuildManifestResponse, error)
	Steps(ctx context.Context, manifestID string) (*contract.PrepStepsResponse, error)
}

// ProfileService reads and updates the local nutrition profile.
type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}

// CatalogService imports ingredient/recipe catalogs.
type CatalogService interface {
	ImportFromFile(ctx context.Context, path string) (*contract.ImportCatalogResponse, error)
}
