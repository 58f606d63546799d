package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/contract"
	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/repository"
)

type catalogService struct {
	uow db.UnitOfWork
	obs UseCaseObserver
}

// CatalogServiceOption customizes a CatalogService.
type CatalogServiceOption func(*catalogService)

// WithCatalogObserver attaches use-case telemetry.
func WithCatalogObserver(obs UseCaseObserver) CatalogServiceOption {
	return func(s *catalogService) { s.obs = obs }
}

func NewCatalogService(uow db.UnitOfWork, opts ...CatalogServiceOption) CatalogService {
	s := &catalogService{uow: uow, obs: NoopUseCaseObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ImportFromFile validates and stores a catalog file, replacing the stored
// catalog wholesale. The replace runs in one transaction: a failed import
// leaves the previous catalog untouched.
func (s *catalogService) ImportFromFile(ctx context.Context, path string) (*contract.ImportCatalogResponse, error) {
	var resp *contract.ImportCatalogResponse
	err := observe(ctx, s.obs, "catalog.import", map[string]any{"path": path}, func() error {
		schema, err := catalog.LoadImportSchema(path)
		if err != nil {
			return fmt.Errorf("loading catalog file: %w", err)
		}
		ingredients, recipes, err := schema.Convert()
		if err != nil {
			return fmt.Errorf("converting catalog file: %w", err)
		}
		// Build the in-memory catalog up front so referential problems are
		// caught before anything touches the database.
		if _, err := catalog.New(ingredients, recipes); err != nil {
			return fmt.Errorf("validating catalog: %w", err)
		}

		if err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteCatalogRepo(tx).ReplaceAll(ctx, ingredients, recipes)
		}); err != nil {
			return fmt.Errorf("storing catalog: %w", err)
		}

		resp = &contract.ImportCatalogResponse{Ingredients: len(ingredients), Recipes: len(recipes)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
