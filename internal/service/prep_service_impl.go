package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/contract"
	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/prep"
	"github.com/alexanderramin/mise/internal/repository"
)

type prepService struct {
	cat       *catalog.Catalog
	plans     repository.PlanRepo
	manifests repository.ManifestRepo
	uow       db.UnitOfWork
	obs       UseCaseObserver
}

// PrepServiceOption customizes a PrepService.
type PrepServiceOption func(*prepService)

// WithPrepObserver attaches use-case telemetry.
func WithPrepObserver(obs UseCaseObserver) PrepServiceOption {
	return func(s *prepService) { s.obs = obs }
}

func NewPrepService(
	cat *catalog.Catalog,
	plans repository.PlanRepo,
	manifests repository.ManifestRepo,
	uow db.UnitOfWork,
	opts ...PrepServiceOption,
) PrepService {
	s := &prepService{
		cat:       cat,
		plans:     plans,
		manifests: manifests,
		uow:       uow,
		obs:       NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *prepService) BuildManifest(ctx context.Context, req contract.BuildManifestRequest) (*contract.BuildManifestResponse, error) {
	var resp *contract.BuildManifestResponse
	err := observe(ctx, s.obs, "prep.build_manifest", map[string]any{
		"start": req.StartDate.Format("2006-01-02"), "days": req.Days,
	}, func() error {
		if req.Days <= 0 {
			return contract.NewPlanError(contract.PlanErrInternal, "manifest must cover at least one day")
		}
		plans, err := s.plans.ListRange(ctx, req.StartDate, req.Days)
		if err != nil {
			return fmt.Errorf("loading plans: %w", err)
		}
		if len(plans) == 0 {
			return contract.NewPlanError(contract.PlanErrPlanNotFound,
				fmt.Sprintf("no plans stored between %s and %s; generate them first",
					req.StartDate.Format("2006-01-02"),
					req.StartDate.AddDate(0, 0, req.Days-1).Format("2006-01-02")))
		}

		groups, skipped := prep.Aggregate(s.cat, plans)
		manifest := &domain.PrepManifest{
			StartDate: req.StartDate,
			Days:      req.Days,
			Groups:    groups,
		}

		if err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteManifestRepo(tx).Create(ctx, manifest)
		}); err != nil {
			return fmt.Errorf("storing manifest: %w", err)
		}

		resp = &contract.BuildManifestResponse{
			Manifest:           *manifest,
			SkippedIngredients: skipped,
			PlansScanned:       len(plans),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Steps resolves a manifest (the latest one when manifestID is empty) and
// sequences its prep procedure.
func (s *prepService) Steps(ctx context.Context, manifestID string) (*contract.PrepStepsResponse, error) {
	var m *domain.PrepManifest
	var err error
	if manifestID == "" {
		m, err = s.manifests.Latest(ctx)
	} else {
		m, err = s.manifests.GetByID(ctx, manifestID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, contract.NewPlanError(contract.PlanErrNoManifest,
				"no prep manifest stored; build one with `mise prep build`")
		}
		return nil, fmt.Errorf("loading manifest: %w", err)
	}

	return &contract.PrepStepsResponse{
		Manifest: *m,
		Steps:    prep.BuildSteps(m.Groups),
	}, nil
}
