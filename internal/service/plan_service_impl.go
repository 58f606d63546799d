package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/contract"
	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/planner"
	"github.com/alexanderramin/mise/internal/repository"
)

type planService struct {
	cat       *catalog.Catalog
	plans     repository.PlanRepo
	profiles  repository.ProfileRepo
	manifests repository.ManifestRepo
	uow       db.UnitOfWork
	obs       UseCaseObserver
	newRand   func() *rand.Rand
}

// PlanServiceOption customizes a PlanService.
type PlanServiceOption func(*planService)

// WithPlanObserver attaches use-case telemetry.
func WithPlanObserver(obs UseCaseObserver) PlanServiceOption {
	return func(s *planService) { s.obs = obs }
}

// WithPlanRandSource replaces the per-call random generator factory. Tests
// use it to pin outcomes.
func WithPlanRandSource(newRand func() *rand.Rand) PlanServiceOption {
	return func(s *planService) { s.newRand = newRand }
}

func NewPlanService(
	cat *catalog.Catalog,
	plans repository.PlanRepo,
	profiles repository.ProfileRepo,
	manifests repository.ManifestRepo,
	uow db.UnitOfWork,
	opts ...PlanServiceOption,
) PlanService {
	s := &planService{
		cat:       cat,
		plans:     plans,
		profiles:  profiles,
		manifests: manifests,
		uow:       uow,
		obs:       NoopUseCaseObserver{},
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *planService) Generate(ctx context.Context, req contract.GeneratePlanRequest) (*contract.GeneratePlanResponse, error) {
	var resp *contract.GeneratePlanResponse
	err := observe(ctx, s.obs, "plan.generate", map[string]any{
		"date": req.Date.Format("2006-01-02"), "prep": req.UsePrep,
	}, func() error {
		profile, err := s.loadProfileWithTargets(ctx)
		if err != nil {
			return err
		}
		if len(s.cat.Recipes()) == 0 {
			return contract.NewPlanError(contract.PlanErrNoRecipes, "the catalog has no recipes; import one first")
		}

		var prepped []domain.PreppedGroup
		if req.UsePrep {
			if prepped, err = s.preppedGroupsFor(ctx, req.Date); err != nil {
				return err
			}
		}

		plan := planner.GenerateDayPlan(s.cat, s.newRand(), profile, prepped)
		if plan == nil {
			return contract.NewPlanError(contract.PlanErrMissingTargets, "profile has no calorie target")
		}

		if err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLitePlanRepo(tx).Upsert(ctx, req.Date, plan)
		}); err != nil {
			return fmt.Errorf("storing plan: %w", err)
		}

		resp = &contract.GeneratePlanResponse{Date: req.Date, Plan: *plan, PrepApplied: req.UsePrep}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *planService) Get(ctx context.Context, req contract.GeneratePlanRequest) (*contract.GeneratePlanResponse, error) {
	plan, err := s.loadPlan(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	prepApplied := false
	for _, m := range plan.Meals {
		if m.IsPrepMode() {
			prepApplied = true
		}
	}
	return &contract.GeneratePlanResponse{Date: req.Date, Plan: *plan, PrepApplied: prepApplied}, nil
}

func (s *planService) Regenerate(ctx context.Context, req contract.RegenerateMealRequest) (*contract.RegenerateMealResponse, error) {
	var resp *contract.RegenerateMealResponse
	err := observe(ctx, s.obs, "plan.regenerate", map[string]any{
		"date": req.Date.Format("2006-01-02"), "slot": string(req.Slot),
	}, func() error {
		plan, err := s.loadPlan(ctx, req.Date)
		if err != nil {
			return err
		}
		profile, err := s.loadProfileWithTargets(ctx)
		if err != nil {
			return err
		}
		current := plan.MealAt(req.Slot)
		if current == nil {
			return contract.NewPlanError(contract.PlanErrPlanNotFound,
				fmt.Sprintf("plan for %s has no %s slot", req.Date.Format("2006-01-02"), req.Slot))
		}

		var prepped []domain.PreppedGroup
		if current.IsPrepMode() {
			if prepped, err = s.preppedGroupsFor(ctx, req.Date); err != nil {
				return err
			}
		}

		replacement := planner.RegenerateMeal(s.cat, s.newRand(), profile, req.Slot, current, prepped)
		if replacement == nil {
			return contract.NewPlanError(contract.PlanErrMissingTargets, "profile has no calorie target")
		}
		plan.ReplaceMeal(*replacement)

		if err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLitePlanRepo(tx).Upsert(ctx, req.Date, plan)
		}); err != nil {
			return fmt.Errorf("storing regenerated plan: %w", err)
		}

		resp = &contract.RegenerateMealResponse{Date: req.Date, Plan: *plan, Replaced: *replacement}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *planService) Alternatives(ctx context.Context, req contract.AlternativesRequest) (*contract.AlternativesResponse, error) {
	plan, err := s.loadPlan(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	current := plan.MealAt(req.Slot)
	if current == nil {
		return nil, contract.NewPlanError(contract.PlanErrPlanNotFound,
			fmt.Sprintf("plan for %s has no %s slot", req.Date.Format("2006-01-02"), req.Slot))
	}

	var prepped []domain.PreppedGroup
	if current.IsPrepMode() {
		if prepped, err = s.preppedGroupsFor(ctx, req.Date); err != nil {
			return nil, err
		}
	}

	alts := planner.FindAlternatives(s.cat, s.newRand(), profile, req.Slot, current, prepped)
	return &contract.AlternativesResponse{Slot: req.Slot, Current: *current, Alternatives: alts}, nil
}

func (s *planService) loadPlan(ctx context.Context, date time.Time) (*domain.DayPlan, error) {
	plan, err := s.plans.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, contract.NewPlanError(contract.PlanErrPlanNotFound,
				fmt.Sprintf("no plan stored for %s", date.Format("2006-01-02")))
		}
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	return plan, nil
}

func (s *planService) loadProfileWithTargets(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	if !profile.HasCalorieTarget() {
		return nil, contract.NewPlanError(contract.PlanErrMissingTargets,
			"profile has no calorie target; set one with `mise profile set`")
	}
	return profile, nil
}

// preppedGroupsFor returns the groups of the latest manifest covering the
// date. A missing or non-covering manifest is a typed error so the CLI can
// tell the user to build one.
func (s *planService) preppedGroupsFor(ctx context.Context, date time.Time) ([]domain.PreppedGroup, error) {
	m, err := s.manifests.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, contract.NewPlanError(contract.PlanErrNoManifest,
				"no prep manifest stored; build one with `mise prep build`")
		}
		return nil, fmt.Errorf("loading prep manifest: %w", err)
	}
	if !m.Covers(date) {
		return nil, contract.NewPlanError(contract.PlanErrNoManifest,
			fmt.Sprintf("latest prep manifest does not cover %s", date.Format("2006-01-02")))
	}
	return m.Groups, nil
}
