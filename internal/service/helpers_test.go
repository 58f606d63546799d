package service_test

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/domain"
	"github.com/alexanderramin/mise/internal/repository"
	"github.com/alexanderramin/mise/internal/service"
	"github.com/alexanderramin/mise/internal/testutil"
	"github.com/stretchr/testify/require"
)

// monday is the base date used across service tests.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	db        *sql.DB
	cat       *catalog.Catalog
	plans     repository.PlanRepo
	profiles  repository.ProfileRepo
	manifests repository.ManifestRepo

	planSvc    service.PlanService
	prepSvc    service.PrepService
	profileSvc service.ProfileService
}

// newFixture builds a fully wired service stack over an in-memory database
// seeded with the standard test catalog and a 2000 kcal profile. Random
// sources are seeded so tests are reproducible.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	database := testutil.NewTestDB(t)
	cat := testutil.NewTestCatalog(t)

	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	require.NoError(t, catalogRepo.ReplaceAll(ctx, testutil.TestIngredients(), testutil.TestRecipes()))

	profileRepo := repository.NewSQLiteProfileRepo(database)
	require.NoError(t, profileRepo.Upsert(ctx, &domain.Profile{
		ID:             "default",
		TargetCalories: 2000,
	}))

	planRepo := repository.NewSQLitePlanRepo(database)
	manifestRepo := repository.NewSQLiteManifestRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var seed int64
	newRand := func() *rand.Rand {
		seed++
		return rand.New(rand.NewSource(seed))
	}

	return &fixture{
		db:        database,
		cat:       cat,
		plans:     planRepo,
		profiles:  profileRepo,
		manifests: manifestRepo,
		planSvc: service.NewPlanService(cat, planRepo, profileRepo, manifestRepo, uow,
			service.WithPlanRandSource(newRand)),
		prepSvc:    service.NewPrepService(cat, planRepo, manifestRepo, uow),
		profileSvc: service.NewProfileService(profileRepo),
	}
}
