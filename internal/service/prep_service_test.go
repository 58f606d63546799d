package service_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/mise/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepService_BuildManifestFromStoredPlans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.planSvc.Generate(ctx, contract.GeneratePlanRequest{Date: monday.AddDate(0, 0, i)})
		require.NoError(t, err)
	}

	resp, err := f.prepSvc.BuildManifest(ctx, contract.NewBuildManifestRequest(monday))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.PlansScanned)
	assert.Zero(t, resp.SkippedIngredients)
	assert.NotEmpty(t, resp.Manifest.ID)
	assert.NotEmpty(t, resp.Manifest.Groups, "three days of plans must yield preppable demand")

	// Stored and retrievable.
	stored, err := f.manifests.GetByID(ctx, resp.Manifest.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Manifest.Groups, stored.Groups)
}

func TestPrepService_BuildManifestWithoutPlans(t *testing.T) {
	f := newFixture(t)

	_, err := f.prepSvc.BuildManifest(context.Background(), contract.NewBuildManifestRequest(monday))
	require.Error(t, err)
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.PlanErrPlanNotFound, planErr.Code)
}

func TestPrepService_BuildManifestCountsPartialRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Only one of the three days has a plan.
	_, err := f.planSvc.Generate(ctx, contract.GeneratePlanRequest{Date: monday.AddDate(0, 0, 1)})
	require.NoError(t, err)

	resp, err := f.prepSvc.BuildManifest(ctx, contract.NewBuildManifestRequest(monday))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.PlansScanned)
}

func TestPrepService_StepsFromLatestManifest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.planSvc.Generate(ctx, contract.GeneratePlanRequest{Date: monday.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	built, err := f.prepSvc.BuildManifest(ctx, contract.NewBuildManifestRequest(monday))
	require.NoError(t, err)

	resp, err := f.prepSvc.Steps(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, built.Manifest.ID, resp.Manifest.ID)
	require.NotEmpty(t, resp.Steps)
	assert.Equal(t, "step-cool-store", resp.Steps[len(resp.Steps)-1].ID)

	// IDs are unique after the dedup pass.
	seen := make(map[string]bool)
	for _, step := range resp.Steps {
		assert.False(t, seen[step.ID], "duplicate step id %s", step.ID)
		seen[step.ID] = true
	}
}

func TestPrepService_StepsWithoutManifest(t *testing.T) {
	f := newFixture(t)

	_, err := f.prepSvc.Steps(context.Background(), "")
	require.Error(t, err)
	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.PlanErrNoManifest, planErr.Code)
}

func TestPrepService_ManifestFeedsBackIntoScaling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.planSvc.Generate(ctx, contract.GeneratePlanRequest{Date: monday.AddDate(0, 0, i)})
		require.NoError(t, err)
	}
	built, err := f.prepSvc.BuildManifest(ctx, contract.NewBuildManifestRequest(monday))
	require.NoError(t, err)

	regen, err := f.planSvc.Generate(ctx, contract.GeneratePlanRequest{Date: monday, UsePrep: true})
	require.NoError(t, err)

	// Every prepped ingredient of the regenerated plan must exist in the
	// manifest it was scaled against.
	for _, meal := range regen.Plan.Meals {
		require.True(t, meal.IsPrepMode())
		for _, mi := range meal.Prep.Prepped {
			assert.NotNil(t, built.Manifest.FindItem(mi.IngredientID),
				"prepped ingredient %s missing from manifest", mi.IngredientID)
		}
	}
}
