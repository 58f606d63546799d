package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanError_Error(t *testing.T) {
	err := NewPlanError(PlanErrNoRecipes, "catalog has no breakfast recipes")
	assert.Equal(t, "NO_RECIPES: catalog has no breakfast recipes", err.Error())
}

func TestNewBuildManifestRequest_Defaults(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	req := NewBuildManifestRequest(start)
	assert.Equal(t, start, req.StartDate)
	assert.Equal(t, 3, req.Days)
}
