package contract

import (
	"time"

	"github.com/alexanderramin/mise/internal/domain"
)

// BuildManifestRequest aggregates the stored plans in [StartDate,
// StartDate+Days) into a prep manifest.
type BuildManifestRequest struct {
	StartDate time.Time
	Days      int
}

// NewBuildManifestRequest applies the default three-day prep horizon.
func NewBuildManifestRequest(start time.Time) BuildManifestRequest {
	return BuildManifestRequest{StartDate: start, Days: 3}
}

type BuildManifestResponse struct {
	Manifest domain.PrepManifest
	// SkippedIngredients counts meal ingredient lines that could not be
	// resolved against the catalog.
	SkippedIngredients int
	PlansScanned       int
}

type PrepStepsResponse struct {
	Manifest domain.PrepManifest
	Steps    []domain.PrepStep
}

// ImportCatalogResponse reports what a catalog import wrote.
type ImportCatalogResponse struct {
	Ingredients int
	Recipes     int
}
