package contract

import (
	"time"

	"github.com/alexanderramin/mise/internal/domain"
)

// GeneratePlanRequest asks for a full day plan for a calendar date.
type GeneratePlanRequest struct {
	Date time.Time
	// UsePrep scales meals against the latest stored manifest covering
	// Date, producing assembly-style instructions.
	UsePrep bool
}

type GeneratePlanResponse struct {
	Date        time.Time
	Plan        domain.DayPlan
	PrepApplied bool
}

// RegenerateMealRequest swaps out a single slot of a stored plan.
type RegenerateMealRequest struct {
	Date time.Time
	Slot domain.MealType
}

type RegenerateMealResponse struct {
	Date     time.Time
	Plan     domain.DayPlan
	Replaced domain.Meal
}

// AlternativesRequest asks for nutritionally equivalent swaps for a slot of
// a stored plan.
type AlternativesRequest struct {
	Date time.Time
	Slot domain.MealType
}

type AlternativesResponse struct {
	Slot         domain.MealType
	Current      domain.Meal
	Alternatives []domain.Meal
}
