// Package contract defines the request/response types and typed errors of
// the service layer. CLI code depends on this package, never on service
// internals.
package contract

// PlanErrorCode identifies a stable, machine-readable failure category.
type PlanErrorCode string

const (
	PlanErrMissingTargets PlanErrorCode = "MISSING_TARGETS"
	PlanErrNoRecipes      PlanErrorCode = "NO_RECIPES"
	PlanErrPlanNotFound   PlanErrorCode = "PLAN_NOT_FOUND"
	PlanErrNoManifest     PlanErrorCode = "NO_MANIFEST"
	PlanErrInternal       PlanErrorCode = "INTERNAL_ERROR"
)

// PlanError is the typed error returned by service operations.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewPlanError builds a PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string) *PlanError {
	return &PlanError{Code: code, Message: message}
}
