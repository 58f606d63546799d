package domain

// Profile holds a user's nutrition targets and food preferences. It is
// supplied per call by the surrounding application; the planning core never
// loads or caches it.
type Profile struct {
	ID             string
	TargetCalories float64
	TargetProtein  float64
	TargetCarbs    float64
	TargetFats     float64

	// DislikedFoods are exclusionary tags (hard filter).
	// LikedFoods bias selection toward matching recipes (soft preference).
	LikedFoods    []string
	DislikedFoods []string
}

// HasCalorieTarget reports whether planning is possible at all.
func (p *Profile) HasCalorieTarget() bool {
	return p.TargetCalories > 0
}

// HasMacroTargets reports whether all three macro targets are set, which
// switches meal scaling from calorie-derived macros to target-derived ones.
func (p *Profile) HasMacroTargets() bool {
	return p.TargetProtein > 0 && p.TargetCarbs > 0 && p.TargetFats > 0
}
