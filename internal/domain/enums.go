package domain

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealSlots is the canonical slot order of a day plan.
var MealSlots = []MealType{MealBreakfast, MealLunch, MealDinner}

// ValidMealTypes is the canonical set of accepted meal type strings.
var ValidMealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true,
}

// ParseMealType normalizes a slot string, returning ok=false for unknowns.
func ParseMealType(s string) (MealType, bool) {
	if ValidMealTypes[s] {
		return MealType(s), true
	}
	return "", false
}

// Prep group names used by ingredient prep metadata. The sequencer orders
// steps by group; unknown groups are allowed and sort last.
const (
	GroupChoppedAromatics = "Chopped Aromatics"
	GroupChoppedVeggies   = "Chopped Veggies"
	GroupBoiledGrains     = "Boiled Grains"
	GroupBoiledLegumes    = "Boiled Legumes"
	GroupBoiledEggs       = "Boiled Eggs"
	GroupCookedVeggies    = "Cooked Veggies"
	GroupCookedProteins   = "Cooked Proteins"
)
