package domain

// PrepInfo describes how an ingredient participates in batch prep.
type PrepInfo struct {
	CanPrep bool
	Method  string // e.g. "Boil", "Roast", "Chop"
	Group   string // prep group name, see enums.go
}

// Ingredient is a catalog-owned, immutable ingredient definition.
type Ingredient struct {
	ID   string
	Name string
	Unit string // display unit, e.g. "g", "ml", "pcs"
	Prep *PrepInfo
}

// Preppable reports whether the ingredient can be batch-prepped ahead.
func (i *Ingredient) Preppable() bool {
	return i.Prep != nil && i.Prep.CanPrep
}
