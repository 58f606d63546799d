package domain

import "time"

// PreppedItem is one ingredient's aggregated demand within a prep group,
// summed across every meal of every plan that was scanned.
type PreppedItem struct {
	IngredientID string
	Name         string
	TotalAmount  float64
	Unit         string
	Method       string
}

// PreppedGroup collects the aggregated items of one prep group.
type PreppedGroup struct {
	Group string
	Items []PreppedItem
}

// PrepManifest is a persisted batch-cooking shopping/prep list derived from
// a range of day plans. It is fully recomputed on each aggregation; there is
// no incremental update.
type PrepManifest struct {
	ID        string
	StartDate time.Time
	Days      int
	Groups    []PreppedGroup
	CreatedAt time.Time
}

// Covers reports whether the manifest's date range includes the given day.
func (m *PrepManifest) Covers(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	start := m.StartDate.Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, m.Days)
	return !day.Before(start) && day.Before(end)
}

// FindItem looks up an ingredient across all groups.
func (m *PrepManifest) FindItem(ingredientID string) *PreppedItem {
	for gi := range m.Groups {
		for ii := range m.Groups[gi].Items {
			if m.Groups[gi].Items[ii].IngredientID == ingredientID {
				return &m.Groups[gi].Items[ii]
			}
		}
	}
	return nil
}

// PrepStep is one human-actionable instruction in the ordered prep sequence.
// IDs are stable across rebuilds of the same manifest so a UI can track the
// active step; duplicates are removed by id, first occurrence wins.
type PrepStep struct {
	ID            string
	Text          string
	IngredientIDs []string
}
