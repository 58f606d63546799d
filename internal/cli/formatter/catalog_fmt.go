package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mise/internal/domain"
)

// FormatCatalog renders the stored ingredient and recipe registries as two
// tables.
func FormatCatalog(ingredients []domain.Ingredient, recipes []domain.Recipe) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Ingredients (%d)", len(ingredients))))
	b.WriteString("\n")
	ingRows := make([][]string, 0, len(ingredients))
	for i := range ingredients {
		ing := &ingredients[i]
		prep := Dim("—")
		if ing.Preppable() {
			prep = StylePurple.Render(ing.Prep.Group) + " " + Dim("("+ing.Prep.Method+")")
		}
		ingRows = append(ingRows, []string{TruncID(ing.ID), ing.Name, ing.Unit, prep})
	}
	b.WriteString(RenderTable([]string{"ID", "NAME", "UNIT", "PREP"}, ingRows))

	b.WriteString("\n" + Header(fmt.Sprintf("Recipes (%d)", len(recipes))))
	b.WriteString("\n")
	recRows := make([][]string, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		slots := make([]string, 0, len(r.MealTypes))
		for _, mt := range r.MealTypes {
			slots = append(slots, string(mt))
		}
		recRows = append(recRows, []string{
			TruncID(r.ID),
			r.Name,
			strings.Join(slots, ", "),
			Kcal(r.BaseCalories),
			Dim(strings.Join(r.Tags, ", ")),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "NAME", "SLOTS", "BASE", "TAGS"}, recRows))

	return b.String()
}
