package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mise/internal/domain"
)

const targetBarWidth = 20

// FormatDayPlan renders a full day plan: one block per slot, then the daily
// totals. When the profile carries targets, totals are shown as target bars.
func FormatDayPlan(date time.Time, plan *domain.DayPlan, profile *domain.Profile) string {
	var b strings.Builder

	b.WriteString(Header("Plan for " + HumanDate(date)))
	b.WriteString("\n\n")

	for i := range plan.Meals {
		b.WriteString(formatMealSummary(&plan.Meals[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n" + Bold("Daily totals") + "\n")
	if profile != nil && profile.HasCalorieTarget() {
		b.WriteString("  " + RenderTargetBar(plan.Totals.Calories, profile.TargetCalories, "kcal", targetBarWidth) + "\n")
		if profile.HasMacroTargets() {
			b.WriteString("  " + RenderTargetBar(plan.Totals.Protein, profile.TargetProtein, "g protein", targetBarWidth) + "\n")
			b.WriteString("  " + RenderTargetBar(plan.Totals.Carbs, profile.TargetCarbs, "g carbs", targetBarWidth) + "\n")
			b.WriteString("  " + RenderTargetBar(plan.Totals.Fats, profile.TargetFats, "g fats", targetBarWidth) + "\n")
		} else {
			b.WriteString("  " + Dim(MacroLine(plan.Totals.Protein, plan.Totals.Carbs, plan.Totals.Fats)) + "\n")
		}
	} else {
		b.WriteString("  " + Bold(Kcal(plan.Totals.Calories)) + "  " + Dim(MacroLine(plan.Totals.Protein, plan.Totals.Carbs, plan.Totals.Fats)) + "\n")
	}

	return b.String()
}

func formatMealSummary(m *domain.Meal) string {
	if m.IsPlaceholder() {
		return fmt.Sprintf("%s  %s", SlotLabel(m.Type), Dim(m.Name))
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		SlotLabel(m.Type),
		Bold(m.Name),
		StyleGreen.Render(Kcal(m.Calories)),
		Dim(MacroLine(m.Protein, m.Carbs, m.Fats)),
	)
	if m.IsPrepMode() {
		line += "  " + PrepBadge()
	}
	return line
}

// FormatMealDetail renders one meal with its ingredient list and numbered
// instructions. Prep-mode meals show the prepped/fresh split.
func FormatMealDetail(m *domain.Meal) string {
	var b strings.Builder

	b.WriteString(formatMealSummary(m) + "\n")
	if m.IsPlaceholder() {
		b.WriteString(Dim("  No recipe matched this slot. Try importing more recipes or relaxing your dislikes.") + "\n")
		return b.String()
	}

	if m.IsPrepMode() {
		if len(m.Prep.Prepped) > 0 {
			b.WriteString("\n  " + StylePurple.Render("From the fridge") + "\n")
			writeIngredients(&b, m.Prep.Prepped)
		}
		if len(m.Prep.Fresh) > 0 {
			b.WriteString("\n  " + StyleGreen.Render("Fresh") + "\n")
			writeIngredients(&b, m.Prep.Fresh)
		}
	} else if len(m.Ingredients) > 0 {
		b.WriteString("\n  " + Bold("Ingredients") + "\n")
		writeIngredients(&b, m.Ingredients)
	}

	if len(m.Instructions) > 0 {
		b.WriteString("\n  " + Bold("Instructions") + "\n")
		for i, step := range m.Instructions {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), step))
		}
	}

	return b.String()
}

func writeIngredients(b *strings.Builder, items []domain.MealIngredient) {
	for _, ing := range items {
		b.WriteString(fmt.Sprintf("  · %s %s\n", ing.Name, Dim(Amount(ing.Amount, ing.Unit))))
	}
}

// FormatAlternatives renders the swap candidates for a slot as a table,
// closest match first.
func FormatAlternatives(current *domain.Meal, alternatives []domain.Meal) string {
	var b strings.Builder

	b.WriteString(Header("Alternatives for " + string(current.Type)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Current: %s %s\n\n", Bold(current.Name), Dim(Kcal(current.Calories))))

	if len(alternatives) == 0 {
		b.WriteString(Dim("No close matches in the catalog.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(alternatives))
	for _, alt := range alternatives {
		rows = append(rows, []string{
			alt.Name,
			Kcal(alt.Calories),
			fmt.Sprintf("%+.0f", alt.Calories-current.Calories),
			fmt.Sprintf("%+.0fg", alt.Protein-current.Protein),
		})
	}
	b.WriteString(RenderTable([]string{"RECIPE", "CALORIES", "Δ KCAL", "Δ PROTEIN"}, rows))

	return b.String()
}
