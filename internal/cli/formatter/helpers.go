package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

// HumanDateFrom is HumanDate with an explicit reference time.
func HumanDateFrom(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y3, m3, d3 := tomorrow.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Tomorrow"
	}
	yesterday := now.AddDate(0, 0, -1)
	y4, m4, d4 := yesterday.Date()
	if y2 == y4 && m2 == m4 && d2 == d4 {
		return "Yesterday"
	}
	return t.Format("Mon, Jan 2 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Amount formats an ingredient quantity with its unit, e.g. "150g" or
// "2 pcs". Gram/milliliter units attach directly; everything else gets a
// space.
func Amount(amount float64, unit string) string {
	if unit == "g" || unit == "ml" {
		return fmt.Sprintf("%.0f%s", amount, unit)
	}
	return fmt.Sprintf("%.0f %s", amount, unit)
}

// Kcal formats a calorie value, e.g. "650 kcal".
func Kcal(cal float64) string {
	return fmt.Sprintf("%.0f kcal", cal)
}

// MacroLine formats a protein/carbs/fats triple in grams.
func MacroLine(protein, carbs, fats float64) string {
	return fmt.Sprintf("P %.0fg · C %.0fg · F %.0fg", protein, carbs, fats)
}
