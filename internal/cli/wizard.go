package cli

import (
	"strings"

	"github.com/alexanderramin/mise/internal/cli/formatter"
	"github.com/alexanderramin/mise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// miseHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func miseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectSlot creates a huh form to pick a meal slot.
func wizardSelectSlot(result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.MealSlots))
	for _, slot := range domain.MealSlots {
		label := strings.ToUpper(string(slot)[:1]) + string(slot)[1:]
		options = append(options, huh.NewOption(label, string(slot)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which meal?").
				Options(options...).
				Value(result),
		),
	).WithTheme(miseHuhTheme()).WithShowHelp(false)
}
