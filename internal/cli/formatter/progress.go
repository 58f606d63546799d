package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderTargetBar renders a bar of actual against target, like
// [████████░░] 1960 / 2000 kcal. Coloring reflects distance from the
// target: green within 5%, yellow within 15%, red beyond.
func RenderTargetBar(actual, target float64, unit string, width int) string {
	if target <= 0 || width < 2 {
		return ""
	}

	pct := actual / target
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	deviation := pct - 1
	if deviation < 0 {
		deviation = -deviation
	}
	style := StyleGreen
	if deviation > 0.15 {
		style = StyleRed
	} else if deviation > 0.05 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %.0f / %.0f %s", style.Render(bar), actual, target, unit)
}
