package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mise/internal/domain"
)

// FormatManifest renders a prep manifest grouped by prep group.
func FormatManifest(m *domain.PrepManifest) string {
	var b strings.Builder

	end := m.StartDate.AddDate(0, 0, m.Days-1)
	b.WriteString(Header(fmt.Sprintf("Prep list · %s – %s",
		m.StartDate.Format("Jan 2"), end.Format("Jan 2"))))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("manifest %s · %d days", plainTruncID(m.ID), m.Days)) + "\n\n")

	if len(m.Groups) == 0 {
		b.WriteString(Dim("Nothing to prep for this range.") + "\n")
		return b.String()
	}

	for _, g := range m.Groups {
		b.WriteString(StylePurple.Render(g.Group) + "\n")
		for _, item := range g.Items {
			b.WriteString(fmt.Sprintf("  · %s %s  %s\n",
				item.Name,
				Dim(Amount(item.TotalAmount, item.Unit)),
				Dim(item.Method),
			))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatSteps renders the ordered prep step sequence as a numbered list.
func FormatSteps(m *domain.PrepManifest, steps []domain.PrepStep) string {
	var b strings.Builder

	b.WriteString(Header("Prep sequence"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("manifest %s · %s", plainTruncID(m.ID), HumanDate(m.StartDate))) + "\n\n")

	for i, step := range steps {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleHeader.Render(fmt.Sprintf("%2d.", i+1)), step.Text))
	}

	return b.String()
}

// FormatBuildResult summarizes a just-built manifest.
func FormatBuildResult(m *domain.PrepManifest, plansScanned, skipped int) string {
	var b strings.Builder

	b.WriteString(FormatManifest(m))
	b.WriteString("\n" + Dim(fmt.Sprintf("Aggregated %d plan(s).", plansScanned)))
	if skipped > 0 {
		b.WriteString(" " + StyleYellow.Render(fmt.Sprintf("%d ingredient line(s) skipped (not in catalog).", skipped)))
	}
	b.WriteString("\n")

	return b.String()
}

// plainTruncID shortens an id without styling; manifest ids appear inside
// already-dimmed lines.
func plainTruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
