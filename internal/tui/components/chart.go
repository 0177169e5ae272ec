package components

import (
	"fmt"
	"strings"

	"kartasist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BreakdownEntry is one labeled value in a horizontal bar list.
type BreakdownEntry struct {
	Label string
	Value float64
}

// BreakdownBars renders a horizontal bar per entry, scaled against the
// largest value. Entries render in the given order; zero values still get
// a row so the category list stays stable.
func BreakdownBars(entries []BreakdownEntry, formatValue func(float64) string, width int) string {
	if len(entries) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	labelW := 0
	for _, e := range entries {
		if e.Value > maxVal {
			maxVal = e.Value
		}
		if len(e.Label) > labelW {
			labelW = len(e.Label)
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	valueW := 0
	values := make([]string, len(entries))
	for i, e := range entries {
		values[i] = formatValue(e.Value)
		if w := lipgloss.Width(values[i]); w > valueW {
			valueW = w
		}
	}

	barW := width - labelW - valueW - 3
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	fillStyle := lipgloss.NewStyle().Foreground(t.Accent)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, e := range entries {
		filled := int(e.Value / maxVal * float64(barW))
		if filled > barW {
			filled = barW
		}
		if filled < 0 {
			filled = 0
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, e.Label)))
		b.WriteString(" ")
		b.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(emptyStyle.Render(strings.Repeat("░", barW-filled)))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW, values[i])))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
