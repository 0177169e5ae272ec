package tui

import (
	"fmt"
	"strings"

	"kartasist/internal/cli"
	"kartasist/internal/ledger"
	"kartasist/internal/tui/components"
	"kartasist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCardsTab(cw int) string {
	t := theme.Active
	cards := a.sortedCards()

	header := a.renderCardsHeader()

	if len(cards) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		if a.searchQuery != "" {
			return header + "\n" + emptyStyle.Render(fmt.Sprintf("  No cards match %q. [esc] clears the filter.", a.searchQuery))
		}
		return header + "\n" + emptyStyle.Render("  No cards yet. Press [a] to add one.")
	}

	labelW := 0
	for _, c := range cards {
		if len(c.Name) > labelW {
			labelW = len(c.Name)
		}
	}
	if labelW > 24 {
		labelW = 24
	}

	barW := cw - labelW - 30
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, c := range cards {
		marker := "  "
		if i == a.cardCursor {
			marker = cursorStyle.Render("▸ ")
		}

		util := cli.Utilization(c.UsedAmount, c.TotalLimit)
		days := ledger.DaysUntilDue(a.now, c.DueDay)
		b.WriteString(marker)
		b.WriteString(components.UtilizationBar(truncStr(c.Name, labelW), util, days, labelW, barW))
		b.WriteString("\n")
	}

	// Detail panel for the selected card.
	if card, ok := a.selectedCard(); ok {
		days := ledger.DaysUntilDue(a.now, card.DueDay)

		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		detail := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s\n%s %s (day %d)\n%s day %d",
			labelStyle.Render("Bank:         "), valueStyle.Render(card.Bank),
			labelStyle.Render("Total limit:  "), valueStyle.Render(a.fmtr.Currency(card.TotalLimit)),
			labelStyle.Render("Used:         "), valueStyle.Render(a.fmtr.Currency(card.UsedAmount)),
			labelStyle.Render("Remaining:    "), valueStyle.Render(a.fmtr.Currency(card.Remaining())),
			labelStyle.Render("Payment due:  "), valueStyle.Render(cli.FormatDays(days)), card.DueDay,
			labelStyle.Render("Statement:    "), card.StatementDay)

		b.WriteString("\n")
		b.WriteString(components.ContentCard(card.Name, detail, min(cw, 60)))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  [a]dd  [e]dit  [s]pend  [p]ay  [d]elete  [/]search  [f]sort  [r]everse"))

	return b.String()
}

// renderCardsHeader shows the live search input, or the current sort key
// and filter.
func (a App) renderCardsHeader() string {
	t := theme.Active

	if a.searching {
		return "\n  " + a.searchInput.View()
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)

	line := dimStyle.Render("  sort: ") + accentStyle.Render(string(a.sortCfg.Field))
	if a.sortCfg.Descending {
		line += accentStyle.Render(" ↓")
	}
	if a.searchQuery != "" {
		line += dimStyle.Render("  filter: ") + accentStyle.Render(a.searchQuery)
	}
	return "\n" + line
}
