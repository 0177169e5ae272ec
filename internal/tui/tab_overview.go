package tui

import (
	"fmt"
	"sort"
	"strings"

	"kartasist/internal/cli"
	"kartasist/internal/ledger"
	"kartasist/internal/model"
	"kartasist/internal/pipeline"
	"kartasist/internal/tui/components"
	"kartasist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	cards := a.tracker.Cards()

	if len(cards) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + emptyStyle.Render("  No cards yet. Press [a] to add one.")
	}

	stats := pipeline.Aggregate(cards, a.tracker.Transactions())
	util := cli.Utilization(stats.TotalUsed, stats.TotalLimit)

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{"Cards", fmt.Sprintf("%d", len(cards)), ""},
		{"Total Limit", a.fmtr.Currency(stats.TotalLimit), ""},
		{"Total Used", a.fmtr.Currency(stats.TotalUsed), cli.FormatPercent(util) + " utilized"},
		{"Remaining", a.fmtr.Currency(stats.TotalRemaining), ""},
	}, cw))
	b.WriteString("\n")

	// Upcoming due dates and the category breakdown side by side.
	widths := components.LayoutRow(cw, 2)

	dueBody := a.renderUpcomingDue(cards, components.CardInnerWidth(widths[0]))
	dueCard := components.ContentCard("Upcoming Due Dates", dueBody, widths[0])

	entries := make([]components.BreakdownEntry, 0, len(model.Categories))
	for _, cat := range model.Categories {
		entries = append(entries, components.BreakdownEntry{
			Label: string(cat),
			Value: stats.Breakdown[cat],
		})
	}
	breakdownBody := components.BreakdownBars(entries, a.fmtr.Currency, components.CardInnerWidth(widths[1]))
	breakdownCard := components.ContentCard("Spending by Category", breakdownBody, widths[1])

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, dueCard, breakdownCard))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Savings Tip", a.renderAdviceBody(components.CardInnerWidth(cw)), cw))

	return b.String()
}

// renderUpcomingDue lists cards by soonest due date.
func (a App) renderUpcomingDue(cards []model.Card, w int) string {
	t := theme.Active

	type dueEntry struct {
		card model.Card
		days int
	}
	entries := make([]dueEntry, 0, len(cards))
	for _, c := range cards {
		entries = append(entries, dueEntry{card: c, days: ledger.DaysUntilDue(a.now, c.DueDay)})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].days < entries[j].days })

	if len(entries) > 5 {
		entries = entries[:5]
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	soonStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	laterStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, e := range entries {
		due := cli.FormatDays(e.days)
		dueStyled := laterStyle.Render(due)
		if e.days <= 3 {
			dueStyled = soonStyle.Render(due)
		}

		left := nameStyle.Render(truncStr(e.card.Name, w-24))
		right := amountStyle.Render(a.fmtr.Currency(e.card.UsedAmount)) + " " + dueStyled

		pad := w - lipgloss.Width(left) - lipgloss.Width(right)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(left + strings.Repeat(" ", pad) + right)
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) renderAdviceBody(w int) string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	if a.adviceFetching {
		return a.spinner.View() + hintStyle.Render(" Thinking...")
	}
	if a.advice == "" {
		return hintStyle.Render("Press [g] for an AI savings tip based on your balances.")
	}
	return textStyle.Render(strings.Join(wrapLines(a.advice, w), "\n"))
}
