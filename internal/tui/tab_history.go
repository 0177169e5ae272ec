package tui

import (
	"strings"

	"kartasist/internal/model"
	"kartasist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	txs := a.recentTransactions()

	if len(txs) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + emptyStyle.Render("  No transactions yet. Record one from the Cards tab.")
	}

	cardNames := make(map[string]string)
	for _, c := range a.tracker.Cards() {
		cardNames[c.ID] = c.Name
	}

	// Keep the cursor visible inside the available rows.
	visible := contentH - 4
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.histCursor >= visible {
		start = a.histCursor - visible + 1
	}
	end := start + visible
	if end > len(txs) {
		end = len(txs)
	}

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	spendStyle := lipgloss.NewStyle().Foreground(t.Red)
	payStyle := lipgloss.NewStyle().Foreground(t.Green)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString("\n")
	for i := start; i < end; i++ {
		tx := txs[i]

		marker := "  "
		if i == a.histCursor {
			marker = cursorStyle.Render("▸ ")
		}

		name := cardNames[tx.CardID]
		if name == "" {
			name = "(deleted card)"
		}

		amount := a.fmtr.Currency(tx.Amount)
		var amountStyled, tag string
		if tx.Kind == model.KindPayment {
			amountStyled = payStyle.Render("-" + amount)
			tag = ""
		} else {
			amountStyled = spendStyle.Render("+" + amount)
			tag = noteStyle.Render(" · " + string(tx.Category))
		}

		line := marker +
			dateStyle.Render(tx.Date.Format("Jan 02")) + "  " +
			nameStyle.Render(truncStr(name, 20)) + "  " +
			amountStyled + tag
		if tx.Description != "" {
			line += noteStyle.Render("  " + truncStr(tx.Description, cw-lipgloss.Width(line)-4))
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(txs) > visible {
		b.WriteString(dimStyle.Render("  ..."))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("  [d]elete transaction (reverses its effect)"))

	return b.String()
}
