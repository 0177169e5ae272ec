package tui

import (
	"strconv"
	"strings"

	"kartasist/internal/forms"
	"kartasist/internal/model"

	"github.com/charmbracelet/huh"
)

// txFormValues holds the spend/pay form state. The card form itself is
// shared with the CLI in internal/forms.
type txFormValues struct {
	cardID   string
	cardName string
	kind     model.TransactionKind
	amount   string
	note     string
	category string
}

func newTxFormValues(c model.Card, kind model.TransactionKind) txFormValues {
	return txFormValues{
		cardID:   c.ID,
		cardName: c.Name,
		kind:     kind,
		category: string(model.CategoryOther),
	}
}

func (v *txFormValues) form() *huh.Form {
	title := "Record spending on " + v.cardName
	if v.kind == model.KindPayment {
		title = "Record payment on " + v.cardName
	}

	fields := []huh.Field{
		huh.NewNote().Title(title),
		huh.NewInput().Title("Amount").Value(&v.amount).Validate(forms.ValidAmount(false)),
	}
	if v.kind == model.KindSpending {
		opts := make([]huh.Option[string], 0, len(model.Categories))
		for _, c := range model.Categories {
			opts = append(opts, huh.NewOption(string(c), string(c)))
		}
		fields = append(fields,
			huh.NewSelect[string]().Title("Category").Options(opts...).Value(&v.category))
	}
	fields = append(fields,
		huh.NewInput().Title("Note (optional)").Value(&v.note))

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

func (v *txFormValues) amountValue() float64 {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(v.amount), 64)
	return amount
}
