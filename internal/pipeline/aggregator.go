// Package pipeline derives view and summary state from the card and
// transaction collections. Everything here is recomputed on demand from the
// canonical lists; nothing is cached.
package pipeline

import (
	"kartasist/internal/model"
)

// Aggregate folds the card and transaction lists into summary totals and a
// per-category spending breakdown. Order-independent, O(cards + transactions).
// Empty input yields zero totals and a zero-filled breakdown.
func Aggregate(cards []model.Card, txs []model.Transaction) model.CardStats {
	stats := model.CardStats{
		Breakdown: make(map[model.SpendingCategory]float64, len(model.Categories)),
	}
	for _, cat := range model.Categories {
		stats.Breakdown[cat] = 0
	}

	// Payments never enter the breakdown; unknown labels fold into Other.
	for _, tx := range txs {
		if tx.Kind != model.KindSpending {
			continue
		}
		stats.Breakdown[model.NormalizeCategory(string(tx.Category))] += tx.Amount
	}

	for _, c := range cards {
		stats.TotalLimit += c.TotalLimit
		stats.TotalUsed += c.UsedAmount
		stats.TotalRemaining += c.Remaining()
	}

	return stats
}

// TransactionsForCard returns the transactions referencing the given card,
// preserving input order.
func TransactionsForCard(txs []model.Transaction, cardID string) []model.Transaction {
	var result []model.Transaction
	for _, tx := range txs {
		if tx.CardID == cardID {
			result = append(result, tx)
		}
	}
	return result
}
