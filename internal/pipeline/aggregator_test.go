package pipeline

import (
	"testing"

	"kartasist/internal/model"
)

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil, nil)

	if stats.TotalLimit != 0 || stats.TotalUsed != 0 || stats.TotalRemaining != 0 {
		t.Errorf("totals = %+v, want all zero", stats)
	}
	if len(stats.Breakdown) != len(model.Categories) {
		t.Fatalf("breakdown has %d buckets, want %d", len(stats.Breakdown), len(model.Categories))
	}
	for _, cat := range model.Categories {
		if stats.Breakdown[cat] != 0 {
			t.Errorf("Breakdown[%s] = %.2f, want 0", cat, stats.Breakdown[cat])
		}
	}
}

func TestAggregate_Totals(t *testing.T) {
	cards := []model.Card{
		{ID: "a", TotalLimit: 1000, UsedAmount: 400},
		{ID: "b", TotalLimit: 500, UsedAmount: 100},
	}

	stats := Aggregate(cards, nil)

	if stats.TotalLimit != 1500 {
		t.Errorf("TotalLimit = %.2f, want 1500", stats.TotalLimit)
	}
	if stats.TotalUsed != 500 {
		t.Errorf("TotalUsed = %.2f, want 500", stats.TotalUsed)
	}
	if stats.TotalRemaining != 1000 {
		t.Errorf("TotalRemaining = %.2f, want 1000", stats.TotalRemaining)
	}
}

func TestAggregate_BreakdownExcludesPayments(t *testing.T) {
	txs := []model.Transaction{
		{Kind: model.KindSpending, Amount: 80, Category: model.CategoryGroceries},
		{Kind: model.KindSpending, Amount: 20, Category: model.CategoryGroceries},
		{Kind: model.KindPayment, Amount: 500},
	}

	stats := Aggregate(nil, txs)

	if stats.Breakdown[model.CategoryGroceries] != 100 {
		t.Errorf("Groceries = %.2f, want 100", stats.Breakdown[model.CategoryGroceries])
	}
	var total float64
	for _, v := range stats.Breakdown {
		total += v
	}
	if total != 100 {
		t.Errorf("breakdown total = %.2f, want 100 (payments excluded)", total)
	}
}

func TestAggregate_UnknownCategoryFoldsIntoOther(t *testing.T) {
	txs := []model.Transaction{
		{Kind: model.KindSpending, Amount: 30, Category: ""},
		{Kind: model.KindSpending, Amount: 15, Category: model.SpendingCategory("Restoran")},
	}

	stats := Aggregate(nil, txs)

	if stats.Breakdown[model.CategoryOther] != 45 {
		t.Errorf("Other = %.2f, want 45", stats.Breakdown[model.CategoryOther])
	}
}

func TestTransactionsForCard(t *testing.T) {
	txs := []model.Transaction{
		{ID: "1", CardID: "a"},
		{ID: "2", CardID: "b"},
		{ID: "3", CardID: "a"},
	}

	got := TransactionsForCard(txs, "a")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("TransactionsForCard = %+v, want tx 1 and 3 in order", got)
	}
}
