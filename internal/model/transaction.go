package model

import "time"

// TransactionKind tags a transaction as spending or payment.
type TransactionKind string

const (
	// KindSpending increases a card's used amount.
	KindSpending TransactionKind = "spending"
	// KindPayment decreases a card's used amount.
	KindPayment TransactionKind = "payment"
)

// SpendingCategory is one of the seven fixed spending buckets.
type SpendingCategory string

const (
	CategoryGroceries     SpendingCategory = "Groceries"
	CategoryFuel          SpendingCategory = "Fuel"
	CategoryEntertainment SpendingCategory = "Entertainment"
	CategoryBills         SpendingCategory = "Bills"
	CategoryHealth        SpendingCategory = "Health"
	CategoryClothing      SpendingCategory = "Clothing"
	CategoryOther         SpendingCategory = "Other"
)

// Categories lists all spending buckets in display order.
var Categories = []SpendingCategory{
	CategoryGroceries,
	CategoryFuel,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealth,
	CategoryClothing,
	CategoryOther,
}

// NormalizeCategory maps an arbitrary label onto one of the fixed buckets.
// Empty or unknown labels fold into Other.
func NormalizeCategory(s string) SpendingCategory {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// Transaction is a single spend or payment event affecting one card.
// Amount is always a positive magnitude; Kind carries the sign.
// Category is only meaningful for spending transactions.
type Transaction struct {
	ID          string           `json:"id"`
	CardID      string           `json:"cardId"`
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Kind        TransactionKind  `json:"type"`
	Category    SpendingCategory `json:"category,omitempty"`
}
