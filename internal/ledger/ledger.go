// Package ledger applies and reverses transaction effects on card balances
// and computes days until a card's payment is due. All functions are pure:
// cards go in by value and come back changed.
package ledger

import "kartasist/internal/model"

// ApplySpending adds a spending amount to the card's used amount.
func ApplySpending(c model.Card, amount float64) model.Card {
	c.UsedAmount += amount
	return c
}

// ApplyPayment subtracts a payment from the card's used amount, clamped at
// zero. An overpayment forfeits the excess: used amount stays non-negative,
// at the cost of the reversal not being exact when the clamp fired.
func ApplyPayment(c model.Card, amount float64) model.Card {
	c.UsedAmount -= amount
	if c.UsedAmount < 0 {
		c.UsedAmount = 0
	}
	return c
}

// Reverse undoes one transaction's effect on the card. Spending is subtracted
// back (clamped at zero), payments are added back. This is the exact inverse
// of Apply* only when the original application did not clamp.
func Reverse(c model.Card, tx model.Transaction) model.Card {
	if tx.Kind == model.KindPayment {
		c.UsedAmount += tx.Amount
		return c
	}
	c.UsedAmount -= tx.Amount
	if c.UsedAmount < 0 {
		c.UsedAmount = 0
	}
	return c
}
