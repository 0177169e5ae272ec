// Package model defines domain types for kartasist cards and transactions.
package model

import (
	"errors"
	"strings"
)

var (
	// ErrMissingName indicates an empty card name.
	ErrMissingName = errors.New("card name is required")
	// ErrMissingBank indicates an empty bank name.
	ErrMissingBank = errors.New("bank name is required")
	// ErrNegativeLimit indicates a negative total limit.
	ErrNegativeLimit = errors.New("total limit cannot be negative")
	// ErrNegativeUsed indicates a negative used amount.
	ErrNegativeUsed = errors.New("used amount cannot be negative")
	// ErrInvalidDueDay indicates a due day outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")
	// ErrInvalidStatementDay indicates a statement day outside 1-31.
	ErrInvalidStatementDay = errors.New("statement day must be between 1 and 31")
)

// Card is a tracked credit line with a limit, a used amount, and a monthly
// due day. The remaining limit is always derived via Remaining and is never
// stored; persisting it separately lets it drift after edits.
type Card struct {
	ID           string  `json:"id"`
	Name         string  `json:"cardName"`
	Bank         string  `json:"bank"`
	TotalLimit   float64 `json:"totalLimit"`
	UsedAmount   float64 `json:"usedAmount"`
	DueDay       int     `json:"dueDay"`
	StatementDay int     `json:"statementDay"`
}

// Remaining returns the derived remaining limit.
func (c Card) Remaining() float64 {
	return c.TotalLimit - c.UsedAmount
}

// Validate checks the card fields a user can enter. The ID is allowed to be
// empty here: the state owner assigns one on create.
func (c Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(c.Bank) == "" {
		return ErrMissingBank
	}
	if c.TotalLimit < 0 {
		return ErrNegativeLimit
	}
	if c.UsedAmount < 0 {
		return ErrNegativeUsed
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return ErrInvalidDueDay
	}
	if c.StatementDay < 1 || c.StatementDay > 31 {
		return ErrInvalidStatementDay
	}
	return nil
}
