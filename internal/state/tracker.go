// Package state owns the canonical in-memory card and transaction
// collections and wires user actions to the ledger and persistence. All
// access to the collections goes through Tracker operations; every mutation
// writes both slots through to the store immediately.
package state

import (
	"errors"
	"strings"
	"time"

	"kartasist/internal/ledger"
	"kartasist/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrCardNotFound indicates the referenced card does not exist.
	ErrCardNotFound = errors.New("card not found")
	// ErrTransactionNotFound indicates the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount indicates a zero or negative transaction amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// Persister is the write side of the storage adapter. The store satisfies
// it; tests substitute an in-memory fake.
type Persister interface {
	SaveCards([]model.Card) error
	SaveTransactions([]model.Transaction) error
}

// Tracker is the single authoritative holder of application state.
// It is not safe for concurrent use; all operations run on one logical
// thread of control.
type Tracker struct {
	cards []model.Card
	txs   []model.Transaction
	store Persister

	now   func() time.Time
	newID func() string
}

// New creates a Tracker backed by the given persister, seeded with the
// collections read at startup.
func New(store Persister, cards []model.Card, txs []model.Transaction) *Tracker {
	return &Tracker{
		cards: cards,
		txs:   txs,
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Cards returns a copy of the card list.
func (t *Tracker) Cards() []model.Card {
	out := make([]model.Card, len(t.cards))
	copy(out, t.cards)
	return out
}

// Transactions returns a copy of the transaction list.
func (t *Tracker) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(t.txs))
	copy(out, t.txs)
	return out
}

// CardByID returns the card with the given id.
func (t *Tracker) CardByID(id string) (model.Card, bool) {
	for _, c := range t.cards {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}

// FindCard resolves a user-supplied card reference: exact name match
// (case-insensitive) first, then ID prefix.
func (t *Tracker) FindCard(query string) (model.Card, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.Card{}, false
	}
	for _, c := range t.cards {
		if strings.ToLower(c.Name) == q {
			return c, true
		}
	}
	for _, c := range t.cards {
		if strings.HasPrefix(c.ID, query) {
			return c, true
		}
	}
	return model.Card{}, false
}

// AddOrUpdateCard validates the card and either replaces the matching card
// wholesale (when it carries an id) or assigns a fresh id and appends it.
// Returns the stored card and whether it was newly created.
func (t *Tracker) AddOrUpdateCard(c model.Card) (model.Card, bool, error) {
	if err := c.Validate(); err != nil {
		return model.Card{}, false, err
	}

	if c.ID != "" {
		for i := range t.cards {
			if t.cards[i].ID == c.ID {
				t.cards[i] = c
				return c, false, t.persist()
			}
		}
		return model.Card{}, false, ErrCardNotFound
	}

	c.ID = t.newID()
	t.cards = append(t.cards, c)
	return c, true, t.persist()
}

// RecordSpending creates a spending transaction against the card and applies
// its effect to the card's used amount.
func (t *Tracker) RecordSpending(cardID string, amount float64, description string, category model.SpendingCategory) (model.Transaction, error) {
	return t.record(cardID, amount, description, model.KindSpending, model.NormalizeCategory(string(category)))
}

// RecordPayment creates a payment transaction against the card. Payments
// carry no category.
func (t *Tracker) RecordPayment(cardID string, amount float64, description string) (model.Transaction, error) {
	return t.record(cardID, amount, description, model.KindPayment, "")
}

func (t *Tracker) record(cardID string, amount float64, description string, kind model.TransactionKind, category model.SpendingCategory) (model.Transaction, error) {
	if amount <= 0 {
		return model.Transaction{}, ErrInvalidAmount
	}

	idx := -1
	for i := range t.cards {
		if t.cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Transaction{}, ErrCardNotFound
	}

	tx := model.Transaction{
		ID:          t.newID(),
		CardID:      cardID,
		Amount:      amount,
		Description: description,
		Date:        t.now(),
		Kind:        kind,
		Category:    category,
	}

	t.txs = append(t.txs, tx)
	if kind == model.KindSpending {
		t.cards[idx] = ledger.ApplySpending(t.cards[idx], amount)
	} else {
		t.cards[idx] = ledger.ApplyPayment(t.cards[idx], amount)
	}

	return tx, t.persist()
}

// DeleteTransaction reverses the transaction's ledger effect on its owning
// card and removes it. The owning card normally still exists since card
// deletion cascades; when it doesn't, the reversal is a no-op pass over the
// unaffected card list. Confirmation gating is the caller's concern.
func (t *Tracker) DeleteTransaction(id string) error {
	txIdx := -1
	for i := range t.txs {
		if t.txs[i].ID == id {
			txIdx = i
			break
		}
	}
	if txIdx < 0 {
		return ErrTransactionNotFound
	}
	tx := t.txs[txIdx]

	for i := range t.cards {
		if t.cards[i].ID == tx.CardID {
			t.cards[i] = ledger.Reverse(t.cards[i], tx)
		}
	}

	t.txs = append(t.txs[:txIdx], t.txs[txIdx+1:]...)
	return t.persist()
}

// DeleteCard removes the card and cascades removal of every transaction
// referencing it. No reversal is needed since the card itself is gone.
func (t *Tracker) DeleteCard(id string) error {
	idx := -1
	for i := range t.cards {
		if t.cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCardNotFound
	}

	t.cards = append(t.cards[:idx], t.cards[idx+1:]...)

	kept := t.txs[:0]
	for _, tx := range t.txs {
		if tx.CardID != id {
			kept = append(kept, tx)
		}
	}
	t.txs = kept

	return t.persist()
}

// persist writes both collections through to storage. The two slot writes
// are not grouped transactionally; a crash between them can leave the slots
// inconsistent, which is acceptable for this class of application.
func (t *Tracker) persist() error {
	if err := t.store.SaveCards(t.cards); err != nil {
		return err
	}
	return t.store.SaveTransactions(t.txs)
}
