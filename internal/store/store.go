// Package store persists the card and transaction collections as two named
// slots in a local SQLite database. Each slot holds one JSON-serialized
// array, overwritten wholesale on every mutation; a missing slot reads as an
// empty collection. The store owns no business logic.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kartasist/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const (
	slotCards        = "cards"
	slotTransactions = "transactions"
)

// Store is the SQLite-backed persistence adapter.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCards reads the cards slot. An absent slot is an empty collection.
func (s *Store) LoadCards() ([]model.Card, error) {
	var cards []model.Card
	if err := s.loadSlot(slotCards, &cards); err != nil {
		return nil, fmt.Errorf("loading cards: %w", err)
	}
	return cards, nil
}

// LoadTransactions reads the transactions slot.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := s.loadSlot(slotTransactions, &txs); err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	return txs, nil
}

// SaveCards overwrites the cards slot with the full list.
func (s *Store) SaveCards(cards []model.Card) error {
	if err := s.saveSlot(slotCards, cards); err != nil {
		return fmt.Errorf("saving cards: %w", err)
	}
	return nil
}

// SaveTransactions overwrites the transactions slot with the full list.
func (s *Store) SaveTransactions(txs []model.Transaction) error {
	if err := s.saveSlot(slotTransactions, txs); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	return nil
}

func (s *Store) loadSlot(name string, dst any) error {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM slots WHERE name = ?", name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(payload), dst)
}

func (s *Store) saveSlot(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO slots (name, payload, updated_at)
		VALUES (?, ?, ?)`, name, string(payload), now)
	return err
}
