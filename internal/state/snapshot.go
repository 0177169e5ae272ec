package state

import (
	"encoding/json"
	"fmt"

	"kartasist/internal/model"
)

// Snapshot is the export/import artifact: the full state as one
// self-contained JSON document. Unknown keys in an imported document are
// ignored; missing keys default to empty collections.
type Snapshot struct {
	Cards        []model.Card        `json:"cards"`
	Transactions []model.Transaction `json:"transactions"`
}

// ExportSnapshot serializes the full state.
func (t *Tracker) ExportSnapshot() ([]byte, error) {
	snap := Snapshot{Cards: t.cards, Transactions: t.txs}
	if snap.Cards == nil {
		snap.Cards = []model.Card{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []model.Transaction{}
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ExportFilename returns the date-stamped default artifact name.
func (t *Tracker) ExportFilename() string {
	return fmt.Sprintf("kartasist-backup-%s.json", t.now().Format("2006-01-02"))
}

// ImportSnapshot parses an artifact and wholesale-replaces both collections.
// Malformed input is reported without touching the existing state.
func (t *Tracker) ImportSnapshot(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	if snap.Cards == nil {
		snap.Cards = []model.Card{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []model.Transaction{}
	}

	t.cards = snap.Cards
	t.txs = snap.Transactions
	return t.persist()
}
