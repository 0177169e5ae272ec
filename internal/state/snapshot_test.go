package state

import (
	"strings"
	"testing"

	"kartasist/internal/model"
)

func TestImportSnapshot_EmptyObject(t *testing.T) {
	tr, _ := newTestTracker(t)
	_, _, _ = tr.AddOrUpdateCard(validCard())

	if err := tr.ImportSnapshot([]byte(`{}`)); err != nil {
		t.Fatalf("ImportSnapshot({}): %v", err)
	}
	if len(tr.Cards()) != 0 || len(tr.Transactions()) != 0 {
		t.Error("import of {} should empty both collections")
	}
}

func TestImportSnapshot_MalformedLeavesStateUntouched(t *testing.T) {
	tr, _ := newTestTracker(t)
	c, _, _ := tr.AddOrUpdateCard(validCard())

	err := tr.ImportSnapshot([]byte(`{"cards": [`))
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if got := tr.Cards(); len(got) != 1 || got[0].ID != c.ID {
		t.Error("malformed import mutated state")
	}
}

func TestImportSnapshot_IgnoresUnknownKeys(t *testing.T) {
	tr, _ := newTestTracker(t)

	artifact := `{
		"cards": [{"id": "x", "cardName": "Bonus", "bank": "Garanti", "totalLimit": 1000, "usedAmount": 100, "dueDay": 15, "statementDay": 5}],
		"version": 3,
		"exportedBy": "someone"
	}`
	if err := tr.ImportSnapshot([]byte(artifact)); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	cards := tr.Cards()
	if len(cards) != 1 || cards[0].Name != "Bonus" {
		t.Errorf("cards = %+v", cards)
	}
	if len(tr.Transactions()) != 0 {
		t.Error("missing transactions key should default to empty")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	tr, _ := newTestTracker(t)
	c, _, _ := tr.AddOrUpdateCard(validCard())
	_, _ = tr.RecordSpending(c.ID, 42, "fuel stop", model.CategoryFuel)

	data, err := tr.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	other, _ := newTestTracker(t)
	if err := other.ImportSnapshot(data); err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}

	if len(other.Cards()) != 1 || len(other.Transactions()) != 1 {
		t.Fatalf("round trip lost data: %d cards, %d txs",
			len(other.Cards()), len(other.Transactions()))
	}
	got, _ := other.CardByID(c.ID)
	if got.UsedAmount != 142 {
		t.Errorf("UsedAmount = %.2f, want 142", got.UsedAmount)
	}
}

func TestExportFilename_IsDateStamped(t *testing.T) {
	tr, _ := newTestTracker(t)
	name := tr.ExportFilename()
	if !strings.HasSuffix(name, "2026-03-10.json") {
		t.Errorf("ExportFilename = %q, want ISO date stamp", name)
	}
}
