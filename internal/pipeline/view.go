package pipeline

import (
	"sort"
	"strings"
	"time"

	"kartasist/internal/ledger"
	"kartasist/internal/model"
)

// View returns an ordered, text-filtered copy of the card list. The search
// term matches card name OR bank, case-insensitive; an empty term matches
// everything. Synthetic sort keys (remaining limit, days until due) are
// resolved per card; the due-days key uses ref as "now" so callers control
// day rollover. The sort is stable: equal keys keep input order.
func View(cards []model.Card, term string, cfg model.SortConfig, ref time.Time) []model.Card {
	result := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if matches(c, term) {
			result = append(result, c)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		less := compare(result[i], result[j], cfg.Field, ref)
		if cfg.Descending {
			return compare(result[j], result[i], cfg.Field, ref)
		}
		return less
	})

	return result
}

func matches(c model.Card, term string) bool {
	if term == "" {
		return true
	}
	return containsIgnoreCase(c.Name, term) || containsIgnoreCase(c.Bank, term)
}

// compare reports whether a orders strictly before b on the given field.
func compare(a, b model.Card, field model.SortField, ref time.Time) bool {
	switch field {
	case model.SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case model.SortByBank:
		return strings.ToLower(a.Bank) < strings.ToLower(b.Bank)
	case model.SortByLimit:
		return a.TotalLimit < b.TotalLimit
	case model.SortByUsed:
		return a.UsedAmount < b.UsedAmount
	case model.SortByRemaining:
		return a.Remaining() < b.Remaining()
	case model.SortByDueDays:
		return ledger.DaysUntilDue(ref, a.DueDay) < ledger.DaysUntilDue(ref, b.DueDay)
	default:
		return false
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
