package model

// SortField selects the key the card view is ordered by. Most fields map
// straight onto a Card field; SortByRemaining and SortByDueDays are synthetic
// keys computed at sort time.
type SortField string

const (
	SortByName      SortField = "name"
	SortByBank      SortField = "bank"
	SortByLimit     SortField = "limit"
	SortByUsed      SortField = "used"
	SortByRemaining SortField = "remaining"
	SortByDueDays   SortField = "due"
)

// SortFields lists the accepted sort keys for flag validation.
var SortFields = []SortField{
	SortByName, SortByBank, SortByLimit, SortByUsed, SortByRemaining, SortByDueDays,
}

// ParseSortField resolves a user-supplied sort key, falling back to due-days.
func ParseSortField(s string) (SortField, bool) {
	for _, f := range SortFields {
		if string(f) == s {
			return f, true
		}
	}
	return SortByDueDays, false
}

// SortConfig is a sort field plus direction.
type SortConfig struct {
	Field      SortField
	Descending bool
}
