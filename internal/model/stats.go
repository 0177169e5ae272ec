package model

// CardStats holds the aggregate across all cards, derived on demand and
// never persisted.
type CardStats struct {
	TotalLimit     float64
	TotalUsed      float64
	TotalRemaining float64
	Breakdown      map[SpendingCategory]float64
}
