package ledger

import "time"

const msPerDay = 86_400_000

// DaysUntilDue returns the whole days from ref until the next occurrence of
// dueDay (1-31). The candidate due date is built in ref's month; once ref's
// day-of-month passes the due day, it rolls to the next month (time.Date
// normalizes a month-13 overflow into January). The difference is taken as a
// ceiling in fixed 24h days, so a same-day due date reports 0, never a
// negative count. A DST boundary inside the interval can skew the result by
// one day; both dates come from the same local calendar so this stays an
// accepted approximation.
func DaysUntilDue(ref time.Time, dueDay int) int {
	year, month, day := ref.Date()
	due := time.Date(year, month, dueDay, 0, 0, 0, 0, ref.Location())
	if day > dueDay {
		due = time.Date(year, month+1, dueDay, 0, 0, 0, 0, ref.Location())
	}

	diffMs := due.UnixMilli() - ref.UnixMilli()
	days := diffMs / msPerDay
	if diffMs%msPerDay > 0 {
		days++
	}
	if days < 0 {
		return 0
	}
	return int(days)
}
