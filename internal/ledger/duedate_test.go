package ledger

import (
	"testing"
	"time"
)

func at(t *testing.T, year int, month time.Month, day, hour int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestDaysUntilDue_SameMonth(t *testing.T) {
	// On the 10th at noon, due on the 15th: five days out.
	got := DaysUntilDue(at(t, 2026, time.March, 10, 12), 15)
	if got != 5 {
		t.Errorf("DaysUntilDue = %d, want 5", got)
	}
}

func TestDaysUntilDue_RollsToNextMonth(t *testing.T) {
	// On the 20th the 15th has passed; count to the 15th of next month.
	got := DaysUntilDue(at(t, 2026, time.March, 20, 12), 15)
	if got != 26 { // Mar 20 12:00 -> Apr 15 00:00 = 25d12h, ceil 26
		t.Errorf("DaysUntilDue = %d, want 26", got)
	}
}

func TestDaysUntilDue_SameDayIsZero(t *testing.T) {
	got := DaysUntilDue(at(t, 2026, time.March, 15, 18), 15)
	if got != 0 {
		t.Errorf("DaysUntilDue = %d, want 0 (due today, never negative)", got)
	}
}

func TestDaysUntilDue_SameDayAtMidnight(t *testing.T) {
	got := DaysUntilDue(at(t, 2026, time.March, 15, 0), 15)
	if got != 0 {
		t.Errorf("DaysUntilDue = %d, want 0", got)
	}
}

func TestDaysUntilDue_YearRollover(t *testing.T) {
	// Dec 20 with due day 15 rolls into January of the next year.
	got := DaysUntilDue(at(t, 2026, time.December, 20, 0), 15)
	if got != 26 {
		t.Errorf("DaysUntilDue = %d, want 26", got)
	}
}

func TestDaysUntilDue_DayBefore(t *testing.T) {
	got := DaysUntilDue(at(t, 2026, time.March, 14, 23), 15)
	if got != 1 {
		t.Errorf("DaysUntilDue = %d, want 1", got)
	}
}
