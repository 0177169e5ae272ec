package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor so styles render deterministically under test.
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, tc := range []struct{ total, n int }{
		{120, 4}, {121, 4}, {123, 4}, {80, 3}, {7, 3},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestMetricCardRowWidthConsistency(t *testing.T) {
	cards := []struct{ Label, Value, Sub string }{
		{"Total Limit", "50,000", ""},
		{"Total Used", "12,500", ""},
		{"Remaining", "37,500", ""},
	}
	row := MetricCardRow(cards, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestBreakdownBarsStableRowCount(t *testing.T) {
	entries := []BreakdownEntry{
		{Label: "Groceries", Value: 1200},
		{Label: "Fuel", Value: 0},
		{Label: "Other", Value: 300},
	}
	out := BreakdownBars(entries, func(v float64) string { return "x" }, 60)
	if got := len(strings.Split(out, "\n")); got != 3 {
		t.Errorf("row count = %d, want 3 (zero values keep their row)", got)
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	// The mouse hitboxes derive from TabVisualWidth; it must agree with the
	// actual rendered widths for both active and inactive tabs.
	for i := range Tabs {
		bar := RenderTabBar(i, 120)
		total := lipgloss.Width(bar)

		want := 1 // leading space
		for j, other := range Tabs {
			want += TabVisualWidth(other, j == i)
			if j < len(Tabs)-1 {
				want += 2 // separator
			}
		}
		if total != want {
			t.Errorf("active=%d: rendered width %d, TabVisualWidth sum %d", i, total, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('c'); got != 1 {
		t.Errorf("TabIdxByKey('c') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
