package cli

import (
	"strings"
	"testing"
)

func TestFormatter_CurrencyCarriesAmount(t *testing.T) {
	f := NewFormatter("tr", "TRY")
	got := f.Currency(1250)
	if !strings.Contains(got, "1") || !strings.Contains(got, "250") {
		t.Errorf("Currency(1250) = %q, want the digits present", got)
	}
}

func TestNewFormatter_FallsBackOnGarbage(t *testing.T) {
	f := NewFormatter("not-a-locale!!", "XXX?")
	if got := f.Currency(5); got == "" {
		t.Error("fallback formatter produced empty output")
	}
}

func TestFormatDays(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "today!"},
		{1, "1 day"},
		{12, "12 days"},
	}
	for _, tc := range cases {
		if got := FormatDays(tc.in); got != tc.want {
			t.Errorf("FormatDays(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUtilization(t *testing.T) {
	if got := Utilization(500, 1000); got != 0.5 {
		t.Errorf("Utilization = %.2f, want 0.5", got)
	}
	if got := Utilization(100, 0); got != 0 {
		t.Errorf("zero limit utilization = %.2f, want 0", got)
	}
	if got := Utilization(1500, 1000); got != 1 {
		t.Errorf("over-limit utilization = %.2f, want 1 (clamped)", got)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
}
