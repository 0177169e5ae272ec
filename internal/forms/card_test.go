package forms

import (
	"testing"

	"kartasist/internal/model"
)

func TestCardValuesRoundTrip(t *testing.T) {
	in := model.Card{
		ID:           "c1",
		Name:         "Gold",
		Bank:         "Bankasi",
		TotalLimit:   15000,
		UsedAmount:   3250.5,
		DueDay:       15,
		StatementDay: 5,
	}

	vals := NewCardValues(in)
	out := vals.Card()

	if out != in {
		t.Errorf("round trip changed card:\n got %+v\nwant %+v", out, in)
	}
}

func TestCardValuesTrimsInput(t *testing.T) {
	vals := NewCardValues(model.Card{})
	vals.name = "  Gold  "
	vals.bank = " Bankasi "
	vals.limit = " 1000 "
	vals.due = " 15 "
	vals.stmt = "5"

	out := vals.Card()
	if out.Name != "Gold" || out.Bank != "Bankasi" {
		t.Errorf("strings not trimmed: %+v", out)
	}
	if out.TotalLimit != 1000 || out.DueDay != 15 {
		t.Errorf("numbers not parsed from padded input: %+v", out)
	}
}

func TestNotBlank(t *testing.T) {
	v := NotBlank("bank")
	if err := v("  "); err == nil {
		t.Error("whitespace accepted")
	}
	if err := v("Bankasi"); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestValidAmount(t *testing.T) {
	cases := []struct {
		in         string
		allowEmpty bool
		wantErr    bool
	}{
		{"", true, false},
		{"", false, true},
		{"100.50", false, false},
		{"-5", false, true},
		{"abc", false, true},
	}
	for _, tc := range cases {
		err := ValidAmount(tc.allowEmpty)(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidAmount(%v)(%q): err=%v, wantErr=%v", tc.allowEmpty, tc.in, err, tc.wantErr)
		}
	}
}

func TestValidDay(t *testing.T) {
	for _, bad := range []string{"0", "32", "x", ""} {
		if err := ValidDay(bad); err == nil {
			t.Errorf("ValidDay(%q) accepted", bad)
		}
	}
	for _, good := range []string{"1", "15", "31", " 31 "} {
		if err := ValidDay(good); err != nil {
			t.Errorf("ValidDay(%q) rejected: %v", good, err)
		}
	}
}
