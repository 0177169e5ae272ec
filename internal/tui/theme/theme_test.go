package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got.Name, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("catppuccin-mocha")
	if Active.Name != "catppuccin-mocha" {
		t.Errorf("Active = %q after SetActive", Active.Name)
	}
}

func TestAllThemesFullyPopulated(t *testing.T) {
	for _, th := range All {
		if th.Name == "" {
			t.Fatal("theme with empty name")
		}
		for field, c := range map[string]string{
			"Background":  string(th.Background),
			"TextPrimary": string(th.TextPrimary),
			"Accent":      string(th.Accent),
			"Green":       string(th.Green),
			"Red":         string(th.Red),
		} {
			if c == "" {
				t.Errorf("%s: %s is empty", th.Name, field)
			}
		}
	}
}
