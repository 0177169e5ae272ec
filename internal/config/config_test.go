package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Currency != "TRY" || cfg.Display.Locale != "tr" {
		t.Errorf("display defaults = %+v", cfg.Display)
	}
	if cfg.General.DefaultSort != "due" {
		t.Errorf("DefaultSort = %q, want due", cfg.General.DefaultSort)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Display.Currency = "EUR"
	cfg.General.DefaultDesc = true
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Display.Currency != "EUR" || !got.General.DefaultDesc {
		t.Errorf("round trip lost settings: %+v", got)
	}
}

func TestGetAdvisorAPIKey_EnvWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := DefaultConfig()
	cfg.Advisor.APIKey = "file-key"

	if got := GetAdvisorAPIKey(cfg); got != "env-key" {
		t.Errorf("key = %q, want env-key", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := GetAdvisorAPIKey(cfg); got != "file-key" {
		t.Errorf("key = %q, want file-key", got)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "kartasist", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}
