// Package config loads and saves kartasist configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all kartasist configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Advisor    AdvisorConfig    `toml:"advisor"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir     string `toml:"data_dir,omitempty"`
	DefaultSort string `toml:"default_sort"`
	DefaultDesc bool   `toml:"default_desc"`
}

// DisplayConfig holds currency presentation settings. Stored amounts are
// plain numbers; these only affect formatting.
type DisplayConfig struct {
	Currency string `toml:"currency"` // ISO 4217, e.g. "TRY"
	Locale   string `toml:"locale"`   // BCP 47, e.g. "tr"
}

// AdvisorConfig holds Gemini settings for the savings-tip advisor.
type AdvisorConfig struct {
	APIKey string `toml:"api_key,omitempty"`
	Model  string `toml:"model,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultSort: "due",
		},
		Display: DisplayConfig{
			Currency: "TRY",
			Locale:   "tr",
		},
		Advisor: AdvisorConfig{
			Model: "gemini-2.0-flash",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kartasist")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kartasist")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the database, honoring the config
// override.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kartasist")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "kartasist")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetAdvisorAPIKey returns the Gemini key from env var or config, in that
// order.
func GetAdvisorAPIKey(cfg Config) string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.Advisor.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
