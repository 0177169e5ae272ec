// Package cmd implements the kartasist CLI commands.
package cmd

import (
	"fmt"

	"kartasist/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default sort:  %s", cfg.General.DefaultSort)
	if cfg.General.DefaultDesc {
		fmt.Print(" (descending)")
	}
	fmt.Println()
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Printf("    Locale:   %s\n", cfg.Display.Locale)
	fmt.Println()

	fmt.Println("  [Advisor]")
	apiKey := config.GetAdvisorAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	fmt.Printf("    Model:   %s\n", cfg.Advisor.Model)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Edit %s to change these.\n", config.ConfigPath())
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
