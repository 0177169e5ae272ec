package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if !flagYes {
		prompt := fmt.Sprintf("Replace all data (%d cards, %d transactions) with %s?",
			len(env.tracker.Cards()), len(env.tracker.Transactions()), args[0])
		ok, err := confirm(prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	if err := env.tracker.ImportSnapshot(data); err != nil {
		return err
	}
	fmt.Printf("\n  Imported %d cards and %d transactions from %s\n",
		len(env.tracker.Cards()), len(env.tracker.Transactions()), args[0])
	return nil
}
