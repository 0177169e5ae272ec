package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all cards and transactions to a JSON file",
	Long:  "Export all cards and transactions to a JSON file. Without an argument the file is date-stamped in the current directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	path := env.tracker.ExportFilename()
	if len(args) == 1 {
		path = args[0]
	}

	data, err := env.tracker.ExportSnapshot()
	if err != nil {
		return fmt.Errorf("serializing snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("\n  Exported %d cards and %d transactions to %s\n",
		len(env.tracker.Cards()), len(env.tracker.Transactions()), path)
	return nil
}
