package cmd

import (
	"fmt"

	"kartasist/internal/pipeline"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <card>",
	Aliases: []string{"remove"},
	Short:   "Delete a card and all its transactions",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	card, ok := env.tracker.FindCard(args[0])
	if !ok {
		return fmt.Errorf("card not found: %q", args[0])
	}

	txCount := len(pipeline.TransactionsForCard(env.tracker.Transactions(), card.ID))

	if !flagYes {
		prompt := fmt.Sprintf("Delete %s (%s) and its %d transactions?", card.Name, card.Bank, txCount)
		ok, err := confirm(prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	if err := env.tracker.DeleteCard(card.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted %s and %d transactions\n", card.Name, txCount)
	return nil
}
