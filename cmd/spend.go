package cmd

import (
	"fmt"
	"strconv"

	"kartasist/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagNote     string
)

var spendCmd = &cobra.Command{
	Use:   "spend <card> <amount>",
	Short: "Record spending on a card",
	Args:  cobra.ExactArgs(2),
	RunE:  runSpend,
}

func init() {
	rootCmd.AddCommand(spendCmd)

	spendCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Spending category (Groceries, Fuel, Entertainment, Bills, Health, Clothing, Other)")
	spendCmd.Flags().StringVar(&flagNote, "note", "", "Description")
}

func runSpend(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	card, ok := env.tracker.FindCard(args[0])
	if !ok {
		return fmt.Errorf("card not found: %q", args[0])
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	category := model.NormalizeCategory(flagCategory)
	tx, err := env.tracker.RecordSpending(card.ID, amount, flagNote, category)
	if err != nil {
		return err
	}

	updated, _ := env.tracker.CardByID(card.ID)
	fmt.Printf("\n  Spent %s on %s (%s)\n", env.fmtr.Currency(tx.Amount), card.Name, tx.Category)
	fmt.Printf("  Used %s of %s, %s remaining\n",
		env.fmtr.Currency(updated.UsedAmount),
		env.fmtr.Currency(updated.TotalLimit),
		env.fmtr.Currency(updated.Remaining()))
	if updated.Remaining() < 0 {
		fmt.Println("  Warning: card is over its limit")
	}
	return nil
}
