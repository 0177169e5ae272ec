package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <card> <amount>",
	Short: "Record a payment on a card",
	Args:  cobra.ExactArgs(2),
	RunE:  runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)

	payCmd.Flags().StringVar(&flagNote, "note", "", "Description")
}

func runPay(_ *cobra.Command, args []string) error {
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

	tx, err := env.tracker.RecordPayment(card.ID, amount, flagNote)
	if err != nil {
		return err
	}

	updated, _ := env.tracker.CardByID(card.ID)
	fmt.Printf("\n  Paid %s on %s\n", env.fmtr.Currency(tx.Amount), card.Name)
	if amount > card.UsedAmount {
		fmt.Println("  Payment exceeded the balance; used amount is now zero")
	}
	fmt.Printf("  Used %s of %s, %s remaining\n",
		env.fmtr.Currency(updated.UsedAmount),
		env.fmtr.Currency(updated.TotalLimit),
		env.fmtr.Currency(updated.Remaining()))
	return nil
}
