package cmd

import (
	"fmt"

	"kartasist/internal/cli"
	"kartasist/internal/model"
	"kartasist/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagLast int

var historyCmd = &cobra.Command{
	Use:   "history [card]",
	Short: "Show transaction history, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&flagLast, "last", "n", 20, "Number of transactions to show (0 for all)")
}

func runHistory(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	txs := env.tracker.Transactions()
	title := "All cards"
	if len(args) == 1 {
		card, ok := env.tracker.FindCard(args[0])
		if !ok {
			return fmt.Errorf("card not found: %q", args[0])
		}
		txs = pipeline.TransactionsForCard(txs, card.ID)
		title = card.Name
	}

	if len(txs) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}

	// Newest first.
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	if flagLast > 0 && len(txs) > flagLast {
		txs = txs[:flagLast]
	}

	cardNames := make(map[string]string)
	for _, c := range env.tracker.Cards() {
		cardNames[c.ID] = c.Name
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		name := cardNames[tx.CardID]
		if name == "" {
			name = shortID(tx.CardID)
		}

		amount := env.fmtr.Currency(tx.Amount)
		category := string(tx.Category)
		if tx.Kind == model.KindPayment {
			amount = "-" + amount
			category = "-"
		}

		rows = append(rows, []string{
			shortID(tx.ID),
			tx.Date.Format("2006-01-02"),
			name,
			string(tx.Kind),
			category,
			amount,
			tx.Description,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"ID", "Date", "Card", "Type", "Category", "Amount", "Note"},
		Rows:    rows,
	}))
	fmt.Println("\n  Undo one with `kartasist undo <id>`.")
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
