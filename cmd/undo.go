package cmd

import (
	"fmt"
	"strings"

	"kartasist/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo <transaction-id>",
	Short: "Delete a transaction and reverse its effect",
	Long: "Delete a transaction by id (or id prefix) and reverse its effect on the card. " +
		"Reversing a payment that was clamped at zero can push the used amount above what it was before the payment.",
	Args: cobra.ExactArgs(1),
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	tx, err := findTransaction(env, args[0])
	if err != nil {
		return err
	}

	cardName := tx.CardID
	if c, ok := env.tracker.CardByID(tx.CardID); ok {
		cardName = c.Name
	}

	if !flagYes {
		prompt := fmt.Sprintf("Delete %s of %s on %s?", tx.Kind, env.fmtr.Currency(tx.Amount), cardName)
		ok, err := confirm(prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("  Cancelled.")
			return nil
		}
	}

	if err := env.tracker.DeleteTransaction(tx.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted %s of %s on %s and reversed its effect\n",
		tx.Kind, env.fmtr.Currency(tx.Amount), cardName)
	return nil
}

// findTransaction resolves an id or unambiguous id prefix.
func findTransaction(env *appEnv, query string) (model.Transaction, error) {
	var found []model.Transaction
	for _, tx := range env.tracker.Transactions() {
		if tx.ID == query {
			return tx, nil
		}
		if strings.HasPrefix(tx.ID, query) {
			found = append(found, tx)
		}
	}
	switch len(found) {
	case 0:
		return model.Transaction{}, fmt.Errorf("transaction not found: %q", query)
	case 1:
		return found[0], nil
	default:
		return model.Transaction{}, fmt.Errorf("ambiguous transaction id %q (%d matches)", query, len(found))
	}
}

func confirm(prompt string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}
