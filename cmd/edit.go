package cmd

import (
	"fmt"

	"kartasist/internal/forms"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <card>",
	Short: "Edit an existing card",
	Long:  "Edit a card by name or id prefix. Flags override individual fields; without flags an interactive form opens prefilled.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&flagCardName, "name", "", "Card name")
	editCmd.Flags().StringVar(&flagBank, "bank", "", "Bank name")
	editCmd.Flags().Float64Var(&flagLimit, "limit", 0, "Total limit")
	editCmd.Flags().Float64Var(&flagUsed, "used", 0, "Amount used")
	editCmd.Flags().IntVar(&flagDueDay, "due-day", 0, "Payment due day of month (1-31)")
	editCmd.Flags().IntVar(&flagStatementDay, "statement-day", 0, "Statement day of month (1-31)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	card, ok := env.tracker.FindCard(args[0])
	if !ok {
		return fmt.Errorf("card not found: %q", args[0])
	}

	anyFlag := false
	overrides := map[string]func(){
		"name":          func() { card.Name = flagCardName },
		"bank":          func() { card.Bank = flagBank },
		"limit":         func() { card.TotalLimit = flagLimit },
		"used":          func() { card.UsedAmount = flagUsed },
		"due-day":       func() { card.DueDay = flagDueDay },
		"statement-day": func() { card.StatementDay = flagStatementDay },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
			anyFlag = true
		}
	}

	if anyFlag {
		return saveCard(env, card)
	}

	vals := forms.NewCardValues(card)
	if err := vals.Form().Run(); err != nil {
		return err
	}
	return saveCard(env, vals.Card())
}
