package cmd

import (
	"fmt"

	"kartasist/internal/forms"
	"kartasist/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCardName     string
	flagBank         string
	flagLimit        float64
	flagUsed         float64
	flagDueDay       int
	flagStatementDay int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new card",
	Long:  "Add a new card. Without flags, an interactive form prompts for each field.",
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&flagCardName, "name", "", "Card name")
	addCmd.Flags().StringVar(&flagBank, "bank", "", "Bank name")
	addCmd.Flags().Float64Var(&flagLimit, "limit", 0, "Total limit")
	addCmd.Flags().Float64Var(&flagUsed, "used", 0, "Amount already used")
	addCmd.Flags().IntVar(&flagDueDay, "due-day", 1, "Payment due day of month (1-31)")
	addCmd.Flags().IntVar(&flagStatementDay, "statement-day", 1, "Statement day of month (1-31)")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	// Flags given: non-interactive path.
	if cmd.Flags().Changed("name") {
		card := model.Card{
			Name:         flagCardName,
			Bank:         flagBank,
			TotalLimit:   flagLimit,
			UsedAmount:   flagUsed,
			DueDay:       flagDueDay,
			StatementDay: flagStatementDay,
		}
		return saveCard(env, card)
	}

	vals := forms.NewCardValues(model.Card{DueDay: 1, StatementDay: 1})
	if err := vals.Form().Run(); err != nil {
		return err
	}
	return saveCard(env, vals.Card())
}

func saveCard(env *appEnv, card model.Card) error {
	stored, created, err := env.tracker.AddOrUpdateCard(card)
	if err != nil {
		return err
	}
	verb := "Updated"
	if created {
		verb = "Added"
	}
	fmt.Printf("\n  %s %s (%s): %s limit, %s used, due day %d\n",
		verb, stored.Name, stored.Bank,
		env.fmtr.Currency(stored.TotalLimit), env.fmtr.Currency(stored.UsedAmount),
		stored.DueDay)
	return nil
}
