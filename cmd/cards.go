package cmd

import (
	"fmt"
	"time"

	"kartasist/internal/cli"
	"kartasist/internal/ledger"
	"kartasist/internal/model"
	"kartasist/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagSort   string
	flagDesc   bool
	flagSearch string
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List cards with limits and due dates",
	RunE:  runCards,
}

func init() {
	rootCmd.AddCommand(cardsCmd)

	for _, c := range []*cobra.Command{rootCmd, cardsCmd} {
		c.Flags().StringVarP(&flagSort, "sort", "s", "", "Sort by: name, bank, limit, used, remaining, due")
		c.Flags().BoolVar(&flagDesc, "desc", false, "Sort in descending order")
		c.Flags().StringVar(&flagSearch, "search", "", "Filter by card or bank name (substring match)")
	}
}

func runCards(cmd *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	cards := env.tracker.Cards()
	if len(cards) == 0 {
		fmt.Println("\n  No cards yet.")
		fmt.Println("  Add one with `kartasist add`.")
		return nil
	}

	sortCfg := sortConfigFromFlags(cmd, env)
	now := time.Now()
	view := pipeline.View(cards, flagSearch, sortCfg, now)

	if len(view) == 0 {
		fmt.Printf("\n  No cards match %q.\n", flagSearch)
		return nil
	}

	rows := make([][]string, 0, len(view))
	for _, c := range view {
		days := ledger.DaysUntilDue(now, c.DueDay)
		rows = append(rows, []string{
			c.Name,
			c.Bank,
			env.fmtr.Currency(c.TotalLimit),
			env.fmtr.Currency(c.UsedAmount),
			env.fmtr.Currency(c.Remaining()),
			fmt.Sprintf("%s (day %d)", cli.FormatDays(days), c.DueDay),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "Bank", "Limit", "Used", "Remaining", "Due"},
		Rows:    rows,
	}))
	return nil
}

// sortConfigFromFlags resolves the sort key and direction, falling back to
// the configured defaults when the flags are untouched.
func sortConfigFromFlags(cmd *cobra.Command, env *appEnv) model.SortConfig {
	key := flagSort
	if key == "" {
		key = env.cfg.General.DefaultSort
	}
	field, ok := model.ParseSortField(key)
	if !ok && flagSort != "" {
		fmt.Printf("  unknown sort key %q, using %q\n", flagSort, field)
	}

	desc := flagDesc
	if !cmd.Flags().Changed("desc") {
		desc = env.cfg.General.DefaultDesc
	}
	return model.SortConfig{Field: field, Descending: desc}
}
