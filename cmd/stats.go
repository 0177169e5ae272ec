package cmd

import (
	"fmt"

	"kartasist/internal/cli"
	"kartasist/internal/model"
	"kartasist/internal/pipeline"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate limits and spending by category",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	cards := env.tracker.Cards()
	stats := pipeline.Aggregate(cards, env.tracker.Transactions())

	fmt.Println()
	fmt.Println(cli.RenderTitle("KARTASIST  Overview"))
	fmt.Println()

	util := cli.Utilization(stats.TotalUsed, stats.TotalLimit)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cards", fmt.Sprintf("%d", len(cards))},
			{"Total Limit", env.fmtr.Currency(stats.TotalLimit)},
			{"Total Used", env.fmtr.Currency(stats.TotalUsed)},
			{"Total Remaining", env.fmtr.Currency(stats.TotalRemaining)},
			{"Utilization", cli.FormatPercent(util)},
		},
	}))

	// Category breakdown as labeled bars, widest label first for alignment.
	maxSpend := 0.0
	labelW := 0
	for cat, v := range stats.Breakdown {
		if v > maxSpend {
			maxSpend = v
		}
		if len(string(cat)) > labelW {
			labelW = len(string(cat))
		}
	}

	if maxSpend > 0 {
		fmt.Println("\n  Spending by category")
		for _, cat := range model.Categories {
			v := stats.Breakdown[cat]
			label := fmt.Sprintf("  %-*s %12s ", labelW, cat, env.fmtr.Currency(v))
			fmt.Println(cli.RenderHorizontalBar(label, v, maxSpend, 30))
		}
	}
	return nil
}
