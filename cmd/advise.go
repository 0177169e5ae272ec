package cmd

import (
	"fmt"
	"strings"

	"kartasist/internal/advisor"
	"kartasist/internal/config"

	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Get an AI savings tip based on your card balances",
	RunE:  runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	adv := advisor.New(config.GetAdvisorAPIKey(env.cfg), env.cfg.Advisor.Model)
	if !adv.Enabled() {
		fmt.Println("\n  No Gemini API key configured.")
		fmt.Println("  Set GEMINI_API_KEY or add `api_key` under [advisor] in", config.ConfigPath())
		return nil
	}

	cards := env.tracker.Cards()
	if len(cards) == 0 {
		fmt.Println("\n  No cards yet; nothing to advise on.")
		return nil
	}

	fmt.Println("\n  Thinking...")
	advice := adv.Advise(cmd.Context(), cards)

	fmt.Println()
	for _, line := range wrapText(advice.Text, 76) {
		fmt.Printf("  %s\n", line)
	}
	return nil
}

// wrapText breaks text at word boundaries to fit the given width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
