package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"kartasist/internal/cli"
	"kartasist/internal/config"
	"kartasist/internal/state"
	"kartasist/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "kartasist",
	Short: "Credit card limit tracker",
	Long:  "Track your credit cards: limits, spending, payments, and due dates.",
	RunE:  runCards,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
}

// appEnv bundles the config, store, and tracker shared by all commands.
type appEnv struct {
	cfg     config.Config
	store   *store.Store
	tracker *state.Tracker
	fmtr    cli.Formatter
}

// openEnv is the shared startup path: load config, open the database, read
// both collections once, and hand the state owner to the command.
func openEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out of their data.
		fmt.Fprintf(os.Stderr, "  warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = config.DataDir(cfg)
	}

	st, err := store.Open(filepath.Join(dataDir, "kartasist.db"))
	if err != nil {
		return nil, err
	}

	cards, err := st.LoadCards()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	txs, err := st.LoadTransactions()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &appEnv{
		cfg:     cfg,
		store:   st,
		tracker: state.New(st, cards, txs),
		fmtr:    cli.NewFormatter(cfg.Display.Locale, cfg.Display.Currency),
	}, nil
}

func (e *appEnv) Close() {
	_ = e.store.Close()
}
