// Package run implements the headless simulation subcommand.
package run

import (
	"fmt"

	"github.com/spf13/cobra"

	appcfg "github.com/rustyeddy/survival/config"
	clicfg "github.com/rustyeddy/survival/internal/cli/config"
	"github.com/rustyeddy/survival/journal"
	"github.com/rustyeddy/survival/runner"
	"github.com/rustyeddy/survival/session"
)

func New(rc *clicfg.RootConfig) *cobra.Command {
	var (
		days int
		seed uint32
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scripted session for N days and journal the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appcfg.Default()
			if rc.ConfigPath != "" {
				loaded, err := appcfg.LoadFromFile(rc.ConfigPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("days") {
				cfg.Session.Days = days
			}
			if cmd.Flags().Changed("seed") {
				cfg.Session.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			policy, err := cfg.Policy.ToPolicy()
			if err != nil {
				return err
			}

			j, err := openJournal(cfg, rc.DBPath, cmd.Flags().Changed("db"))
			if err != nil {
				return err
			}
			defer j.Close()

			r := &runner.Runner{
				Session: session.NewWithState(cfg.Session.Seed, cfg.InitialState(), cfg.Rules),
				Journal: j,
				Policy:  policy,
				Days:    cfg.Session.Days,
			}

			res, err := r.Run()
			if err != nil {
				return err
			}

			printResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 120, "Number of days to simulate")
	cmd.Flags().Uint32Var(&seed, "seed", 1, "PRNG seed")

	return cmd
}

// openJournal opens the configured journal. dbPath only overrides the
// config's db_path when the --db flag was explicitly set; the flag carries a
// default, so its mere presence says nothing.
func openJournal(cfg *appcfg.Config, dbPath string, dbSet bool) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.DaysFile, cfg.Journal.EquityFile)
	case "sqlite":
		path := cfg.Journal.DBPath
		if dbSet {
			path = dbPath
		}
		return journal.NewSQLite(path)
	case "none":
		return journal.Discard{}, nil
	}
	return nil, fmt.Errorf("open journal: unknown type %q", cfg.Journal.Type)
}

func printResult(cmd *cobra.Command, res runner.Result) {
	s := res.Summary
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "run %s\n", res.RunID)
	fmt.Fprintf(out, "days:          %d\n", s.Days)
	fmt.Fprintf(out, "final equity:  $%.2f\n", s.FinalEquity)
	fmt.Fprintf(out, "peak equity:   $%.2f\n", s.PeakEquity)
	fmt.Fprintf(out, "max drawdown:  %.1f%%\n", s.MaxDrawdown*100)
	fmt.Fprintf(out, "trades:        %d (%d wins / %d losses, %.0f%% win rate)\n",
		s.Trades, s.Wins, s.Losses, s.WinRate*100)
	fmt.Fprintf(out, "liquidations:  %d\n", s.Liquidations)
	if s.Trades > 0 {
		fmt.Fprintf(out, "best day:      $%.2f\n", s.BestDay)
		fmt.Fprintf(out, "worst day:     $%.2f\n", s.WorstDay)
	}

	// Last few narrative lines, oldest first. The log itself is
	// most-recent-first.
	fmt.Fprintln(out)
	n := len(res.Final.Log)
	if n > 5 {
		n = 5
	}
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintln(out, res.Final.Log[i])
	}
}
