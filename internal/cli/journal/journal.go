// Package journal implements the journal query subcommands.
package journal

import (
	"fmt"

	"github.com/spf13/cobra"

	clicfg "github.com/rustyeddy/survival/internal/cli/config"
	"github.com/rustyeddy/survival/journal"
)

func New(rc *clicfg.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query a SQLite run journal",
	}

	cmd.AddCommand(newRunsCmd(rc), newRunCmd(rc))
	return cmd
}

func newRunsCmd(rc *clicfg.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.NewSQLite(rc.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer j.Close()

			runs, err := j.ListRuns()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}

			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %4d days  final $%.2f\n",
					r.RunID, r.Days, r.FinalEquity)
			}
			return nil
		},
	}
}

func newRunCmd(rc *clicfg.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "run <run_id>",
		Short: "Dump a run's days in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := journal.NewSQLite(rc.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer j.Close()

			days, err := j.ListDaysByRun(args[0])
			if err != nil {
				return err
			}
			if len(days) == 0 {
				return fmt.Errorf("no days recorded for run %q", args[0])
			}

			for _, d := range days {
				fmt.Fprintln(cmd.OutOrStdout(), d.Narrative)
			}
			return nil
		},
	}
}
