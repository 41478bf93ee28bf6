package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/records"
)

var flagRecordsLimit int

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show recent completed runs",
	Long: `Display the most recent runs that reached the victory screen and the
best one (fewest deaths, then fastest).

Examples:
  simple-platformer records
  simple-platformer records --limit 25`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of runs to show")
}

func runRecords(cmd *cobra.Command, args []string) error {
	dataDir, err := persist.DataDir(config.App.Name)
	if err != nil {
		return err
	}
	store, err := records.Open(filepath.Join(dataDir, config.App.RecordsFile))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(flagRecordsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-6s  %s\n", "Date", "Levels", "Deaths", "Time")
	fmt.Fprintf(out, "  %-16s  %-6s  %-6s  %s\n", "----", "------", "------", "----")
	for _, run := range runs {
		fmt.Fprintf(out, "  %-16s  %-6d  %-6d  %s\n",
			run.CompletedAt.Format("2006-01-02 15:04"), run.Levels, run.Deaths, run.Duration.Round(time.Second))
	}

	if best, ok, err := store.Best(); err == nil && ok {
		fmt.Fprintf(out, "\nBest: %d deaths in %s\n", best.Deaths, best.Duration.Round(time.Second))
	}
	return nil
}
