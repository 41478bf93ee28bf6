package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/progress"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and their lock state",
	Long: `List every level in play order, marking the ones the saved progress
has unlocked.

Examples:
  simple-platformer levels
  simple-platformer levels --levels ./mylevels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger, _, err := newLogger()
	if err != nil {
		return err
	}
	loader, err := openLevels(flagLevels)
	if err != nil {
		return err
	}

	items := persist.Open(config.App.Name, logger.WithPrefix("persist"))
	tracker := progress.NewTracker(items, logger.WithPrefix("progress"))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-24s  %s\n", "#", "Name", "State")
	fmt.Fprintf(out, "  %-4s  %-24s  %s\n", "--", "----", "-----")
	for i, name := range loader.Names() {
		state := "locked"
		if tracker.IsUnlocked(i) {
			state = "unlocked"
		}
		fmt.Fprintf(out, "  %-4d  %-24s  %s\n", i+1, name, state)
	}
	return nil
}
