package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/level"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check that every level file parses and builds",
	Long: `Parse every level file, merge its platforms and build its world
layout. Exits non-zero if any level fails. Without a directory the
--levels directory, or the built-in set, is checked.

Examples:
  simple-platformer validate
  simple-platformer validate ./mylevels`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := flagLevels
		if len(args) == 1 {
			dir = args[0]
		}
		loader, err := openLevels(dir)
		if err != nil {
			return err
		}
		return validateLevels(cmd.OutOrStdout(), loader)
	},
}

// ErrInvalidLevels is returned when at least one level failed to load.
var ErrInvalidLevels = errors.New("invalid levels")

func validateLevels(out io.Writer, loader *level.Loader) error {
	failed := 0
	for i, file := range loader.Files() {
		desc, err := loader.Load(i)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", file, err)
			continue
		}
		layout := level.Build(desc, config.Level.Margin)
		fmt.Fprintf(out, "ok    %s: %q, %d tiles, %d colliders, %d spikes\n",
			file, desc.Name, len(desc.Tiles), len(layout.Colliders), len(layout.Hazards))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d failed", ErrInvalidLevels, failed, loader.Count())
	}
	fmt.Fprintf(out, "%d levels ok\n", loader.Count())
	return nil
}
