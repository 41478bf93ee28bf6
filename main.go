// simple-platformer is a small level-based 2D platformer.
//
// Usage:
//
//	simple-platformer                 - Play the game
//	simple-platformer levels          - List levels and which are unlocked
//	simple-platformer validate [dir]  - Check that every level file loads
//	simple-platformer records         - Show recent completed runs
//
// Global flags:
//
//	--levels <dir>     - Load levels from a directory instead of the built-in set
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/simple-platformer/assets"
	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/logging"
)

var (
	// Global flags
	flagLevels   string
	flagLogLevel string

	// Game flags
	flagWatch      bool
	flagFullscreen bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simple-platformer",
	Short: "A small level-based 2D platformer",
	Long: `Run from the spawn point to the exit of every level without touching
the spikes. Progress, settings and a log live in the per-user data directory.

Examples:
  simple-platformer
  simple-platformer --levels ./mylevels --watch
  simple-platformer validate ./mylevels
  simple-platformer records`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the current level when files in --levels change")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and collider overlay")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(recordsCmd)
}

// newLogger builds the root logger from the global flags.
func newLogger() (*log.Logger, *logging.Ring, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagDebug {
		lvl = log.DebugLevel
	}
	logger, ring := logging.New(logging.Options{Level: lvl, RingSize: config.Log.RingSize})
	return logger, ring, nil
}

// levelFS is the directory given with --levels, or the built-in set.
func levelFS(dir string) fs.FS {
	if dir == "" {
		return assets.Levels()
	}
	return os.DirFS(dir)
}

func openLevels(dir string) (*level.Loader, error) {
	loader, err := level.NewLoader(levelFS(dir))
	if err != nil {
		if dir == "" {
			dir = "built-in levels"
		}
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	return loader, nil
}
