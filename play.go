package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/fonts"
	"github.com/automoto/simple-platformer/game"
	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/logging"
	"github.com/automoto/simple-platformer/persist"
	"github.com/automoto/simple-platformer/progress"
	"github.com/automoto/simple-platformer/records"
	"github.com/automoto/simple-platformer/scenes"
	"github.com/automoto/simple-platformer/settings"
	"github.com/automoto/simple-platformer/systems"
)

// Game adapts the core to ebiten: it polls devices, feeds the core and lets
// the director draw whatever state the core is in.
type Game struct {
	core     *game.Game
	director *scenes.Director
	input    *input.State
	watcher  *level.Watcher
	logger   *log.Logger
}

func (g *Game) Update() error {
	systems.PollInput(g.input)
	if g.input.JustPressed(input.ActionDebug) {
		config.Debug.Colliders = !config.Debug.Colliders
	}
	g.pollWatcher()

	if err := g.core.Update(g.input); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	g.director.Update()
	return nil
}

// pollWatcher rebuilds the running level after a level file changed.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		g.logger.Info("level file changed", "file", name)
		changed = true
	}
	if changed {
		if err := g.core.ReloadLevel(); err != nil {
			g.logger.Info("keeping the running level until the file loads")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, ring, err := newLogger()
	if err != nil {
		return err
	}
	config.Debug.Colliders = flagDebug
	config.Debug.LevelsDir = flagLevels
	config.Debug.Watch = flagWatch

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var recorder game.RunRecorder
	dataDir, err := persist.DataDir(config.App.Name)
	if err != nil {
		logger.Warn("no data directory, log file and run records disabled", "err", err)
	} else {
		flusher := logging.StartFlusher(ctx, ring, filepath.Join(dataDir, config.App.LogFile), config.Log.FlushInterval, logger)
		defer func() {
			if err := flusher.Stop(); err != nil {
				logger.Warn("final log flush failed", "err", err)
			}
		}()

		store, err := records.Open(filepath.Join(dataDir, config.App.RecordsFile))
		if err != nil {
			logger.WithPrefix("records").Warn("run records disabled", "err", err)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	loader, err := openLevels(flagLevels)
	if err != nil {
		return err
	}

	var watcher *level.Watcher
	if flagWatch {
		if flagLevels == "" {
			logger.Warn("--watch needs --levels, built-in levels cannot change")
		} else if watcher, err = level.NewWatcher(flagLevels); err != nil {
			logger.Warn("level watcher disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	items := persist.Open(config.App.Name, logger.WithPrefix("persist"))
	userSettings := settings.Load(items, logger.WithPrefix("settings"))
	if flagFullscreen {
		userSettings.Fullscreen = true
	}

	world := scenes.NewWorld(logger.WithPrefix("level"))
	core := game.New(game.Config{
		Levels:   loader,
		Stage:    world,
		Items:    items,
		Progress: progress.NewTracker(items, logger.WithPrefix("progress")),
		Settings: userSettings,
		Applier:  systems.NewDisplayApplier(logger.WithPrefix("display")),
		Records:  recorder,
		Logger:   logger,
	})

	ebiten.SetWindowTitle(config.App.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "levels", loader.Count(), "source", levelSource(flagLevels))
	g := &Game{
		core:     core,
		director: scenes.NewDirector(core, world),
		input:    &input.State{},
		watcher:  watcher,
		logger:   logger.WithPrefix("main"),
	}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	logger.Info("bye")
	return nil
}

func levelSource(dir string) string {
	if dir == "" {
		return "built-in"
	}
	return dir
}
