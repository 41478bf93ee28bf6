package scenes

import (
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/game"
	"github.com/automoto/simple-platformer/input"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/systems"
	"github.com/automoto/simple-platformer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World owns the level-scoped entities. A fresh donburi world is built on
// every Load and dropped on Unload, so nothing leaks between levels.
type World struct {
	ecs    *ecs.ECS
	probe  *systems.Probe
	logger *log.Logger
}

func NewWorld(logger *log.Logger) *World {
	return &World{logger: logger}
}

func (w *World) Load(desc level.Description) {
	e := ecs.NewECS(donburi.NewWorld())

	layout := level.Build(desc, cfg.Level.Margin)
	factory.CreateLevel(e, layout)

	systems.AddSimulation(e)
	systems.AddRenderers(e)

	w.ecs = e
	w.probe = systems.NewProbe(e)
	w.logger.Info("level built",
		"name", desc.Name,
		"tiles", len(layout.Tiles),
		"colliders", len(layout.Colliders),
		"hazards", len(layout.Hazards))
}

func (w *World) Unload() {
	if w.ecs == nil {
		return
	}
	w.ecs = nil
	w.probe = nil
	w.logger.Debug("level despawned")
}

func (w *World) Loaded() bool {
	return w.ecs != nil
}

func (w *World) Step(in *input.State) {
	if w.ecs == nil {
		return
	}
	systems.SetInput(w.ecs, in)
	w.ecs.Update()
}

// Probe returns nil while no level is loaded.
func (w *World) Probe() game.Probe {
	if w.probe == nil {
		return nil
	}
	return w.probe
}

func (w *World) Draw(screen *ebiten.Image) {
	if w.ecs == nil {
		return
	}
	w.ecs.Draw(screen)
}
