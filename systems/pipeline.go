package systems

import (
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// AddSimulation registers the per-step gameplay systems in run order.
// Sensors run after objects are moved so the resolver sees where the step
// ended.
func AddSimulation(e *ecs.ECS) {
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateObjects)
	e.AddSystem(UpdateSensors)
	e.AddSystem(UpdateCamera)
	e.AddSystem(UpdateFade)
}

// AddRenderers registers the world renderers. Screen overlays such as the
// HUD are drawn by the scene on top.
func AddRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, DrawLevel)
	e.AddRenderer(cfg.Default, DrawPlayer)
	e.AddRenderer(cfg.Default, DrawDebug)
	e.AddRenderer(cfg.Overlay, DrawFade)
}
