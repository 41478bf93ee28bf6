package factory

import (
	"github.com/automoto/simple-platformer/archetypes"
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds every level-scoped entity for layout: the space, one
// collider per platform run, one visual per tile, the spike and exit
// sensors, the player, the camera and the fade-in.
func CreateLevel(ecs *ecs.ECS, layout *level.Layout) *donburi.Entry {
	lvl := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(lvl, components.LevelData{Layout: layout})

	CreateSpace(ecs, layout.Width, layout.Height, cfg.Level.CellSize)

	for _, r := range layout.Colliders {
		CreatePlatform(ecs, r)
	}
	for _, t := range layout.Tiles {
		CreateTile(ecs, t)
	}
	for _, r := range layout.Hazards {
		CreateSpikes(ecs, r)
	}
	CreateExit(ecs, layout.Exit)

	CreatePlayer(ecs, layout.Spawn)
	CreateCamera(ecs, layout.Spawn.X, layout.Spawn.Y)
	CreateFade(ecs)

	return lvl
}
