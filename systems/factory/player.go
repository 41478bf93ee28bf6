package factory

import (
	"github.com/automoto/simple-platformer/archetypes"
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player centered on the spawn point.
func CreatePlayer(ecs *ecs.ECS, spawn level.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	x, y := spawn.X-w/2, spawn.Y-h/2

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing:    1,
		JumpSpeed: cfg.Player.JumpSpeed,
		SpawnX:    x,
		SpawnY:    y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		Friction:     cfg.Player.Friction,
		Acceleration: cfg.Player.Acceleration,
		MaxSpeed:     cfg.Player.MaxSpeed,
	})

	addToSpace(ecs, obj)
	return player
}
