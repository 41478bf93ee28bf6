package factory

import (
	"github.com/automoto/simple-platformer/archetypes"
	"github.com/automoto/simple-platformer/components"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpikes creates a sensor over one spike tile.
func CreateSpikes(ecs *ecs.ECS, r level.Rect) *donburi.Entry {
	spikes := archetypes.Spikes.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSpikes)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = spikes
	components.Object.SetValue(spikes, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return spikes
}

// CreateExit creates the sensor that finishes the level
func CreateExit(ecs *ecs.ECS, r level.Rect) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvExit)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = exit
	components.Object.SetValue(exit, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return exit
}
