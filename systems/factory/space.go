package factory

import (
	"math"

	"github.com/automoto/simple-platformer/archetypes"
	"github.com/automoto/simple-platformer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for a world of the given size.
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

// addToSpace registers obj with the world's space, if it has one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
