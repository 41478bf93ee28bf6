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

// CreatePlatform creates one static collider for a merged platform run.
func CreatePlatform(ecs *ecs.ECS, r level.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return platform
}

// CreateTile creates the visual for a single grid cell. Tiles never collide.
func CreateTile(ecs *ecs.ECS, t level.PlacedTile) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)
	components.Tile.SetValue(tile, components.TileData{Kind: t.Kind, Rect: t.Rect})
	return tile
}
