package components

import (
	"github.com/automoto/simple-platformer/level"
	"github.com/yohamta/donburi"
)

// TileData is the visual of one grid cell.
type TileData struct {
	Kind level.TileKind
	Rect level.Rect
}

var Tile = donburi.NewComponentType[TileData]()
