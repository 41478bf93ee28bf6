package level

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Names used inside TMX files.
const (
	tmxTilesLayer   = "tiles"
	tmxMarkersGroup = "markers"
	tmxKindProperty = "kind"
	tmxNameProperty = "name"
)

// LoadTMX reads a Tiled map. Tiles come from the "tiles" layer, whose tileset
// tiles carry a "kind" property; spawn and exit are objects named "spawn" and
// "exit" in the "markers" object group. Map rows are flipped so grid y grows
// upward like in YAML levels.
func LoadTMX(fsys fs.FS, tmxPath string) (Description, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Description{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	desc := Description{
		Name: levelMap.Properties.GetString(tmxNameProperty),
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTilesLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return Description{}, fmt.Errorf("tile at %d,%d: %w", x, y, err)
				}
				kind, err := ParseKind(tilesetTile.Properties.GetString(tmxKindProperty))
				if err != nil {
					return Description{}, fmt.Errorf("tile at %d,%d: %w", x, y, err)
				}

				desc.Tiles = append(desc.Tiles, Tile{
					X:    x,
					Y:    levelMap.Height - 1 - y,
					Kind: kind,
				})
			}
		}
		break
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	var haveSpawn, haveExit bool
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxMarkersGroup {
			continue
		}
		for _, o := range og.Objects {
			p := Point{
				X: math.Floor(o.X / tileW),
				Y: float64(levelMap.Height-1) - math.Floor(o.Y/tileH),
			}
			switch strings.ToLower(o.Name) {
			case "spawn":
				desc.Spawn, haveSpawn = p, true
			case "exit":
				desc.Exit, haveExit = p, true
			}
		}
	}

	if !haveSpawn {
		return Description{}, fmt.Errorf("%s: missing spawn marker", tmxPath)
	}
	if !haveExit {
		return Description{}, fmt.Errorf("%s: missing exit marker", tmxPath)
	}

	return desc, nil
}
