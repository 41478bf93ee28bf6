// Package level parses level descriptions and turns them into world geometry.
// It has no dependency on ebitengine, donburi or resolv, so it can be used by
// the CLI as well as the game.
package level

import (
	"errors"
	"fmt"
	"strings"
)

// TileSize is the edge length of one grid cell in world units.
const TileSize = 32.0

// TileKind identifies what a tile does to the player.
type TileKind int

const (
	Platform TileKind = iota
	Spikes
)

var ErrUnknownKind = errors.New("unknown tile kind")

func (k TileKind) String() string {
	switch k {
	case Platform:
		return "Platform"
	case Spikes:
		return "Spikes"
	default:
		return "Unknown"
	}
}

// ParseKind maps the textual kind used in level files to a TileKind.
func ParseKind(s string) (TileKind, error) {
	switch {
	case strings.EqualFold(s, "Platform"):
		return Platform, nil
	case strings.EqualFold(s, "Spikes"):
		return Spikes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Point is a position in grid units. Grid y grows upward.
type Point struct {
	X, Y float64
}

// Cell is one integer grid coordinate.
type Cell struct {
	X, Y int
}

// Tile is a single grid cell of level geometry.
type Tile struct {
	X, Y int
	Kind TileKind
}

func (t Tile) Cell() Cell {
	return Cell{X: t.X, Y: t.Y}
}

// Description is the immutable content of one level file.
type Description struct {
	Name  string
	Spawn Point
	Exit  Point
	Tiles []Tile
}

// CountKind returns how many tile entries have the given kind.
func (d Description) CountKind(kind TileKind) int {
	n := 0
	for _, t := range d.Tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
