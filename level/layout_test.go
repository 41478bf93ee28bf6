package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescription() Description {
	return Description{
		Name:  "sample",
		Spawn: Point{0, 1},
		Exit:  Point{5, 1},
		Tiles: []Tile{
			{X: 0, Y: 0, Kind: Platform},
			{X: 1, Y: 0, Kind: Platform},
			{X: 2, Y: 0, Kind: Platform},
			{X: 4, Y: 0, Kind: Spikes},
		},
	}
}

func TestBuild(t *testing.T) {
	l := Build(sampleDescription(), 2)

	assert.Equal(t, "sample", l.Name)
	assert.Equal(t, Point{64, 64}, l.Spawn)
	assert.Equal(t, Rect{X: 208, Y: 48, W: 32, H: 32}, l.Exit)
	assert.Equal(t, 320.0, l.Width)
	assert.Equal(t, 192.0, l.Height)

	// Every tile keeps its own visual.
	require.Len(t, l.Tiles, 4)
	assert.Equal(t, Rect{X: 48, Y: 80, W: 32, H: 32}, l.Tiles[0].Rect)

	// Three platforms merge into one collider spanning them.
	require.Len(t, l.Colliders, 1)
	assert.Equal(t, Rect{X: 48, Y: 80, W: 96, H: 32}, l.Colliders[0])
	cx, _ := l.Colliders[0].Center()
	assert.Equal(t, 96.0, cx)

	require.Len(t, l.Hazards, 1)
	assert.Equal(t, Rect{X: 176, Y: 80, W: 32, H: 32}, l.Hazards[0])
}

func TestBuild_NoTiles(t *testing.T) {
	l := Build(Description{Spawn: Point{0, 0}, Exit: Point{3, 0}}, 1)

	assert.Empty(t, l.Tiles)
	assert.Empty(t, l.Runs)
	assert.Empty(t, l.Colliders)
	assert.Empty(t, l.Hazards)
	assert.Equal(t, Point{32, 32}, l.Spawn)
	assert.Equal(t, Rect{X: 112, Y: 16, W: 32, H: 32}, l.Exit)
}

func TestBuild_SingleTileColliderWidth(t *testing.T) {
	l := Build(Description{Tiles: []Tile{{X: 7, Y: -3, Kind: Platform}}}, 1)

	require.Len(t, l.Colliders, 1)
	assert.Equal(t, TileSize, l.Colliders[0].W)
	assert.Equal(t, TileSize, l.Colliders[0].H)
	assert.Equal(t, Run{StartX: 7, Y: -3, Length: 1}, l.Runs[0])
}

func TestBuild_NonNegativeGeometry(t *testing.T) {
	l := Build(Description{
		Spawn: Point{-10, 4},
		Exit:  Point{12, -6},
		Tiles: []Tile{{X: -10, Y: 3, Kind: Platform}, {X: 12, Y: -7, Kind: Spikes}},
	}, 0)

	for _, tile := range l.Tiles {
		assert.GreaterOrEqual(t, tile.Rect.X, 0.0)
		assert.GreaterOrEqual(t, tile.Rect.Y, 0.0)
		assert.LessOrEqual(t, tile.Rect.X+tile.Rect.W, l.Width)
		assert.LessOrEqual(t, tile.Rect.Y+tile.Rect.H, l.Height)
	}
	assert.Greater(t, l.FallLimit(), l.Exit.Y)
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching edges")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 20, W: 10, H: 10}))
}
