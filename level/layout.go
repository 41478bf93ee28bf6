package level

import "math"

// Rect is an axis-aligned box in world space. X/Y is the top-left corner and
// world y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the two boxes share interior area. Touching edges
// do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// PlacedTile is a tile together with its world-space box, used for drawing.
type PlacedTile struct {
	Tile
	Rect Rect
}

// Layout is a level description converted to world space: one visual per
// tile, one collider per merged platform run and one sensor per spike.
type Layout struct {
	Name      string
	Spawn     Point // world-space center of the spawn cell
	Exit      Rect
	Tiles     []PlacedTile
	Runs      []Run
	Colliders []Rect
	Hazards   []Rect
	Width     float64
	Height    float64

	originX float64
	originY float64
}

// Build converts a description into world space. The bounding box of all
// tiles, the spawn and the exit is padded by margin cells on every side so
// all geometry lands at non-negative coordinates. The margin is at least one.
func Build(desc Description, margin int) *Layout {
	margin = max(margin, 1)
	minX, maxX := math.Min(desc.Spawn.X, desc.Exit.X), math.Max(desc.Spawn.X, desc.Exit.X)
	minY, maxY := math.Min(desc.Spawn.Y, desc.Exit.Y), math.Max(desc.Spawn.Y, desc.Exit.Y)
	for _, t := range desc.Tiles {
		minX = math.Min(minX, float64(t.X))
		maxX = math.Max(maxX, float64(t.X))
		minY = math.Min(minY, float64(t.Y))
		maxY = math.Max(maxY, float64(t.Y))
	}

	m := float64(margin)
	l := &Layout{
		Name:    desc.Name,
		originX: math.Floor(minX) - m,
		originY: math.Ceil(maxY) + m,
	}
	l.Width = (math.Ceil(maxX) - l.originX + m + 1) * TileSize
	l.Height = (l.originY - math.Floor(minY) + m + 1) * TileSize

	l.Spawn = l.ToWorld(desc.Spawn)
	l.Exit = l.cellRect(desc.Exit)

	l.Tiles = make([]PlacedTile, 0, len(desc.Tiles))
	for _, t := range desc.Tiles {
		r := l.cellRect(Point{X: float64(t.X), Y: float64(t.Y)})
		l.Tiles = append(l.Tiles, PlacedTile{Tile: t, Rect: r})
		if t.Kind == Spikes {
			l.Hazards = append(l.Hazards, r)
		}
	}

	l.Runs = MergePlatformRuns(desc.Tiles)
	l.Colliders = make([]Rect, 0, len(l.Runs))
	for _, run := range l.Runs {
		l.Colliders = append(l.Colliders, l.RunRect(run))
	}

	return l
}

// ToWorld maps a grid point to the world-space center of that cell.
func (l *Layout) ToWorld(p Point) Point {
	return Point{
		X: (p.X - l.originX) * TileSize,
		Y: (l.originY - p.Y) * TileSize,
	}
}

// RunRect is the collider for a run: Length tiles wide, one tile high,
// centered on the middle of the run.
func (l *Layout) RunRect(run Run) Rect {
	mid := float64(run.StartX) + float64(run.Length-1)/2
	c := l.ToWorld(Point{X: mid, Y: float64(run.Y)})
	w := float64(run.Length) * TileSize
	return Rect{X: c.X - w/2, Y: c.Y - TileSize/2, W: w, H: TileSize}
}

// FallLimit is the world y below which a player counts as fallen out.
func (l *Layout) FallLimit() float64 {
	return l.Height
}

func (l *Layout) cellRect(p Point) Rect {
	c := l.ToWorld(p)
	return Rect{X: c.X - TileSize/2, Y: c.Y - TileSize/2, W: TileSize, H: TileSize}
}
