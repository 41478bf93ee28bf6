package systems

import (
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/level"
	"github.com/automoto/simple-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Culling padding keeps shapes from popping at the screen edges.
const cullPadding = 32.0

// viewport maps world space to the screen around the camera.
type viewport struct {
	offsetX, offsetY float64
	minX, minY       float64
	maxX, maxY       float64
}

func cameraViewport(e *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewport{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return viewport{
		offsetX: width/2 - camera.Position.X,
		offsetY: height/2 - camera.Position.Y,
		minX:    camera.Position.X - width/2 - cullPadding,
		maxX:    camera.Position.X + width/2 + cullPadding,
		minY:    camera.Position.Y - height/2 - cullPadding,
		maxY:    camera.Position.Y + height/2 + cullPadding,
	}, true
}

func (v viewport) visible(r level.Rect) bool {
	return r.X+r.W >= v.minX && r.X <= v.maxX && r.Y+r.H >= v.minY && r.Y <= v.maxY
}

func (v viewport) toScreen(r level.Rect) (x, y, w, h float32) {
	return float32(r.X + v.offsetX), float32(r.Y + v.offsetY), float32(r.W), float32(r.H)
}

// DrawPlayer renders the player as a filled box with an eye on its facing side.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	box := rectOf(components.Object.Get(playerEntry).Object)

	x, y, w, h := view.toScreen(box)
	vector.FillRect(screen, x, y, w, h, cfg.World.Player, false)

	eyeX := x + w*0.7
	if player.Facing < 0 {
		eyeX = x + w*0.3
	}
	vector.DrawFilledCircle(screen, eyeX, y+h*0.3, 3, cfg.White, false)
}
