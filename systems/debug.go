package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/fonts"
	"github.com/automoto/simple-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space when the collider
// overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Colliders {
		return
	}

	view, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		box := rectOf(obj)
		if !view.visible(box) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvSpikes):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvExit):
			c = color.RGBA{0, 255, 0, 255}
		}

		x, y, w, h := view.toScreen(box)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		physics := components.Physics.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		line := fmt.Sprintf("pos %.0f,%.0f  speed %.2f,%.2f  ground %t  tps %.0f",
			obj.X, obj.Y, physics.SpeedX, physics.SpeedY, physics.OnGround != nil, ebiten.ActualTPS())
		text.Draw(screen, line, fonts.Small.Get(), 10, screen.Bounds().Dy()-10, cfg.White)
	}
}
