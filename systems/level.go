package systems

import (
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the background, every visible tile and the exit.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.Background)

	view, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}

	components.Tile.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		if !view.visible(tile.Rect) {
			return
		}
		x, y, w, h := view.toScreen(tile.Rect)
		switch tile.Kind {
		case level.Spikes:
			drawSpikes(screen, x, y, w, h)
		default:
			vector.FillRect(screen, x, y, w, h, cfg.World.Platform, false)
			vector.StrokeRect(screen, x, y, w, h, 1, cfg.World.Background, false)
		}
	})

	if layout := currentLayout(ecs); layout != nil && view.visible(layout.Exit) {
		x, y, w, h := view.toScreen(layout.Exit)
		vector.FillRect(screen, x+w*0.2, y, w*0.6, h, cfg.World.Exit, false)
	}
}

// drawSpikes draws a row of teeth standing on a thin base.
func drawSpikes(screen *ebiten.Image, x, y, w, h float32) {
	const teeth = 4
	tooth := w / teeth
	base := y + h

	vector.FillRect(screen, x, base-3, w, 3, cfg.World.Spikes, false)
	for i := 0; i < teeth; i++ {
		left := x + float32(i)*tooth
		apexX, apexY := left+tooth/2, y+h*0.35
		vector.StrokeLine(screen, left, base, apexX, apexY, 2, cfg.World.Spikes, false)
		vector.StrokeLine(screen, apexX, apexY, left+tooth, base, 2, cfg.World.Spikes, false)
	}
}
