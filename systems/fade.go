package systems

import (
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateFade(ecs *ecs.ECS) {
	dt := 1 / float32(ebiten.TPS())
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Done {
			return
		}
		fade.Alpha, fade.Done = fade.Tween.Update(dt)
	})
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Done || fade.Alpha <= 0 {
			return
		}
		c := cfg.Transition.FadeColor
		c.A = uint8(float32(c.A) * fade.Alpha)
		// vector expects premultiplied alpha
		c.R = uint8(float32(c.R) * fade.Alpha)
		c.G = uint8(float32(c.G) * fade.Alpha)
		c.B = uint8(float32(c.B) * fade.Alpha)
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
	})
}
