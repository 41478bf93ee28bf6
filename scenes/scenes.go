package scenes

import (
	"image/color"

	"github.com/automoto/simple-platformer/game"
	"github.com/automoto/simple-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene draws one game state. Update runs after the core has stepped.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// viewScene draws a menu-like view taken fresh from the core every frame.
type viewScene struct {
	view func() game.View
	draw func(*ebiten.Image, game.View)
}

func (s *viewScene) Update() {}

func (s *viewScene) Draw(screen *ebiten.Image) {
	s.draw(screen, s.view())
}

func NewMenuScene(core *game.Game) Scene {
	return &viewScene{view: core.MenuView, draw: systems.DrawMenu}
}

func NewVictoryScene(core *game.Game) Scene {
	return &viewScene{view: core.VictoryView, draw: systems.DrawVictory}
}

// PlayingScene draws the running level with the HUD on top.
type PlayingScene struct {
	core  *game.Game
	world *World
}

func NewPlayingScene(core *game.Game, world *World) *PlayingScene {
	return &PlayingScene{core: core, world: world}
}

func (ps *PlayingScene) Update() {}

func (ps *PlayingScene) Draw(screen *ebiten.Image) {
	ps.world.Draw(screen)
	if ps.world.Loaded() {
		systems.DrawHUD(screen, ps.core.HUD())
	}
}

// TransitionScene covers the single step between two levels.
type TransitionScene struct{}

func (TransitionScene) Update() {}

func (TransitionScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
}
