package scenes

import (
	"image/color"

	"github.com/automoto/simple-platformer/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Director picks the scene for the core's current state.
type Director struct {
	core   *game.Game
	scenes map[game.State]Scene
}

func NewDirector(core *game.Game, world *World) *Director {
	return &Director{
		core: core,
		scenes: map[game.State]Scene{
			game.StateMenu:            NewMenuScene(core),
			game.StateLevelSelect:     NewLevelSelectScene(core),
			game.StateLevelTransition: TransitionScene{},
			game.StatePlaying:         NewPlayingScene(core, world),
			game.StatePaused:          NewPauseScene(core),
			game.StateSettings:        NewSettingsScene(core),
			game.StateVictory:         NewVictoryScene(core),
		},
	}
}

func (d *Director) Scene() Scene {
	return d.scenes[d.core.State()]
}

func (d *Director) Update() {
	if s := d.Scene(); s != nil {
		s.Update()
	}
}

func (d *Director) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s := d.Scene(); s != nil {
		s.Draw(screen)
	}
}
