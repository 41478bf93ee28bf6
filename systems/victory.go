package systems

import (
	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func DrawVictory(screen *ebiten.Image, view game.View) {
	drawScreen(screen, view, config.Victory)
}
