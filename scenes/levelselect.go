package scenes

import (
	"sync"

	"github.com/automoto/simple-platformer/game"
	"github.com/automoto/simple-platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelSelectScene shows the level list as ebitenui buttons.
type LevelSelectScene struct {
	core *game.Game
	ui   *ui.LevelSelectUI
	once sync.Once
}

func NewLevelSelectScene(core *game.Game) *LevelSelectScene {
	return &LevelSelectScene{core: core}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)
	ls.ui.Update(ls.core.LevelSelectView())
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	if ls.ui == nil {
		return
	}
	ls.ui.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	// A click behaves like Enter on that row.
	ls.ui = ui.NewLevelSelectUI(ls.core.SelectLevel, ls.core.HoverRow)
}
