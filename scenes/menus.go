package scenes

import (
	"sync"

	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/game"
	"github.com/automoto/simple-platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene shows a core view as ebitenui buttons.
type MenuScene struct {
	view      func() game.View
	configure func() *ui.MenuUI
	ui        *ui.MenuUI
	once      sync.Once
}

// NewPauseScene draws the pause menu. The level is despawned while paused,
// so there is nothing behind the overlay.
func NewPauseScene(core *game.Game) *MenuScene {
	return &MenuScene{
		view: core.PauseView,
		configure: func() *ui.MenuUI {
			m := ui.NewMenuUI(cfg.Pause)
			m.OnActivate = core.ActivatePause
			m.OnHover = core.HoverRow
			return m
		},
	}
}

func NewSettingsScene(core *game.Game) *MenuScene {
	return &MenuScene{
		view: core.SettingsView,
		configure: func() *ui.MenuUI {
			m := ui.NewMenuUI(cfg.SettingsMenu)
			m.OnActivate = core.ActivateSetting
			m.OnHover = core.HoverRow
			m.OnAnswer = func(choice int) {
				core.AnswerReset(game.ConfirmChoice(choice))
			}
			return m
		},
	}
}

func (ms *MenuScene) Update() {
	ms.once.Do(func() { ms.ui = ms.configure() })
	ms.ui.Update(ms.view())
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ui == nil {
		return
	}
	ms.ui.Draw(screen)
}
