package systems

import (
	"fmt"

	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/fonts"
	"github.com/automoto/simple-platformer/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawHUD renders the level name and death counters in the top-left corner.
func DrawHUD(screen *ebiten.Image, hud game.HUD) {
	lines := HUDLines(hud)
	face := fonts.Regular.Get()

	widest := 0
	for _, l := range lines {
		widest = max(widest, textWidth(face, l))
	}

	margin := cfg.HUD.Margin
	vector.FillRect(screen,
		float32(margin/2), float32(margin/2),
		float32(widest)+float32(margin), float32(cfg.HUD.LineHeight*float64(len(lines))+margin),
		cfg.HUD.ShadeColor, false)

	for i, l := range lines {
		y := margin + cfg.HUD.LineHeight*float64(i+1) - 4
		text.Draw(screen, l, face, int(margin), int(y), cfg.HUD.TextColor)
	}
}

// HUDLines is the text of the overlay, one entry per line.
func HUDLines(hud game.HUD) []string {
	title := fmt.Sprintf("Level %d/%d", hud.LevelNumber, hud.LevelCount)
	if hud.LevelName != "" {
		title += ": " + hud.LevelName
	}
	return []string{
		title,
		fmt.Sprintf("Deaths: %d (total %d)", hud.LevelDeaths, hud.TotalDeaths),
	}
}
