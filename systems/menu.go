package systems

import (
	"image/color"

	"github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/fonts"
	"github.com/automoto/simple-platformer/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawMenu renders the main menu screen
func DrawMenu(screen *ebiten.Image, view game.View) {
	drawScreen(screen, view, config.Menu)
}

// drawScreen is the shared layout of menu-like screens: a title, optional
// body lines, one row per option and a hint along the bottom.
func drawScreen(screen *ebiten.Image, view game.View, style config.ScreenStyle) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	centerX := width / 2

	vector.FillRect(screen, 0, 0, float32(width), float32(height), style.BackgroundColor, false)

	drawCentered(screen, view.Title, fonts.Title.Get(), centerX, int(style.TitleY), style.TitleColor)

	y := style.MenuStartY
	for _, line := range view.Lines {
		drawCentered(screen, line, fonts.Regular.Get(), centerX, int(y), style.TextColorNormal)
		y += style.MenuItemHeight
	}
	if len(view.Lines) > 0 {
		y += style.MenuItemGap
	}

	face := fonts.Bold.Get()
	for i, row := range view.Rows {
		rowY := int(y + style.MenuItemHeight)
		clr := rowColor(style, i == view.Selected, row.Locked)

		if row.Value == "" {
			drawCentered(screen, row.Label, face, centerX, rowY, clr)
		} else {
			// Label right-aligned against the value column
			valueX := centerX + int(style.ValueColumnX)
			text.Draw(screen, row.Label, face, valueX-24-textWidth(face, row.Label), rowY, clr)
			valueColor := color.Color(style.ValueColor)
			if i == view.Selected {
				valueColor = clr
			}
			text.Draw(screen, row.Value, face, valueX, rowY, valueColor)
		}
		y += style.MenuItemHeight + style.MenuItemGap
	}

	if view.Hint != "" {
		drawCentered(screen, view.Hint, fonts.Small.Get(), centerX, height-12, style.TextColorNormal)
	}
}

func rowColor(style config.ScreenStyle, selected, locked bool) color.Color {
	switch {
	case locked && selected:
		return style.TextColorSelected
	case locked:
		return style.TextColorLocked
	case selected:
		return style.TextColorSelected
	default:
		return style.TextColorNormal
	}
}
