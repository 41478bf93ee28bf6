package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawCentered draws s with its baseline at y, centered on centerX.
func drawCentered(screen *ebiten.Image, s string, face font.Face, centerX, y int, clr color.Color) {
	text.Draw(screen, s, face, centerX-textWidth(face, s)/2, y, clr)
}
