package ui

import (
	"bytes"
	"image/color"
	"slices"

	"github.com/automoto/simple-platformer/game"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized for the 640x360 logical screen
	return faces{
		title:  &text.GoTextFace{Source: fontSource, Size: 22},
		normal: &text.GoTextFace{Source: fontSource, Size: 14},
		small:  &text.GoTextFace{Source: fontSource, Size: 10},
	}
}

var buttonTextColor = widget.ButtonTextColor{
	Idle:    color.RGBA{255, 255, 255, 255},
	Hover:   color.RGBA{255, 255, 200, 255},
	Pressed: color.RGBA{200, 200, 200, 255},
}

func buttonImage(selected bool, selectedColor color.RGBA) *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 40, 55, 255})
	if selected {
		idle = image.NewNineSliceColor(selectedColor)
	}
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// hoverGate passes hover events only after the mouse moved since the widgets
// were last rebuilt. A rebuild puts a fresh button under a resting cursor,
// which must not steal the selection from the keyboard.
type hoverGate struct {
	x, y int
}

func (h *hoverGate) arm() {
	h.x, h.y = ebiten.CursorPosition()
}

func (h *hoverGate) moved() bool {
	x, y := ebiten.CursorPosition()
	return x != h.x || y != h.y
}

func sameView(a, b game.View) bool {
	return a.Title == b.Title && a.Selected == b.Selected && a.Hint == b.Hint &&
		slices.Equal(a.Rows, b.Rows) && slices.Equal(a.Lines, b.Lines) &&
		sameDialog(a.Dialog, b.Dialog)
}

func sameDialog(a, b *game.Dialog) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Prompt == b.Prompt && a.Selected == b.Selected && slices.Equal(a.Choices, b.Choices)
}
