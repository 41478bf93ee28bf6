package ui

import (
	"image/color"

	cfg "github.com/automoto/simple-platformer/config"
	"github.com/automoto/simple-platformer/game"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// LevelSelectUI is the clickable level list. Keyboard navigation stays in
// the game core; the widgets are rebuilt whenever its view changes so the
// highlighted button follows the cursor.
type LevelSelectUI struct {
	UI *ebitenui.UI

	// OnPick receives the row position of a clicked button
	OnPick func(row int)
	// OnHover receives the row position the mouse moved onto
	OnHover func(row int)

	shown game.View
	gate  hoverGate
	faces faces
}

// NewLevelSelectUI creates the level select UI with ebitenui
func NewLevelSelectUI(onPick, onHover func(row int)) *LevelSelectUI {
	return &LevelSelectUI{OnPick: onPick, OnHover: onHover, faces: loadFaces()}
}

// Update rebuilds the widgets if the view changed, then lets ebitenui
// process the mouse.
func (lui *LevelSelectUI) Update(view game.View) {
	if lui.UI == nil || !sameView(lui.shown, view) {
		lui.build(view)
	}
	lui.UI.Update()
}

func (lui *LevelSelectUI) Draw(screen *ebiten.Image) {
	if lui.UI == nil {
		return
	}
	lui.UI.Draw(screen)
}

func (lui *LevelSelectUI) build(view game.View) {
	lui.shown = view
	lui.gate.arm()
	style := cfg.LevelSelect

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(view.Title, &lui.faces.title, &widget.LabelColor{
			Idle: style.TitleColor,
		}),
	))

	for i, row := range view.Rows {
		contentContainer.AddChild(lui.rowButton(i, row, i == view.Selected))
	}

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(view.Hint, &lui.faces.small, &widget.LabelColor{
			Idle: style.TextColorLocked,
		}),
	))

	rootContainer.AddChild(contentContainer)
	lui.UI = &ebitenui.UI{Container: rootContainer}
}

func (lui *LevelSelectUI) rowButton(pos int, row game.Row, selected bool) *widget.Button {
	style := cfg.LevelSelect
	textColor := style.TextColorNormal
	if row.Locked {
		textColor = style.TextColorLocked
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.Image(buttonImage(selected, style.TextColorSelected)),
		widget.ButtonOpts.Text(row.Label, &lui.faces.normal, &widget.ButtonTextColor{
			Idle:    textColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			if lui.OnHover != nil && lui.gate.moved() {
				lui.OnHover(pos)
			}
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnPick != nil {
				lui.OnPick(pos)
			}
		}),
	)
}
