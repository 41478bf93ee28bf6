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

// MenuUI draws a menu-like view as clickable buttons, with an optional
// dialog on top. Keyboard navigation stays in the game core.
type MenuUI struct {
	UI *ebitenui.UI

	// OnActivate receives the row position of a clicked button
	OnActivate func(row int)
	// OnHover receives the row position the mouse moved onto
	OnHover func(row int)
	// OnAnswer receives the index of a clicked dialog choice
	OnAnswer func(choice int)

	style cfg.ScreenStyle
	shown game.View
	gate  hoverGate
	faces faces
}

func NewMenuUI(style cfg.ScreenStyle) *MenuUI {
	return &MenuUI{style: style, faces: loadFaces()}
}

// Update rebuilds the widgets if the view changed, then lets ebitenui
// process the mouse.
func (m *MenuUI) Update(view game.View) {
	if m.UI == nil || !sameView(m.shown, view) {
		m.build(view)
	}
	m.UI.Update()
}

func (m *MenuUI) Draw(screen *ebiten.Image) {
	if m.UI == nil {
		return
	}
	m.UI.Draw(screen)
}

func (m *MenuUI) build(view game.View) {
	m.shown = view
	m.gate.arm()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(m.style.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(int(m.style.MenuItemGap)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(view.Title, &m.faces.title, &widget.LabelColor{
			Idle: m.style.TitleColor,
		}),
	))

	for i, row := range view.Rows {
		contentContainer.AddChild(m.rowButton(i, row, i == view.Selected))
	}

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(view.Hint, &m.faces.small, &widget.LabelColor{
			Idle: cfg.Grey,
		}),
	))

	rootContainer.AddChild(contentContainer)
	if view.Dialog != nil {
		rootContainer.AddChild(m.dialog(view.Dialog))
	}
	m.UI = &ebitenui.UI{Container: rootContainer}
}

func (m *MenuUI) rowButton(pos int, row game.Row, selected bool) *widget.Button {
	label := row.Label
	if row.Value != "" {
		label += ": " + row.Value
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(240, int(m.style.MenuItemHeight)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.Image(buttonImage(selected, m.style.TextColorSelected)),
		widget.ButtonOpts.Text(label, &m.faces.normal, &buttonTextColor),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			if m.OnHover != nil && m.gate.moved() {
				m.OnHover(pos)
			}
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if m.OnActivate != nil {
				m.OnActivate(pos)
			}
		}),
	)
}

func (m *MenuUI) dialog(d *game.Dialog) *widget.Container {
	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.DarkGrey)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	box.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(d.Prompt, &m.faces.normal, &widget.LabelColor{
			Idle: m.style.TextColorNormal,
		}),
	))

	choices := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	for i, choice := range d.Choices {
		choices.AddChild(m.choiceButton(i, choice, i == d.Selected))
	}
	box.AddChild(choices)
	return box
}

func (m *MenuUI) choiceButton(pos int, label string, selected bool) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 28),
		),
		widget.ButtonOpts.Image(buttonImage(selected, cfg.Orange)),
		widget.ButtonOpts.Text(label, &m.faces.normal, &widget.ButtonTextColor{
			Idle:    m.style.TextColorNormal,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if m.OnAnswer != nil {
				m.OnAnswer(pos)
			}
		}),
	)
}
