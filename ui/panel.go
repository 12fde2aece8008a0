package ui

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/mapamundi/common"
)

const panelWidth = common.BaseWidth / 4

var (
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	mutedColor = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

// IconFunc resolves an area icon reference. A nil image hides the icon.
type IconFunc func(ref string) *ebiten.Image

// InfoPanel shows the selected area's name, description and icon in a
// right-anchored overlay.
type InfoPanel struct {
	ui          *ebitenui.UI
	root        *widget.Container
	panel       *widget.Container
	title       *widget.Text
	description *widget.Text
	icon        *widget.Graphic
	icons       IconFunc

	visible bool
}

// NewInfoPanel builds the panel hidden. onClose runs when the Close button is
// clicked.
func NewInfoPanel(icons IconFunc, onClose func()) *InfoPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	p := &InfoPanel{icons: icons}

	p.title = widget.NewText(
		widget.TextOpts.Text("", &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)
	p.icon = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)
	p.description = widget.NewText(
		widget.TextOpts.Text("", &face, mutedColor),
		widget.TextOpts.MaxWidth(float64(panelWidth-40)),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart, Stretch: true})),
	)

	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionEnd})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClose != nil {
				onClose()
			}
		}),
	)

	p.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	p.panel.AddChild(p.title)
	p.panel.AddChild(p.icon)
	p.panel.AddChild(p.description)
	p.panel.AddChild(closeBtn)

	p.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	p.root.AddChild(p.panel)

	p.ui = &ebitenui.UI{Container: p.root}
	p.setVisible(false)
	return p
}

// Show fills the panel and makes it visible.
func (p *InfoPanel) Show(name, description, icon string) {
	if p == nil {
		return
	}
	p.title.Label = name
	p.description.Label = description

	var img *ebiten.Image
	if p.icons != nil {
		img = p.icons(icon)
	}
	p.icon.Image = img
	if img != nil {
		p.icon.GetWidget().Visibility = widget.Visibility_Show
	} else {
		p.icon.GetWidget().Visibility = widget.Visibility_Hide
	}
	p.setVisible(true)
}

// Hide makes the panel invisible. Hiding a hidden panel does nothing.
func (p *InfoPanel) Hide() {
	if p == nil || !p.visible {
		return
	}
	p.setVisible(false)
}

// Contains reports whether the screen point lies on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	if p == nil || !p.visible {
		return false
	}
	return image.Pt(x, y).In(p.panel.GetWidget().Rect)
}

func (p *InfoPanel) Update() {
	if p == nil || p.ui == nil {
		return
	}
	p.ui.Update()
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if p == nil || p.ui == nil {
		return
	}
	p.ui.Draw(screen)
}

func (p *InfoPanel) setVisible(visible bool) {
	p.visible = visible
	if visible {
		p.panel.GetWidget().Visibility = widget.Visibility_Show
	} else {
		p.panel.GetWidget().Visibility = widget.Visibility_Hide
	}
	p.panel.RequestRelayout()
	p.root.RequestRelayout()
}
