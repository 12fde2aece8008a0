package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/mapamundi/area"
	"github.com/milk9111/mapamundi/assets"
	"github.com/milk9111/mapamundi/common"
	"github.com/milk9111/mapamundi/prefabs"
)

const (
	viewSize  = 512
	iconScale = 6
)

// viewer steps through the area catalog, showing each icon and its
// highlight color. Left/Right step manually; otherwise it advances on a timer.
type viewer struct {
	areas []area.Area
	icons *assets.Icons

	current      int
	tick         int
	ticksPerArea int
}

func (v *viewer) Update() error {
	if len(v.areas) == 0 {
		return nil
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.step(1)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.step(-1)
		return nil
	}
	if v.ticksPerArea <= 0 {
		return nil
	}
	v.tick++
	if v.tick >= v.ticksPerArea {
		v.step(1)
	}
	return nil
}

func (v *viewer) step(d int) {
	v.tick = 0
	v.current = (v.current + d + len(v.areas)) % len(v.areas)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(v.areas) == 0 {
		ebitenutil.DebugPrint(screen, "catalog is empty")
		return
	}
	a := v.areas[v.current]

	vector.FillRect(screen, 0, viewSize-48, viewSize, 48, a.HighlightColor, false)

	if img := v.icons.Icon(a.Icon); img != nil {
		fw := img.Bounds().Dx() * iconScale
		fh := img.Bounds().Dy() * iconScale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(iconScale, iconScale)
		op.GeoM.Translate(float64((viewSize-fw)/2), float64((viewSize-fh)/2))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	} else {
		ebitenutil.DebugPrintAt(screen, "no icon", viewSize/2-24, viewSize/2)
	}

	ebitenutil.DebugPrintAt(screen, a.Name, 8, 8)
	ebitenutil.DebugPrintAt(screen, a.Description, 8, 24)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	seconds := flag.Float64("interval", 2, "seconds per area, 0 to step with the arrow keys only")
	flag.Parse()

	spec, err := prefabs.LoadAreasSpec()
	if err != nil {
		log.Fatal(err)
	}
	cat := area.NewCatalog(spec.List())

	var areas []area.Area
	for _, name := range cat.Names() {
		a, _ := cat.Lookup(name)
		if a.Valid() {
			areas = append(areas, a)
		}
	}

	v := &viewer{
		areas:        areas,
		icons:        assets.NewIcons(),
		ticksPerArea: int(*seconds * common.TPS),
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Area Catalog")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
