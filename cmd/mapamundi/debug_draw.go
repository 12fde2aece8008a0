package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/mapamundi/camera"
)

const circleSteps = 20

// spaceDrawer renders the scene's chipmunk shapes through the camera for
// -debug.
type spaceDrawer struct {
	screen *ebiten.Image
	cam    *camera.Controller
}

func drawSpaceDebug(screen *ebiten.Image, space *cp.Space, cam *camera.Controller) {
	if screen == nil || space == nil || cam == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen, cam: cam})
}

func (d *spaceDrawer) line(a, b cp.Vector, c color.Color) {
	sa := d.cam.WorldToScreen(a)
	sb := d.cam.WorldToScreen(b)
	vector.StrokeLine(d.screen, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y), 1, c, true)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= circleSteps; i++ {
		th := float64(i) * (2 * math.Pi / circleSteps)
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
	if radius > 0 {
		d.DrawCircle(a, 0, radius, outline, fill, data)
		d.DrawCircle(b, 0, radius, outline, fill, data)
	}
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	s := d.cam.WorldToScreen(pos)
	l := float32(size / 2)
	c := fcolorToRGBA(fill)
	x, y := float32(s.X), float32(s.Y)
	vector.StrokeLine(d.screen, x-l, y, x+l, y, 1, c, true)
	vector.StrokeLine(d.screen, x, y-l, x, y+l, 1, c, true)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
