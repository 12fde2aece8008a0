// Package camera implements a smoothed pan/zoom camera for an orthographic 2D
// map view. Zoom is the visible half height in world units.
package camera

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mapamundi/common"
	"github.com/milk9111/mapamundi/input"
	"github.com/milk9111/mapamundi/scene"
)

const (
	zoomSpeedDivisor = 100.0
	zoomRate         = 70.0
	panRate          = 70.0
)

// Input provides the frame's input snapshot.
type Input interface {
	Snapshot() input.State
}

// Viewport reports the screen size in pixels.
type Viewport interface {
	Size() (width, height int)
}

// HitTester answers world-space point queries.
type HitTester interface {
	QueryPoint(world cp.Vector) (scene.Hit, bool)
}

// FixedViewport is a Viewport with a constant size.
type FixedViewport struct {
	Width, Height int
}

func (v FixedViewport) Size() (int, int) {
	return v.Width, v.Height
}

// State is the camera's continuous state. Positions are in the parent frame.
type State struct {
	CurrentPosition cp.Vector
	TargetPosition  cp.Vector
	CurrentZoom     float64
	TargetZoom      float64
}

type Controller struct {
	cfg      Config
	in       Input
	viewport Viewport
	hits     HitTester

	state   State
	panning bool
	panLast cp.Vector
}

// New builds a controller. Misconfiguration is logged and the camera runs
// best-effort with the offending values repaired where the math needs it.
func New(cfg Config, in Input, viewport Viewport, hits HitTester) *Controller {
	if err := cfg.Validate(); err != nil {
		log.Printf("camera: misconfigured: %v", err)
	}
	cfg = cfg.sanitized()

	zoom := common.Clamp(cfg.InitialZoom, cfg.ZoomMin, cfg.ZoomMax)
	c := &Controller{
		cfg:      cfg,
		in:       in,
		viewport: viewport,
		hits:     hits,
		state: State{
			CurrentPosition: cfg.InitialPosition,
			TargetPosition:  cfg.InitialPosition,
			CurrentZoom:     zoom,
			TargetZoom:      zoom,
		},
	}
	c.clampTarget()
	c.state.CurrentPosition = c.state.TargetPosition
	return c
}

func (c *Controller) State() State {
	return c.state
}

// Panning reports whether a pan gesture is in progress.
func (c *Controller) Panning() bool {
	return c.panning
}

// Advance runs one frame of camera motion.
func (c *Controller) Advance(dt float64) {
	if c == nil || c.in == nil {
		return
	}
	in := c.in.Snapshot()
	cursor := in.Cursor()

	if c.pointerInside(cursor) {
		c.updateTargetZoom(in.Scroll, cursor)
		if in.PanPressed {
			c.panning = true
			c.panLast = c.ScreenToWorld(cursor)
		}
	}
	// A release lost outside the window still ends the pan once the button is
	// seen up.
	if in.PanReleased || (c.panning && !in.PanHeld && !in.PanPressed) {
		c.panning = false
	}

	c.state.CurrentZoom = common.Lerp(c.state.CurrentZoom, c.state.TargetZoom, smoothing(dt, zoomRate, c.cfg.ZoomSmoothness))

	if c.panning {
		c.state.TargetPosition = c.state.TargetPosition.Add(c.panLast.Sub(c.ScreenToWorld(cursor)))
	}
	c.state.CurrentPosition = lerpVector(c.state.CurrentPosition, c.state.TargetPosition, smoothing(dt, panRate, c.cfg.PanSmoothness))

	// Sampled after the move so the grabbed point stays under the cursor.
	c.panLast = c.ScreenToWorld(cursor)

	c.clampTarget()
}

func (c *Controller) updateTargetZoom(scroll float64, cursor cp.Vector) {
	if scroll == 0 {
		return
	}
	zoomAmount := scroll * c.cfg.ZoomSpeed / zoomSpeedDivisor * (c.cfg.ZoomMin - c.cfg.ZoomMax)

	if scroll > 0 && c.state.TargetZoom > c.cfg.ZoomMin && c.state.CurrentZoom > 0 {
		toward := c.ScreenToWorld(cursor).Sub(c.cfg.Origin)
		multiplier := math.Min(-zoomAmount/c.state.CurrentZoom, 1)
		c.state.TargetPosition = c.state.TargetPosition.Add(toward.Sub(c.state.TargetPosition).Mult(multiplier))
	}

	c.state.TargetZoom = common.Clamp(c.state.TargetZoom+zoomAmount, c.cfg.ZoomMin, c.cfg.ZoomMax)
}

// clampTarget keeps the visible rectangle inside the bounds, using the
// current zoom. An axis whose view is wider than the bounds is centred.
func (c *Controller) clampTarget() {
	halfH := c.state.CurrentZoom
	halfW := halfH * c.aspect()
	b := c.cfg.Bounds
	c.state.TargetPosition.X = clampAxis(c.state.TargetPosition.X, b.XMin+halfW, b.XMax-halfW)
	c.state.TargetPosition.Y = clampAxis(c.state.TargetPosition.Y, b.YMin+halfH, b.YMax-halfH)
}

// Focus moves the camera target onto a world point and zooms so that width
// world units fit across the screen.
func (c *Controller) Focus(world cp.Vector, width float64) {
	w, h := c.size()
	c.state.TargetPosition = world.Sub(c.cfg.Origin)
	c.state.TargetZoom = common.Clamp(width*h/w*0.5, c.cfg.ZoomMin, c.cfg.ZoomMax)
}

// HitTest queries the scene at the world point under a screen position.
func (c *Controller) HitTest(screen cp.Vector) (scene.Hit, bool) {
	if c == nil || c.hits == nil {
		return scene.Hit{}, false
	}
	return c.hits.QueryPoint(c.ScreenToWorld(screen))
}

// PointerInViewport maps the cursor into viewport space, origin bottom-left.
// The result is not clamped.
func (c *Controller) PointerInViewport() cp.Vector {
	if c == nil || c.in == nil {
		return cp.Vector{}
	}
	return c.ScreenToViewport(c.in.Snapshot().Cursor())
}

func (c *Controller) ScreenToViewport(screen cp.Vector) cp.Vector {
	w, h := c.size()
	return cp.Vector{X: screen.X / w, Y: 1 - screen.Y/h}
}

func (c *Controller) ScreenToWorld(screen cp.Vector) cp.Vector {
	v := c.ScreenToViewport(screen)
	zoom := c.state.CurrentZoom
	return c.worldPosition().Add(cp.Vector{
		X: (v.X - 0.5) * 2 * zoom * c.aspect(),
		Y: (v.Y - 0.5) * 2 * zoom,
	})
}

func (c *Controller) WorldToScreen(world cp.Vector) cp.Vector {
	w, h := c.size()
	zoom := c.state.CurrentZoom
	if zoom == 0 {
		return cp.Vector{X: w / 2, Y: h / 2}
	}
	d := world.Sub(c.worldPosition())
	vx := d.X/(2*zoom*c.aspect()) + 0.5
	vy := d.Y/(2*zoom) + 0.5
	return cp.Vector{X: vx * w, Y: (1 - vy) * h}
}

// PixelsPerUnit is the current world-to-screen scale.
func (c *Controller) PixelsPerUnit() float64 {
	_, h := c.size()
	if c.state.CurrentZoom == 0 {
		return 0
	}
	return h / (2 * c.state.CurrentZoom)
}

// VisibleRect is the area currently on screen, in the parent frame.
func (c *Controller) VisibleRect() Bounds {
	halfH := c.state.CurrentZoom
	halfW := halfH * c.aspect()
	p := c.state.CurrentPosition
	return Bounds{XMin: p.X - halfW, XMax: p.X + halfW, YMin: p.Y - halfH, YMax: p.Y + halfH}
}

func (c *Controller) worldPosition() cp.Vector {
	return c.cfg.Origin.Add(c.state.CurrentPosition)
}

func (c *Controller) pointerInside(screen cp.Vector) bool {
	v := c.ScreenToViewport(screen)
	return v.X >= 0 && v.Y >= 0 && v.X <= 1 && v.Y <= 1
}

func (c *Controller) size() (float64, float64) {
	if c.viewport == nil {
		return common.BaseWidth, common.BaseHeight
	}
	w, h := c.viewport.Size()
	if w <= 0 || h <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	return float64(w), float64(h)
}

func (c *Controller) aspect() float64 {
	w, h := c.size()
	return w / h
}

func smoothing(dt, rate, smoothness float64) float64 {
	return common.Clamp01(dt * rate / smoothness)
}

func lerpVector(a, b cp.Vector, t float64) cp.Vector {
	return cp.Vector{X: common.Lerp(a.X, b.X, t), Y: common.Lerp(a.Y, b.Y, t)}
}

func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo, hi)
}
