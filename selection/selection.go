// Package selection turns primary-button clicks on the map into area
// selections. A press followed by a release within MaxClickDistance (in
// viewport units) is a click. Anything longer is a drag and is discarded.
package selection

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mapamundi/area"
	"github.com/milk9111/mapamundi/input"
	"github.com/milk9111/mapamundi/scene"
)

// GestureState tracks the primary button gesture.
type GestureState int

const (
	Idle GestureState = iota
	Candidate
	Panned
)

func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Candidate:
		return "candidate"
	case Panned:
		return "panned"
	default:
		return fmt.Sprintf("gesture(%d)", int(s))
	}
}

type Config struct {
	// MaxClickDistance in [0, 1], viewport units.
	MaxClickDistance float64
	// DefaultColor is restored on areas that lose the highlight.
	DefaultColor color.Color
	// PanDisqualifies drops the click candidate while the camera pans. Set it
	// when the pan and primary buttons differ.
	PanDisqualifies bool
}

func DefaultConfig() Config {
	return Config{
		MaxClickDistance: 0.1,
		DefaultColor:     color.White,
	}
}

type Input interface {
	Snapshot() input.State
}

// Camera is the part of camera.Controller the selection needs.
type Camera interface {
	PointerInViewport() cp.Vector
	HitTest(screen cp.Vector) (scene.Hit, bool)
	Focus(world cp.Vector, width float64)
	Panning() bool
}

type Scene interface {
	Renderer(id scene.ID) (scene.Renderer, bool)
}

type Catalog interface {
	Lookup(name string) (area.Area, bool)
}

// Panel displays the selected area's info.
type Panel interface {
	Show(name, description, icon string)
	Hide()
}

type Controller struct {
	cfg     Config
	in      Input
	cam     Camera
	scene   Scene
	catalog Catalog
	panel   Panel

	state       GestureState
	clickOrigin cp.Vector

	// current only names the highlighted object. The scene owns it.
	current  scene.ID
	selected area.Area
}

// New builds a controller and hides the panel.
func New(cfg Config, in Input, cam Camera, sc Scene, cat Catalog, panel Panel) *Controller {
	if cfg.DefaultColor == nil {
		cfg.DefaultColor = color.White
	}
	c := &Controller{
		cfg:     cfg,
		in:      in,
		cam:     cam,
		scene:   sc,
		catalog: cat,
		panel:   panel,
	}
	if panel != nil {
		panel.Hide()
	}
	return c
}

func (c *Controller) State() GestureState {
	return c.state
}

// Selected returns the highlighted area, if any.
func (c *Controller) Selected() (area.Area, bool) {
	if c.current == scene.NoID {
		return area.Area{}, false
	}
	return c.selected, true
}

// SelectedID returns the scene ID of the highlighted object, or scene.NoID.
func (c *Controller) SelectedID() scene.ID {
	return c.current
}

// Update runs once per frame, after the camera has advanced.
func (c *Controller) Update() {
	if c == nil || c.in == nil || c.cam == nil {
		return
	}
	in := c.in.Snapshot()

	if in.PrimaryPressed {
		c.clickOrigin = c.cam.PointerInViewport()
		c.state = Candidate
	}

	if c.state == Candidate && c.cfg.PanDisqualifies && c.cam.Panning() {
		c.state = Panned
	}

	if in.PrimaryReleased {
		if c.state == Candidate {
			c.click(in.Cursor())
		}
		c.state = Idle
	}
}

func (c *Controller) click(cursor cp.Vector) {
	d := c.cam.PointerInViewport().Sub(c.clickOrigin)
	if math.Hypot(d.X, d.Y) >= c.cfg.MaxClickDistance {
		return
	}

	hit, ok := c.cam.HitTest(cursor)
	if !ok || c.catalog == nil || c.scene == nil {
		return
	}
	a, ok := c.catalog.Lookup(hit.Name)
	if !ok || !a.Valid() {
		return
	}
	r, ok := c.scene.Renderer(hit.ID)
	if !ok {
		return
	}
	c.selectArea(hit.ID, a, r)
}

func (c *Controller) selectArea(id scene.ID, a area.Area, r scene.Renderer) {
	if c.current != scene.NoID && c.current != id {
		c.restoreCurrent()
	}
	r.SetColor(a.HighlightColor)
	c.current = id
	c.selected = a

	c.cam.Focus(r.Position(), r.Size().X)
	if c.panel != nil {
		c.panel.Show(a.Name, a.Description, a.Icon)
	}
}

// Unselect clears the highlight and hides the panel. Calling it with nothing
// selected only hides the panel.
func (c *Controller) Unselect() {
	c.restoreCurrent()
	c.current = scene.NoID
	c.selected = area.Area{}
	if c.panel != nil {
		c.panel.Hide()
	}
}

func (c *Controller) restoreCurrent() {
	if c.current == scene.NoID || c.scene == nil {
		return
	}
	if r, ok := c.scene.Renderer(c.current); ok {
		r.SetColor(c.cfg.DefaultColor)
	}
}
