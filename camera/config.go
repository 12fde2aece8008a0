package camera

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

type Projection string

const (
	Orthographic Projection = "orthographic"
	Perspective  Projection = "perspective"
)

// Bounds is an axis-aligned rectangle in the camera's parent frame.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether inner lies within b, allowing eps of slack.
func (b Bounds) Contains(inner Bounds, eps float64) bool {
	return inner.XMin >= b.XMin-eps && inner.XMax <= b.XMax+eps &&
		inner.YMin >= b.YMin-eps && inner.YMax <= b.YMax+eps
}

// Config tunes the camera. Ranges are the ones Validate enforces.
type Config struct {
	// Bounds limits camera travel so the visible area stays inside it.
	Bounds Bounds
	// PanSmoothness in [1, 30]. Larger is smoother.
	PanSmoothness float64
	// ZoomSmoothness in [1, 30]. Larger is smoother.
	ZoomSmoothness float64
	// ZoomSpeed is a percentage in [1, 100] of the zoom range covered per
	// scroll unit.
	ZoomSpeed float64
	// ZoomMin and ZoomMax bound the visible half height, both in [1, 20].
	ZoomMin float64
	ZoomMax float64
	// InitialZoom must fall inside the zoom range. Zero means ZoomMax.
	InitialZoom     float64
	InitialPosition cp.Vector
	// Origin is the parent frame's world position. Camera positions are
	// relative to it.
	Origin     cp.Vector
	Projection Projection
}

func DefaultConfig() Config {
	return Config{
		Bounds:         Bounds{XMin: -20, XMax: 20, YMin: -13.5, YMax: 13.5},
		PanSmoothness:  10,
		ZoomSmoothness: 10,
		ZoomSpeed:      20,
		ZoomMin:        2,
		ZoomMax:        7,
		InitialZoom:    7,
		Projection:     Orthographic,
	}
}

// Validate reports every misconfiguration joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Projection != "" && c.Projection != Orthographic {
		errs = append(errs, fmt.Errorf("camera: projection must be %s, got %s", Orthographic, c.Projection))
	}
	if c.Bounds.XMin > c.Bounds.XMax {
		errs = append(errs, fmt.Errorf("camera: x bounds inverted (%v > %v)", c.Bounds.XMin, c.Bounds.XMax))
	}
	if c.Bounds.YMin > c.Bounds.YMax {
		errs = append(errs, fmt.Errorf("camera: y bounds inverted (%v > %v)", c.Bounds.YMin, c.Bounds.YMax))
	}
	if c.PanSmoothness < 1 || c.PanSmoothness > 30 {
		errs = append(errs, fmt.Errorf("camera: pan smoothness %v outside [1, 30]", c.PanSmoothness))
	}
	if c.ZoomSmoothness < 1 || c.ZoomSmoothness > 30 {
		errs = append(errs, fmt.Errorf("camera: zoom smoothness %v outside [1, 30]", c.ZoomSmoothness))
	}
	if c.ZoomSpeed < 1 || c.ZoomSpeed > 100 {
		errs = append(errs, fmt.Errorf("camera: zoom speed %v outside [1, 100]", c.ZoomSpeed))
	}
	if c.ZoomMin < 1 || c.ZoomMax > 20 || c.ZoomMin > c.ZoomMax {
		errs = append(errs, fmt.Errorf("camera: zoom range [%v, %v] invalid, want 1 <= min <= max <= 20", c.ZoomMin, c.ZoomMax))
	}
	if c.InitialZoom != 0 && (c.InitialZoom < c.ZoomMin || c.InitialZoom > c.ZoomMax) {
		errs = append(errs, fmt.Errorf("camera: initial zoom %v outside zoom range [%v, %v]", c.InitialZoom, c.ZoomMin, c.ZoomMax))
	}
	return errors.Join(errs...)
}

// sanitized returns a copy with values that would break the math (division
// by zero, inverted ranges) replaced. Values that are only out of their
// recommended range are left alone.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.PanSmoothness <= 0 {
		c.PanSmoothness = def.PanSmoothness
	}
	if c.ZoomSmoothness <= 0 {
		c.ZoomSmoothness = def.ZoomSmoothness
	}
	if c.ZoomMin > c.ZoomMax {
		c.ZoomMin, c.ZoomMax = c.ZoomMax, c.ZoomMin
	}
	if c.ZoomMin <= 0 {
		c.ZoomMin = def.ZoomMin
		if c.ZoomMax < c.ZoomMin {
			c.ZoomMax = c.ZoomMin
		}
	}
	if c.Bounds.XMin > c.Bounds.XMax {
		c.Bounds.XMin, c.Bounds.XMax = c.Bounds.XMax, c.Bounds.XMin
	}
	if c.Bounds.YMin > c.Bounds.YMax {
		c.Bounds.YMin, c.Bounds.YMax = c.Bounds.YMax, c.Bounds.YMin
	}
	if c.InitialZoom == 0 {
		c.InitialZoom = c.ZoomMax
	}
	return c
}
