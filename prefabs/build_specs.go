package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mapamundi/area"
	"github.com/milk9111/mapamundi/camera"
	"github.com/milk9111/mapamundi/scene"
	"github.com/milk9111/mapamundi/selection"
)

// DefaultAreaColor is the resting color of areas when map.yaml sets none.
var DefaultAreaColor color.Color = color.NRGBA{R: 0xd8, G: 0xd2, B: 0xc4, A: 0xff}

// Config converts camera.yaml into a camera configuration.
func (s *CameraSpec) Config() camera.Config {
	cfg := camera.DefaultConfig()
	if s == nil {
		return cfg
	}
	if s.Projection != "" {
		cfg.Projection = camera.Projection(s.Projection)
	}
	if s.Bounds != (BoundsSpec{}) {
		cfg.Bounds = camera.Bounds{XMin: s.Bounds.XMin, XMax: s.Bounds.XMax, YMin: s.Bounds.YMin, YMax: s.Bounds.YMax}
	}
	if s.PanSmoothness != 0 {
		cfg.PanSmoothness = s.PanSmoothness
	}
	if s.ZoomSmoothness != 0 {
		cfg.ZoomSmoothness = s.ZoomSmoothness
	}
	if s.ZoomSpeed != 0 {
		cfg.ZoomSpeed = s.ZoomSpeed
	}
	if s.ZoomMin != 0 {
		cfg.ZoomMin = s.ZoomMin
	}
	if s.ZoomMax != 0 {
		cfg.ZoomMax = s.ZoomMax
	}
	cfg.InitialZoom = s.InitialZoom
	cfg.InitialPosition = cp.Vector{X: s.Position.X, Y: s.Position.Y}
	cfg.Origin = cp.Vector{X: s.Origin.X, Y: s.Origin.Y}
	return cfg
}

// List converts the catalog spec. Entries without a color are kept but will
// never select.
func (s *AreasSpec) List() []area.Area {
	if s == nil {
		return nil
	}
	out := make([]area.Area, 0, len(s.Areas))
	for _, as := range s.Areas {
		a := area.Area{
			Name:           as.Name,
			Description:    as.Description,
			HighlightColor: colorOr(as.Color, nil),
			Icon:           as.Icon,
		}
		if !a.Valid() {
			log.Printf("prefabs: area %q has no name or color and cannot be selected", as.Name)
		}
		out = append(out, a)
	}
	return out
}

func (s *MapSpec) DefaultAreaColor() color.Color {
	if s == nil {
		return DefaultAreaColor
	}
	return colorOr(s.DefaultColor, DefaultAreaColor)
}

func (s *MapSpec) BackgroundColor() color.Color {
	if s == nil {
		return color.Black
	}
	return colorOr(s.Background, color.Black)
}

// SelectionConfig returns the selection tuning stored in the map spec.
func (s *MapSpec) SelectionConfig() selection.Config {
	cfg := selection.DefaultConfig()
	cfg.DefaultColor = s.DefaultAreaColor()
	if s != nil && s.MaxClickDistance > 0 {
		cfg.MaxClickDistance = s.MaxClickDistance
	}
	return cfg
}

// Populate adds every object to sc. Bad objects are skipped and reported
// together. It returns the number of objects added.
func (s *MapSpec) Populate(sc *scene.Scene) (int, error) {
	if s == nil || sc == nil {
		return 0, nil
	}
	def := s.DefaultAreaColor()

	var errs []error
	added := 0
	for i, obj := range s.Objects {
		spec := scene.ObjectSpec{
			Name:     obj.Name,
			Shape:    scene.ShapeKind(obj.Shape),
			Position: cp.Vector{X: obj.X, Y: obj.Y},
			Size:     cp.Vector{X: obj.Width, Y: obj.Height},
		}
		for _, p := range obj.Points {
			spec.Points = append(spec.Points, cp.Vector{X: p.X, Y: p.Y})
		}
		if obj.Renderer == nil || *obj.Renderer {
			spec.Color = def
		}
		if _, err := sc.AddArea(spec); err != nil {
			errs = append(errs, fmt.Errorf("prefabs: map object %d: %w", i, err))
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}
