package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	CameraFile = "camera.yaml"
	AreasFile  = "areas.yaml"
	MapFile    = "map.yaml"
)

// ErrEmptySpec is returned for a spec file with no YAML content, such as one
// caught mid-save.
var ErrEmptySpec = errors.New("empty spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, ErrEmptySpec)
	}

	var spec T
	if err := doc.Decode(&spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoundsSpec struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// CameraSpec is camera.yaml. Zero numeric fields fall back to the camera
// defaults.
type CameraSpec struct {
	Name           string     `yaml:"name"`
	Projection     string     `yaml:"projection"`
	Bounds         BoundsSpec `yaml:"bounds"`
	PanSmoothness  float64    `yaml:"pan_smoothness"`
	ZoomSmoothness float64    `yaml:"zoom_smoothness"`
	ZoomSpeed      float64    `yaml:"zoom_speed"`
	ZoomMin        float64    `yaml:"zoom_min"`
	ZoomMax        float64    `yaml:"zoom_max"`
	InitialZoom    float64    `yaml:"initial_zoom"`
	Position       PointSpec  `yaml:"position"`
	Origin         PointSpec  `yaml:"origin"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AreaSpec struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Color       *YAMLColor `yaml:"color"`
	Icon        string     `yaml:"icon"`
}

// AreasSpec is areas.yaml, the selectable area catalog.
type AreasSpec struct {
	Areas []AreaSpec `yaml:"areas"`
}

func LoadAreasSpec() (*AreasSpec, error) {
	spec, err := LoadSpec[AreasSpec](AreasFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ObjectSpec struct {
	Name   string      `yaml:"name"`
	Shape  string      `yaml:"shape"`
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Points []PointSpec `yaml:"points"`
	// Renderer defaults to true. Objects without one can be hit but never
	// selected.
	Renderer *bool `yaml:"renderer"`
}

// MapSpec is map.yaml: the area shapes and selection tuning.
type MapSpec struct {
	Name             string       `yaml:"name"`
	MaxClickDistance float64      `yaml:"max_click_distance"`
	DefaultColor     *YAMLColor   `yaml:"default_color"`
	Background       *YAMLColor   `yaml:"background"`
	Objects          []ObjectSpec `yaml:"objects"`
}

func LoadMapSpec() (*MapSpec, error) {
	spec, err := LoadSpec[MapSpec](MapFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name such as
// "forestgreen".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	raw := strings.TrimSpace(value.Value)
	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(raw, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func colorOr(c *YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
