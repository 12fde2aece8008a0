package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	ErrInvalidShape = errors.New("scene: invalid shape")
	ErrEmptyName    = errors.New("scene: object name is empty")
)

// ID identifies an object in a Scene. IDs are never reused, so a stale ID
// held after Remove or Clear simply stops resolving.
type ID int

const NoID ID = 0

type ShapeKind string

const (
	ShapeBox     ShapeKind = "box"
	ShapeCircle  ShapeKind = "circle"
	ShapePolygon ShapeKind = "polygon"
)

const circleOutlineSegments = 24

// ObjectSpec describes a selectable area's collision shape in world space.
type ObjectSpec struct {
	Name     string
	Shape    ShapeKind
	Position cp.Vector
	// Size is the full width/height for boxes. Circles use Size.X as the
	// diameter.
	Size cp.Vector
	// Points are polygon vertices relative to Position. The collision shape is
	// their convex hull.
	Points []cp.Vector
	// Color is the sprite's initial color. A nil Color creates an object with
	// no renderer.
	Color color.Color
}

// Object is a named collision shape, with an optional sprite.
type Object struct {
	ID       ID
	Name     string
	Position cp.Vector
	// Outline is the world-space polygon used for drawing.
	Outline []cp.Vector

	shape  *cp.Shape
	sprite *Sprite
}

// Sprite returns the object's renderer, or nil.
func (o *Object) Sprite() *Sprite {
	if o == nil {
		return nil
	}
	return o.sprite
}

// Hit is the result of a point query.
type Hit struct {
	ID   ID
	Name string
}

// Scene owns a Chipmunk space holding one static shape per object.
type Scene struct {
	space  *cp.Space
	nextID ID

	objects   map[ID]*Object
	order     []ID
	shapeToID map[*cp.Shape]ID
}

func New() *Scene {
	return &Scene{
		space:     cp.NewSpace(),
		objects:   make(map[ID]*Object),
		shapeToID: make(map[*cp.Shape]ID),
	}
}

// Space returns the underlying Chipmunk space.
func (s *Scene) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// AddArea adds an object built from spec and returns its ID.
func (s *Scene) AddArea(spec ObjectSpec) (ID, error) {
	if s == nil || s.space == nil {
		return NoID, fmt.Errorf("scene: add %q: nil scene", spec.Name)
	}
	if spec.Name == "" {
		return NoID, ErrEmptyName
	}

	body := s.space.StaticBody
	var shape *cp.Shape
	var outline []cp.Vector

	switch spec.Shape {
	case ShapeBox, "":
		if spec.Size.X <= 0 || spec.Size.Y <= 0 {
			return NoID, fmt.Errorf("%w: box %q needs a positive size", ErrInvalidShape, spec.Name)
		}
		bb := cp.NewBBForExtents(spec.Position, spec.Size.X/2, spec.Size.Y/2)
		shape = cp.NewBox2(body, bb, 0)
		outline = []cp.Vector{
			{X: bb.L, Y: bb.B},
			{X: bb.R, Y: bb.B},
			{X: bb.R, Y: bb.T},
			{X: bb.L, Y: bb.T},
		}
	case ShapeCircle:
		radius := spec.Size.X / 2
		if radius <= 0 {
			return NoID, fmt.Errorf("%w: circle %q needs a positive diameter", ErrInvalidShape, spec.Name)
		}
		shape = cp.NewCircle(body, radius, spec.Position)
		outline = make([]cp.Vector, 0, circleOutlineSegments)
		for i := 0; i < circleOutlineSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleOutlineSegments
			outline = append(outline, cp.Vector{
				X: spec.Position.X + radius*math.Cos(a),
				Y: spec.Position.Y + radius*math.Sin(a),
			})
		}
	case ShapePolygon:
		if len(spec.Points) < 3 {
			return NoID, fmt.Errorf("%w: polygon %q needs at least 3 points", ErrInvalidShape, spec.Name)
		}
		outline = make([]cp.Vector, 0, len(spec.Points))
		for _, p := range spec.Points {
			outline = append(outline, spec.Position.Add(p))
		}
		shape = cp.NewPolyShape(body, len(outline), outline, cp.NewTransformIdentity(), 0)
	default:
		return NoID, fmt.Errorf("%w: unknown shape %q for %q", ErrInvalidShape, spec.Shape, spec.Name)
	}

	s.nextID++
	id := s.nextID
	obj := &Object{
		ID:       id,
		Name:     spec.Name,
		Position: spec.Position,
		Outline:  outline,
		shape:    shape,
	}
	if spec.Color != nil {
		obj.sprite = NewSprite(spec.Position, extents(outline), spec.Color)
	}

	s.space.AddShape(shape)
	s.shapeToID[shape] = id
	s.objects[id] = obj
	s.order = append(s.order, id)
	return id, nil
}

// Remove drops an object and its shape. It reports whether the ID was live.
func (s *Scene) Remove(id ID) bool {
	if s == nil {
		return false
	}
	obj, ok := s.objects[id]
	if !ok {
		return false
	}
	s.space.RemoveShape(obj.shape)
	delete(s.shapeToID, obj.shape)
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every object. IDs keep counting from where they were.
func (s *Scene) Clear() {
	if s == nil {
		return
	}
	for _, id := range append([]ID(nil), s.order...) {
		s.Remove(id)
	}
}

// QueryPoint returns the object whose shape contains the world point. When
// shapes overlap the one the point is deepest inside wins.
func (s *Scene) QueryPoint(p cp.Vector) (Hit, bool) {
	if s == nil || s.space == nil {
		return Hit{}, false
	}
	info := s.space.PointQueryNearest(p, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return Hit{}, false
	}
	id, ok := s.shapeToID[info.Shape]
	if !ok {
		return Hit{}, false
	}
	obj := s.objects[id]
	return Hit{ID: id, Name: obj.Name}, true
}

// Renderer returns the sprite of a live object that has one.
func (s *Scene) Renderer(id ID) (Renderer, bool) {
	obj, ok := s.Object(id)
	if !ok || obj.sprite == nil {
		return nil, false
	}
	return obj.sprite, true
}

func (s *Scene) Object(id ID) (*Object, bool) {
	if s == nil {
		return nil, false
	}
	obj, ok := s.objects[id]
	return obj, ok
}

// Objects returns live objects in insertion order.
func (s *Scene) Objects() []*Object {
	if s == nil {
		return nil
	}
	out := make([]*Object, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id])
	}
	return out
}

func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

func extents(points []cp.Vector) cp.Vector {
	if len(points) == 0 {
		return cp.Vector{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return cp.Vector{X: maxX - minX, Y: maxY - minY}
}
