package scene

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Renderer is the visual side of a selectable object.
type Renderer interface {
	Color() color.Color
	SetColor(c color.Color)
	// Size is the visual width and height in world units.
	Size() cp.Vector
	// Position is the world-space center.
	Position() cp.Vector
}

// Sprite is a flat-colored renderer.
type Sprite struct {
	color    color.Color
	size     cp.Vector
	position cp.Vector
}

func NewSprite(position, size cp.Vector, c color.Color) *Sprite {
	return &Sprite{color: c, size: size, position: position}
}

func (s *Sprite) Color() color.Color { return s.color }
func (s *Sprite) SetColor(c color.Color) { s.color = c }
func (s *Sprite) Size() cp.Vector { return s.size }
func (s *Sprite) Position() cp.Vector { return s.position }
