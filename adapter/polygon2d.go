package adapter

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Polygon2D = (*Polygon2D)(nil)

// Polygon2D forwards nodekit.Polygon2D to an *engine.Polygon2D.
type Polygon2D struct {
	*Node2D
	poly *engine.Polygon2D
}

// NewPolygon2D wraps n without checking it.
func NewPolygon2D(n *engine.Polygon2D) *Polygon2D {
	return &Polygon2D{Node2D: NewNode2D(&n.Node2D), poly: n}
}

// AdaptPolygon2D wraps inst if it is a Polygon2D.
func AdaptPolygon2D(inst engine.Instance) (*Polygon2D, error) {
	c, err := narrow[interface{ AsPolygon2D() *engine.Polygon2D }](inst, engine.ClassPolygon2D)
	if err != nil {
		return nil, err
	}
	return NewPolygon2D(c.AsPolygon2D()), nil
}

func (a *Polygon2D) Polygon() []engine.Vec2          { return a.poly.Polygon() }
func (a *Polygon2D) SetPolygon(points []engine.Vec2) { a.poly.SetPolygon(points) }
func (a *Polygon2D) Color() engine.Color             { return a.poly.Color() }
func (a *Polygon2D) SetColor(c engine.Color)         { a.poly.SetColor(c) }
func (a *Polygon2D) Texture() *ebiten.Image          { return a.poly.Texture() }
func (a *Polygon2D) SetTexture(img *ebiten.Image)    { a.poly.SetTexture(img) }
func (a *Polygon2D) Offset() engine.Vec2             { return a.poly.Offset() }
func (a *Polygon2D) SetOffset(o engine.Vec2)         { a.poly.SetOffset(o) }
func (a *Polygon2D) TriangleCount() int              { return a.poly.TriangleCount() }
