package adapter

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var (
	_ nodekit.Light2D      = (*Light2D)(nil)
	_ nodekit.PointLight2D = (*PointLight2D)(nil)
)

// Light2D forwards nodekit.Light2D to an *engine.Light2D.
type Light2D struct {
	*Node2D
	light *engine.Light2D
}

// NewLight2D wraps n without checking it.
func NewLight2D(n *engine.Light2D) *Light2D {
	return &Light2D{Node2D: NewNode2D(&n.Node2D), light: n}
}

// AdaptLight2D wraps inst if it is a Light2D or a subclass.
func AdaptLight2D(inst engine.Instance) (*Light2D, error) {
	c, err := narrow[interface{ AsLight2D() *engine.Light2D }](inst, engine.ClassLight2D)
	if err != nil {
		return nil, err
	}
	return NewLight2D(c.AsLight2D()), nil
}

func (a *Light2D) Enabled() bool            { return a.light.Enabled() }
func (a *Light2D) SetEnabled(enabled bool)  { a.light.SetEnabled(enabled) }
func (a *Light2D) Energy() float64          { return a.light.Energy() }
func (a *Light2D) SetEnergy(energy float64) { a.light.SetEnergy(energy) }
func (a *Light2D) Color() engine.Color      { return a.light.Color() }
func (a *Light2D) SetColor(c engine.Color)  { a.light.SetColor(c) }

// PointLight2D forwards nodekit.PointLight2D to an *engine.PointLight2D.
type PointLight2D struct {
	*Light2D
	point *engine.PointLight2D
}

// NewPointLight2D wraps n without checking it.
func NewPointLight2D(n *engine.PointLight2D) *PointLight2D {
	return &PointLight2D{Light2D: NewLight2D(&n.Light2D), point: n}
}

// AdaptPointLight2D wraps inst if it is a PointLight2D.
func AdaptPointLight2D(inst engine.Instance) (*PointLight2D, error) {
	c, err := narrow[interface{ AsPointLight2D() *engine.PointLight2D }](inst, engine.ClassPointLight2D)
	if err != nil {
		return nil, err
	}
	return NewPointLight2D(c.AsPointLight2D()), nil
}

func (a *PointLight2D) Texture() *ebiten.Image        { return a.point.Texture() }
func (a *PointLight2D) SetTexture(img *ebiten.Image)  { a.point.SetTexture(img) }
func (a *PointLight2D) TextureScale() float64         { return a.point.TextureScale() }
func (a *PointLight2D) SetTextureScale(scale float64) { a.point.SetTextureScale(scale) }
func (a *PointLight2D) Radius() float64               { return a.point.Radius() }
func (a *PointLight2D) SetRadius(radius float64)      { a.point.SetRadius(radius) }
func (a *PointLight2D) Offset() engine.Vec2           { return a.point.Offset() }
func (a *PointLight2D) SetOffset(o engine.Vec2)       { a.point.SetOffset(o) }
