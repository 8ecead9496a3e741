package adapter

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Sprite2D = (*Sprite2D)(nil)

// Sprite2D forwards nodekit.Sprite2D to an *engine.Sprite2D.
type Sprite2D struct {
	*Node2D
	sprite *engine.Sprite2D
}

// NewSprite2D wraps n without checking it.
func NewSprite2D(n *engine.Sprite2D) *Sprite2D {
	return &Sprite2D{Node2D: NewNode2D(&n.Node2D), sprite: n}
}

// AdaptSprite2D wraps inst if it is a Sprite2D.
func AdaptSprite2D(inst engine.Instance) (*Sprite2D, error) {
	c, err := narrow[interface{ AsSprite2D() *engine.Sprite2D }](inst, engine.ClassSprite2D)
	if err != nil {
		return nil, err
	}
	return NewSprite2D(c.AsSprite2D()), nil
}

func (a *Sprite2D) Texture() *ebiten.Image       { return a.sprite.Texture() }
func (a *Sprite2D) SetTexture(img *ebiten.Image) { a.sprite.SetTexture(img) }
func (a *Sprite2D) Centered() bool               { return a.sprite.Centered() }
func (a *Sprite2D) SetCentered(c bool)           { a.sprite.SetCentered(c) }
func (a *Sprite2D) Offset() engine.Vec2          { return a.sprite.Offset() }
func (a *Sprite2D) SetOffset(o engine.Vec2)      { a.sprite.SetOffset(o) }
func (a *Sprite2D) FlipH() bool                  { return a.sprite.FlipH() }
func (a *Sprite2D) SetFlipH(f bool)              { a.sprite.SetFlipH(f) }
func (a *Sprite2D) FlipV() bool                  { return a.sprite.FlipV() }
func (a *Sprite2D) SetFlipV(f bool)              { a.sprite.SetFlipV(f) }
func (a *Sprite2D) RegionEnabled() bool          { return a.sprite.RegionEnabled() }
func (a *Sprite2D) SetRegionEnabled(e bool)      { a.sprite.SetRegionEnabled(e) }
func (a *Sprite2D) RegionRect() engine.Rect      { return a.sprite.RegionRect() }
func (a *Sprite2D) SetRegionRect(r engine.Rect)  { a.sprite.SetRegionRect(r) }
func (a *Sprite2D) Hframes() int                 { return a.sprite.Hframes() }
func (a *Sprite2D) SetHframes(n int)             { a.sprite.SetHframes(n) }
func (a *Sprite2D) Vframes() int                 { return a.sprite.Vframes() }
func (a *Sprite2D) SetVframes(n int)             { a.sprite.SetVframes(n) }
func (a *Sprite2D) Frame() int                   { return a.sprite.Frame() }
func (a *Sprite2D) SetFrame(frame int)           { a.sprite.SetFrame(frame) }
func (a *Sprite2D) GetRect() engine.Rect         { return a.sprite.GetRect() }
