package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.AnimatedSprite2D = (*AnimatedSprite2D)(nil)

// AnimatedSprite2D forwards nodekit.AnimatedSprite2D to an *engine.AnimatedSprite2D.
type AnimatedSprite2D struct {
	*Node2D
	anim *engine.AnimatedSprite2D
}

// NewAnimatedSprite2D wraps n without checking it.
func NewAnimatedSprite2D(n *engine.AnimatedSprite2D) *AnimatedSprite2D {
	return &AnimatedSprite2D{Node2D: NewNode2D(&n.Node2D), anim: n}
}

// AdaptAnimatedSprite2D wraps inst if it is a AnimatedSprite2D.
func AdaptAnimatedSprite2D(inst engine.Instance) (*AnimatedSprite2D, error) {
	c, err := narrow[interface{ AsAnimatedSprite2D() *engine.AnimatedSprite2D }](inst, engine.ClassAnimatedSprite2D)
	if err != nil {
		return nil, err
	}
	return NewAnimatedSprite2D(c.AsAnimatedSprite2D()), nil
}

func (a *AnimatedSprite2D) SpriteFrames() *engine.SpriteFrames      { return a.anim.SpriteFrames() }
func (a *AnimatedSprite2D) SetSpriteFrames(sf *engine.SpriteFrames) { a.anim.SetSpriteFrames(sf) }
func (a *AnimatedSprite2D) Animation() string                       { return a.anim.Animation() }
func (a *AnimatedSprite2D) SetAnimation(anim string)                { a.anim.SetAnimation(anim) }
func (a *AnimatedSprite2D) Frame() int                              { return a.anim.Frame() }
func (a *AnimatedSprite2D) SetFrame(frame int)                      { a.anim.SetFrame(frame) }
func (a *AnimatedSprite2D) SpeedScale() float64                     { return a.anim.SpeedScale() }
func (a *AnimatedSprite2D) SetSpeedScale(scale float64)             { a.anim.SetSpeedScale(scale) }
func (a *AnimatedSprite2D) Play(anim string)                        { a.anim.Play(anim) }
func (a *AnimatedSprite2D) Pause()                                  { a.anim.Pause() }
func (a *AnimatedSprite2D) Stop()                                   { a.anim.Stop() }
func (a *AnimatedSprite2D) IsPlaying() bool                         { return a.anim.IsPlaying() }
func (a *AnimatedSprite2D) Centered() bool                          { return a.anim.Centered() }
func (a *AnimatedSprite2D) SetCentered(c bool)                      { a.anim.SetCentered(c) }
func (a *AnimatedSprite2D) Offset() engine.Vec2                     { return a.anim.Offset() }
func (a *AnimatedSprite2D) SetOffset(o engine.Vec2)                 { a.anim.SetOffset(o) }
func (a *AnimatedSprite2D) FlipH() bool                             { return a.anim.FlipH() }
func (a *AnimatedSprite2D) SetFlipH(f bool)                         { a.anim.SetFlipH(f) }
func (a *AnimatedSprite2D) FlipV() bool                             { return a.anim.FlipV() }
func (a *AnimatedSprite2D) SetFlipV(f bool)                         { a.anim.SetFlipV(f) }
