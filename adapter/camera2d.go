package adapter

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Camera2D = (*Camera2D)(nil)

// Camera2D forwards nodekit.Camera2D to an *engine.Camera2D.
type Camera2D struct {
	*Node2D
	cam *engine.Camera2D
}

// NewCamera2D wraps n without checking it.
func NewCamera2D(n *engine.Camera2D) *Camera2D {
	return &Camera2D{Node2D: NewNode2D(&n.Node2D), cam: n}
}

// AdaptCamera2D wraps inst if it is a Camera2D.
func AdaptCamera2D(inst engine.Instance) (*Camera2D, error) {
	c, err := narrow[interface{ AsCamera2D() *engine.Camera2D }](inst, engine.ClassCamera2D)
	if err != nil {
		return nil, err
	}
	return NewCamera2D(c.AsCamera2D()), nil
}

func (a *Camera2D) Zoom() float64                                                        { return a.cam.Zoom() }
func (a *Camera2D) SetZoom(zoom float64)                                                 { a.cam.SetZoom(zoom) }
func (a *Camera2D) Enabled() bool                                                        { return a.cam.Enabled() }
func (a *Camera2D) SetEnabled(enabled bool)                                              { a.cam.SetEnabled(enabled) }
func (a *Camera2D) MakeCurrent()                                                         { a.cam.MakeCurrent() }
func (a *Camera2D) IsCurrent() bool                                                      { return a.cam.IsCurrent() }
func (a *Camera2D) Viewport() engine.Rect                                                { return a.cam.Viewport() }
func (a *Camera2D) SetViewport(r engine.Rect)                                            { a.cam.SetViewport(r) }
func (a *Camera2D) SetLimit(bounds engine.Rect)                                          { a.cam.SetLimit(bounds) }
func (a *Camera2D) ClearLimit()                                                          { a.cam.ClearLimit() }
func (a *Camera2D) Limit() (engine.Rect, bool)                                           { return a.cam.Limit() }
func (a *Camera2D) PositionSmoothingEnabled() bool                                       { return a.cam.PositionSmoothingEnabled() }
func (a *Camera2D) SetPositionSmoothingEnabled(enabled bool)                             { a.cam.SetPositionSmoothingEnabled(enabled) }
func (a *Camera2D) PositionSmoothingSpeed() float64                                      { return a.cam.PositionSmoothingSpeed() }
func (a *Camera2D) SetPositionSmoothingSpeed(speed float64)                              { a.cam.SetPositionSmoothingSpeed(speed) }
func (a *Camera2D) ScrollTo(target engine.Vec2, duration float32, easeFn ease.TweenFunc) { a.cam.ScrollTo(target, duration, easeFn) }
func (a *Camera2D) IsScrolling() bool                                                    { return a.cam.IsScrolling() }
func (a *Camera2D) GetScreenCenter() engine.Vec2                                         { return a.cam.GetScreenCenter() }
func (a *Camera2D) WorldToScreen(p engine.Vec2) engine.Vec2                              { return a.cam.WorldToScreen(p) }
func (a *Camera2D) ScreenToWorld(p engine.Vec2) engine.Vec2                              { return a.cam.ScreenToWorld(p) }
func (a *Camera2D) VisibleRect() engine.Rect                                             { return a.cam.VisibleRect() }
