package engine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera2D controls the view into the tree: its global position is the center
// of the viewport. At most one camera per tree is current.
type Camera2D struct {
	Node2D

	zoom     float64
	enabled  bool
	viewport Rect

	limitEnabled bool
	limit        Rect

	smoothing      bool
	smoothingSpeed float64
	center         Vec2

	wantCurrent bool
	scroll      *scrollAnim
}

// NewCamera2D creates an enabled camera with unit zoom and a 640x480 viewport.
func NewCamera2D(name string) *Camera2D {
	c := &Camera2D{}
	c.initNode2D(c, ClassCamera2D, name)
	c.zoom = 1
	c.enabled = true
	c.viewport = Rect{Width: 640, Height: 480}
	c.smoothingSpeed = 5
	return c
}

// AsCamera2D returns c.
func (c *Camera2D) AsCamera2D() *Camera2D { return c }

// Zoom returns the scale factor (1 = no zoom, >1 = zoom in, <1 = zoom out).
func (c *Camera2D) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the scale factor. Panics if zoom <= 0.
func (c *Camera2D) SetZoom(zoom float64) {
	if zoom <= 0 {
		panic("engine: Camera2D zoom must be positive")
	}
	c.zoom = zoom
}

// Enabled reports whether the camera may become current.
func (c *Camera2D) Enabled() bool {
	return c.enabled
}

// SetEnabled enables or disables the camera. Disabling the current camera
// leaves the tree without one.
func (c *Camera2D) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled && c.IsCurrent() {
		c.tree.currentCamera = nil
	}
}

// MakeCurrent makes this the tree's current camera. Outside a tree the request
// is remembered until the camera enters one.
func (c *Camera2D) MakeCurrent() {
	if c.tree == nil {
		c.wantCurrent = true
		return
	}
	c.enabled = true
	c.tree.currentCamera = c
	c.center = c.targetCenter()
}

// IsCurrent reports whether this is the current camera of its tree.
func (c *Camera2D) IsCurrent() bool {
	return c.tree != nil && c.tree.currentCamera == c
}

// Viewport returns the screen-space rectangle this camera renders into.
func (c *Camera2D) Viewport() Rect {
	return c.viewport
}

// SetViewport sets the screen-space rectangle this camera renders into.
func (c *Camera2D) SetViewport(r Rect) {
	c.viewport = r
}

// SetLimit clamps the view so the visible area stays within bounds.
func (c *Camera2D) SetLimit(bounds Rect) {
	c.limitEnabled = true
	c.limit = bounds
}

// ClearLimit removes the view clamp.
func (c *Camera2D) ClearLimit() {
	c.limitEnabled = false
}

// Limit returns the clamp rectangle and whether it is active.
func (c *Camera2D) Limit() (Rect, bool) {
	return c.limit, c.limitEnabled
}

// PositionSmoothingEnabled reports whether the view center eases toward the
// camera position instead of snapping.
func (c *Camera2D) PositionSmoothingEnabled() bool {
	return c.smoothing
}

// SetPositionSmoothingEnabled toggles position smoothing.
func (c *Camera2D) SetPositionSmoothingEnabled(enabled bool) {
	c.smoothing = enabled
	c.center = c.targetCenter()
}

// PositionSmoothingSpeed returns the smoothing rate per second.
func (c *Camera2D) PositionSmoothingSpeed() float64 {
	return c.smoothingSpeed
}

// SetPositionSmoothingSpeed sets the smoothing rate per second.
func (c *Camera2D) SetPositionSmoothingSpeed(speed float64) {
	c.smoothingSpeed = speed
}

// ScrollTo animates the camera to the given global position over duration
// seconds.
func (c *Camera2D) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	from := c.GlobalPosition()
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(from.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(target.Y), duration, easeFn),
	}
}

// IsScrolling reports whether a ScrollTo animation is in progress.
func (c *Camera2D) IsScrolling() bool {
	return c.scroll != nil
}

// GetScreenCenter returns the global point shown at the viewport center.
func (c *Camera2D) GetScreenCenter() Vec2 {
	if c.smoothing {
		return c.clampCenter(c.center)
	}
	return c.targetCenter()
}

// targetCenter is the clamped global position.
func (c *Camera2D) targetCenter() Vec2 {
	return c.clampCenter(c.GlobalPosition())
}

// clampCenter restricts p so the visible area stays within the limit.
func (c *Camera2D) clampCenter(p Vec2) Vec2 {
	if !c.limitEnabled {
		return p
	}
	halfW := c.viewport.Width / (2 * c.zoom)
	halfH := c.viewport.Height / (2 * c.zoom)

	minX := c.limit.X + halfW
	maxX := c.limit.X + c.limit.Width - halfW
	minY := c.limit.Y + halfH
	maxY := c.limit.Y + c.limit.Height - halfH

	// If the limit is smaller than the visible area, center the camera.
	if minX > maxX {
		p.X = c.limit.X + c.limit.Width/2
	} else {
		p.X = math.Max(minX, math.Min(p.X, maxX))
	}
	if minY > maxY {
		p.Y = c.limit.Y + c.limit.Height/2
	} else {
		p.Y = math.Max(minY, math.Min(p.Y, maxY))
	}
	return p
}

func (c *Camera2D) internalProcess(delta float64) {
	if c.scroll != nil {
		pos := c.GlobalPosition()
		dt := float32(delta)
		if !c.scroll.doneX {
			val, done := c.scroll.tweenX.Update(dt)
			pos.X = float64(val)
			c.scroll.doneX = done
		}
		if !c.scroll.doneY {
			val, done := c.scroll.tweenY.Update(dt)
			pos.Y = float64(val)
			c.scroll.doneY = done
		}
		c.SetGlobalPosition(pos)
		if c.scroll.doneX && c.scroll.doneY {
			c.scroll = nil
		}
	}

	if c.smoothing {
		t := math.Min(1, c.smoothingSpeed*delta)
		target := c.targetCenter()
		c.center = c.center.Add(target.Sub(c.center).Scale(t))
	}
}

func (c *Camera2D) notification(what int) {
	switch what {
	case notificationEnterTree:
		if c.wantCurrent || (c.enabled && c.tree.currentCamera == nil) {
			c.wantCurrent = false
			c.MakeCurrent()
		}
	case notificationExitTree:
		if c.IsCurrent() {
			c.tree.currentCamera = nil
		}
	}
}

// viewTransform maps global coordinates to screen coordinates:
//
//	Translate(viewport center) * Scale(zoom) * Rotate(-rotation) * Translate(-center)
func (c *Camera2D) viewTransform() Transform2D {
	center := c.GetScreenCenter()
	cx := c.viewport.X + c.viewport.Width/2
	cy := c.viewport.Y + c.viewport.Height/2

	sin, cos := math.Sincos(-c.GlobalRotation())
	z := c.zoom

	a := z * cos
	b := z * sin
	cc := -z * sin
	d := z * cos
	tx := cx + a*(-center.X) + cc*(-center.Y)
	ty := cy + b*(-center.X) + d*(-center.Y)
	return Transform2D{a, b, cc, d, tx, ty}
}

// WorldToScreen converts a global point to screen coordinates.
func (c *Camera2D) WorldToScreen(p Vec2) Vec2 {
	return c.viewTransform().Xform(p)
}

// ScreenToWorld converts a screen point to global coordinates.
func (c *Camera2D) ScreenToWorld(p Vec2) Vec2 {
	return c.viewTransform().Inverse().Xform(p)
}

// VisibleRect returns the axis-aligned bounding rect of the camera's visible
// area in global space.
func (c *Camera2D) VisibleRect() Rect {
	inv := c.viewTransform().Inverse()
	vx, vy := c.viewport.X, c.viewport.Y
	vr, vb := vx+c.viewport.Width, vy+c.viewport.Height
	return pointsBounds([]Vec2{
		inv.Xform(Vec2{vx, vy}),
		inv.Xform(Vec2{vr, vy}),
		inv.Xform(Vec2{vr, vb}),
		inv.Xform(Vec2{vx, vb}),
	})
}
