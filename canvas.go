package nodekit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodekit/engine"
)

// CanvasItem is the capability set of engine.CanvasItem.
type CanvasItem interface {
	Node

	IsVisible() bool
	SetVisible(visible bool)
	Show()
	Hide()
	IsVisibleInTree() bool
	Modulate() engine.Color
	SetModulate(c engine.Color)
	SelfModulate() engine.Color
	SetSelfModulate(c engine.Color)
	ZIndex() int
	SetZIndex(z int)
	BlendMode() engine.BlendMode
	SetBlendMode(mode engine.BlendMode)
	GetGlobalTransform() engine.Transform2D
}

// Node2D is the capability set of engine.Node2D.
type Node2D interface {
	CanvasItem

	Position() engine.Vec2
	SetPosition(p engine.Vec2)
	Rotation() float64
	SetRotation(r float64)
	RotationDegrees() float64
	SetRotationDegrees(deg float64)
	Scale() engine.Vec2
	SetScale(s engine.Vec2)
	Skew() float64
	SetSkew(s float64)
	Transform() engine.Transform2D
	GlobalPosition() engine.Vec2
	SetGlobalPosition(p engine.Vec2)
	GlobalRotation() float64
	Translate(offset engine.Vec2)
	Rotate(radians float64)
	ToGlobal(local engine.Vec2) engine.Vec2
	ToLocal(global engine.Vec2) engine.Vec2
	LookAt(point engine.Vec2)
}

// Sprite2D is the capability set of engine.Sprite2D.
type Sprite2D interface {
	Node2D

	Texture() *ebiten.Image
	SetTexture(img *ebiten.Image)
	Centered() bool
	SetCentered(c bool)
	Offset() engine.Vec2
	SetOffset(o engine.Vec2)
	FlipH() bool
	SetFlipH(f bool)
	FlipV() bool
	SetFlipV(f bool)
	RegionEnabled() bool
	SetRegionEnabled(e bool)
	RegionRect() engine.Rect
	SetRegionRect(r engine.Rect)
	Hframes() int
	SetHframes(n int)
	Vframes() int
	SetVframes(n int)
	Frame() int
	SetFrame(frame int)
	GetRect() engine.Rect
}

// AnimatedSprite2D is the capability set of engine.AnimatedSprite2D.
type AnimatedSprite2D interface {
	Node2D

	SpriteFrames() *engine.SpriteFrames
	SetSpriteFrames(sf *engine.SpriteFrames)
	Animation() string
	SetAnimation(anim string)
	Frame() int
	SetFrame(frame int)
	SpeedScale() float64
	SetSpeedScale(scale float64)
	Play(anim string)
	Pause()
	Stop()
	IsPlaying() bool
	Centered() bool
	SetCentered(c bool)
	Offset() engine.Vec2
	SetOffset(o engine.Vec2)
	FlipH() bool
	SetFlipH(f bool)
	FlipV() bool
	SetFlipV(f bool)
}

// Polygon2D is the capability set of engine.Polygon2D.
type Polygon2D interface {
	Node2D

	Polygon() []engine.Vec2
	SetPolygon(points []engine.Vec2)
	Color() engine.Color
	SetColor(c engine.Color)
	Texture() *ebiten.Image
	SetTexture(img *ebiten.Image)
	Offset() engine.Vec2
	SetOffset(o engine.Vec2)
	TriangleCount() int
}

// Camera2D is the capability set of engine.Camera2D.
type Camera2D interface {
	Node2D

	Zoom() float64
	SetZoom(zoom float64)
	Enabled() bool
	SetEnabled(enabled bool)
	MakeCurrent()
	IsCurrent() bool
	Viewport() engine.Rect
	SetViewport(r engine.Rect)
	SetLimit(bounds engine.Rect)
	ClearLimit()
	Limit() (engine.Rect, bool)
	PositionSmoothingEnabled() bool
	SetPositionSmoothingEnabled(enabled bool)
	PositionSmoothingSpeed() float64
	SetPositionSmoothingSpeed(speed float64)
	ScrollTo(target engine.Vec2, duration float32, easeFn ease.TweenFunc)
	IsScrolling() bool
	GetScreenCenter() engine.Vec2
	WorldToScreen(p engine.Vec2) engine.Vec2
	ScreenToWorld(p engine.Vec2) engine.Vec2
	VisibleRect() engine.Rect
}

// CPUParticles2D is the capability set of engine.CPUParticles2D.
type CPUParticles2D interface {
	Node2D

	Emitting() bool
	SetEmitting(emitting bool)
	Amount() int
	SetAmount(amount int)
	OneShot() bool
	SetOneShot(oneShot bool)
	Config() *engine.ParticleConfig
	SetConfig(cfg engine.ParticleConfig)
	Texture() *ebiten.Image
	SetTexture(img *ebiten.Image)
	Restart()
	AliveCount() int
}

// Light2D is the capability set of engine.Light2D.
type Light2D interface {
	Node2D

	Enabled() bool
	SetEnabled(enabled bool)
	Energy() float64
	SetEnergy(energy float64)
	Color() engine.Color
	SetColor(c engine.Color)
}

// PointLight2D is the capability set of engine.PointLight2D.
type PointLight2D interface {
	Light2D

	Texture() *ebiten.Image
	SetTexture(img *ebiten.Image)
	TextureScale() float64
	SetTextureScale(scale float64)
	Radius() float64
	SetRadius(radius float64)
	Offset() engine.Vec2
	SetOffset(o engine.Vec2)
}
