package adapter_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/adapter"
	"github.com/phanxgames/nodekit/engine"
)

// forwardCase drives one member through an adapter and checks the engine node,
// or sets the engine node and reads through the adapter.
type forwardCase struct {
	name string
	run  func(t *testing.T)
}

func runForwarding(t *testing.T, cases []forwardCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, tc.run)
	}
}

func assertVec(t *testing.T, want, got engine.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "Y")
}

// fixedFont measures every rune as 8x10.
type fixedFont struct{}

func (fixedFont) MeasureString(s string) (float64, float64) { return float64(len([]rune(s))) * 8, 10 }
func (fixedFont) LineHeight() float64                       { return 10 }

var (
	red  = engine.Color{R: 1, A: 1}
	teal = engine.Color{G: 0.5, B: 0.5, A: 1}
)

func TestControlForwarding(t *testing.T) {
	newPair := func() (*engine.Control, *adapter.Control) {
		n := engine.NewControl("panel")
		return n, adapter.NewControl(n)
	}
	runForwarding(t, []forwardCase{
		{"SetPosition", func(t *testing.T) {
			n, a := newPair()
			a.SetPosition(engine.Vec2{X: 3, Y: 4})
			assert.Equal(t, engine.Vec2{X: 3, Y: 4}, n.Position())
			n.SetPosition(engine.Vec2{X: 7, Y: 8})
			assert.Equal(t, engine.Vec2{X: 7, Y: 8}, a.Position())
		}},
		{"SetSize", func(t *testing.T) {
			n, a := newPair()
			a.SetSize(engine.Vec2{X: 40, Y: 20})
			assert.Equal(t, engine.Vec2{X: 40, Y: 20}, n.Size())
			n.SetSize(engine.Vec2{X: 12, Y: 6})
			assert.Equal(t, engine.Vec2{X: 12, Y: 6}, a.Size())
		}},
		{"SetCustomMinimumSize", func(t *testing.T) {
			n, a := newPair()
			a.SetCustomMinimumSize(engine.Vec2{X: 10, Y: 10})
			assert.Equal(t, engine.Vec2{X: 10, Y: 10}, n.CustomMinimumSize())
			a.SetSize(engine.Vec2{X: 4, Y: 20})
			assert.Equal(t, engine.Vec2{X: 10, Y: 20}, n.Size())
			assert.Panics(t, func() { a.SetCustomMinimumSize(engine.Vec2{X: -1}) })
		}},
		{"GetRect", func(t *testing.T) {
			n, a := newPair()
			n.SetPosition(engine.Vec2{X: 3, Y: 4})
			n.SetSize(engine.Vec2{X: 10, Y: 20})
			want := engine.Rect{X: 3, Y: 4, Width: 10, Height: 20}
			assert.Equal(t, want, a.GetRect())
			assert.Equal(t, want, a.GetGlobalRect())
		}},
		{"HasPoint", func(t *testing.T) {
			n, a := newPair()
			n.SetSize(engine.Vec2{X: 10, Y: 20})
			assert.True(t, a.HasPoint(engine.Vec2{X: 5, Y: 5}))
			assert.False(t, a.HasPoint(engine.Vec2{X: 50, Y: 5}))
		}},
		{"SetTooltipText", func(t *testing.T) {
			n, a := newPair()
			a.SetTooltipText("save")
			assert.Equal(t, "save", n.TooltipText())
			n.SetTooltipText("load")
			assert.Equal(t, "load", a.TooltipText())
		}},
		{"SetMouseFilter", func(t *testing.T) {
			n, a := newPair()
			a.SetMouseFilter(engine.MouseFilterIgnore)
			assert.Equal(t, engine.MouseFilterIgnore, n.MouseFilter())
			n.SetMouseFilter(engine.MouseFilterPass)
			assert.Equal(t, engine.MouseFilterPass, a.MouseFilter())
		}},
		{"Focus", func(t *testing.T) {
			n, a := newPair()
			tree := engine.NewSceneTree()
			tree.Root().AddChild(n)
			a.GrabFocus()
			assert.True(t, n.HasFocus())
			assert.True(t, a.HasFocus())
			a.ReleaseFocus()
			assert.False(t, n.HasFocus())
		}},
	})
}

func TestLabelForwarding(t *testing.T) {
	newPair := func() (*engine.Label, *adapter.Label) {
		n := engine.NewLabel("caption")
		return n, adapter.NewLabel(n)
	}
	runForwarding(t, []forwardCase{
		{"SetText", func(t *testing.T) {
			n, a := newPair()
			a.SetText("hello")
			assert.Equal(t, "hello", n.Text())
			n.SetText("bye")
			assert.Equal(t, "bye", a.Text())
		}},
		{"SetHorizontalAlignment", func(t *testing.T) {
			n, a := newPair()
			a.SetHorizontalAlignment(engine.TextAlignRight)
			assert.Equal(t, engine.TextAlignRight, n.HorizontalAlignment())
			n.SetHorizontalAlignment(engine.TextAlignCenter)
			assert.Equal(t, engine.TextAlignCenter, a.HorizontalAlignment())
		}},
		{"SetAutowrap", func(t *testing.T) {
			n, a := newPair()
			a.SetAutowrap(true)
			assert.True(t, n.Autowrap())
			n.SetAutowrap(false)
			assert.False(t, a.Autowrap())
		}},
		{"SetFont", func(t *testing.T) {
			n, a := newPair()
			assert.Same(t, engine.DefaultFont(), a.Font())
			a.SetFont(fixedFont{})
			assert.Equal(t, fixedFont{}, n.Font())
		}},
		{"SetFontColor", func(t *testing.T) {
			n, a := newPair()
			a.SetFontColor(red)
			assert.Equal(t, red, n.FontColor())
			n.SetFontColor(teal)
			assert.Equal(t, teal, a.FontColor())
		}},
		{"SetVisibleCharacters", func(t *testing.T) {
			n, a := newPair()
			a.SetVisibleCharacters(3)
			assert.Equal(t, 3, n.VisibleCharacters())
			n.SetVisibleCharacters(-5)
			assert.Equal(t, -1, a.VisibleCharacters())
		}},
		{"Layout", func(t *testing.T) {
			n, a := newPair()
			n.SetFont(fixedFont{})
			n.SetText("abc\nde")
			assert.Equal(t, 2, a.GetLineCount())
			assert.Equal(t, engine.Vec2{X: 24, Y: 20}, a.TextSize())
		}},
	})
}

func TestButtonForwarding(t *testing.T) {
	newPair := func() (*engine.Button, *adapter.Button) {
		n := engine.NewButton("ok")
		return n, adapter.NewButton(n)
	}
	runForwarding(t, []forwardCase{
		{"SetText", func(t *testing.T) {
			n, a := newPair()
			a.SetText("OK")
			assert.Equal(t, "OK", n.Text())
			n.SetText("Cancel")
			assert.Equal(t, "Cancel", a.Text())
		}},
		{"SetFlat", func(t *testing.T) {
			n, a := newPair()
			a.SetFlat(true)
			assert.True(t, n.Flat())
			n.SetFlat(false)
			assert.False(t, a.Flat())
		}},
		{"SetIcon", func(t *testing.T) {
			n, a := newPair()
			assert.Nil(t, a.Icon())
			icon := ebiten.NewImage(8, 8)
			a.SetIcon(icon)
			assert.Same(t, icon, n.Icon())
		}},
		{"SetAlignment", func(t *testing.T) {
			n, a := newPair()
			assert.Equal(t, engine.TextAlignCenter, a.Alignment())
			a.SetAlignment(engine.TextAlignRight)
			assert.Equal(t, engine.TextAlignRight, n.Alignment())
			n.SetAlignment(engine.TextAlignLeft)
			assert.Equal(t, engine.TextAlignLeft, a.Alignment())
		}},
		{"SetButtonPressed", func(t *testing.T) {
			n, a := newPair()
			a.SetToggleMode(true)
			assert.True(t, n.ToggleMode())
			a.SetButtonPressed(true)
			assert.True(t, n.ButtonPressed())
			n.SetDisabled(true)
			assert.True(t, a.Disabled())
		}},
	})
}

func TestPolygon2DForwarding(t *testing.T) {
	newPair := func() (*engine.Polygon2D, *adapter.Polygon2D) {
		n := engine.NewPolygon2D("shape")
		return n, adapter.NewPolygon2D(n)
	}
	square := []engine.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	runForwarding(t, []forwardCase{
		{"SetPolygon", func(t *testing.T) {
			n, a := newPair()
			a.SetPolygon(square)
			assert.Equal(t, square, n.Polygon())
			assert.Equal(t, 2, a.TriangleCount())
			n.SetPolygon(square[:3])
			assert.Equal(t, square[:3], a.Polygon())
			assert.Equal(t, 1, a.TriangleCount())
		}},
		{"SetColor", func(t *testing.T) {
			n, a := newPair()
			a.SetColor(red)
			assert.Equal(t, red, n.Color())
			n.SetColor(teal)
			assert.Equal(t, teal, a.Color())
		}},
		{"SetTexture", func(t *testing.T) {
			n, a := newPair()
			img := ebiten.NewImage(4, 4)
			a.SetTexture(img)
			assert.Same(t, img, n.Texture())
		}},
		{"SetOffset", func(t *testing.T) {
			n, a := newPair()
			a.SetOffset(engine.Vec2{X: -5, Y: -5})
			assert.Equal(t, engine.Vec2{X: -5, Y: -5}, n.Offset())
			n.SetOffset(engine.Vec2{X: 1, Y: 2})
			assert.Equal(t, engine.Vec2{X: 1, Y: 2}, a.Offset())
		}},
	})
}

func TestCamera2DForwarding(t *testing.T) {
	newPair := func() (*engine.Camera2D, *adapter.Camera2D) {
		n := engine.NewCamera2D("cam")
		return n, adapter.NewCamera2D(n)
	}
	runForwarding(t, []forwardCase{
		{"SetZoom", func(t *testing.T) {
			n, a := newPair()
			a.SetZoom(2)
			assert.InDelta(t, 2, n.Zoom(), 1e-9)
			n.SetZoom(0.5)
			assert.InDelta(t, 0.5, a.Zoom(), 1e-9)
			assert.Panics(t, func() { a.SetZoom(0) })
		}},
		{"SetEnabled", func(t *testing.T) {
			n, a := newPair()
			a.SetEnabled(false)
			assert.False(t, n.Enabled())
			n.SetEnabled(true)
			assert.True(t, a.Enabled())
		}},
		{"MakeCurrent", func(t *testing.T) {
			n, a := newPair()
			tree := engine.NewSceneTree()
			tree.Root().AddChild(n)
			a.MakeCurrent()
			assert.True(t, n.IsCurrent())
			assert.True(t, a.IsCurrent())
		}},
		{"SetViewport", func(t *testing.T) {
			n, a := newPair()
			vp := engine.Rect{Width: 200, Height: 100}
			a.SetViewport(vp)
			assert.Equal(t, vp, n.Viewport())
		}},
		{"SetLimit", func(t *testing.T) {
			n, a := newPair()
			bounds := engine.Rect{X: -100, Y: -100, Width: 2000, Height: 1000}
			a.SetLimit(bounds)
			got, ok := n.Limit()
			assert.True(t, ok)
			assert.Equal(t, bounds, got)
			a.ClearLimit()
			_, ok = n.Limit()
			assert.False(t, ok)
		}},
		{"SetPositionSmoothing", func(t *testing.T) {
			n, a := newPair()
			a.SetPositionSmoothingEnabled(true)
			assert.True(t, n.PositionSmoothingEnabled())
			a.SetPositionSmoothingSpeed(8)
			assert.InDelta(t, 8, n.PositionSmoothingSpeed(), 1e-9)
			n.SetPositionSmoothingSpeed(3)
			assert.InDelta(t, 3, a.PositionSmoothingSpeed(), 1e-9)
		}},
		{"ScrollTo", func(t *testing.T) {
			n, a := newPair()
			assert.False(t, a.IsScrolling())
			a.ScrollTo(engine.Vec2{X: 300, Y: 200}, 0.5, ease.Linear)
			assert.True(t, n.IsScrolling())
		}},
		{"Projection", func(t *testing.T) {
			n, a := newPair()
			n.SetPosition(engine.Vec2{X: 100, Y: 50})
			assertVec(t, engine.Vec2{X: 100, Y: 50}, a.GetScreenCenter())
			assertVec(t, engine.Vec2{X: 320, Y: 240}, a.WorldToScreen(engine.Vec2{X: 100, Y: 50}))
			assertVec(t, engine.Vec2{X: 100, Y: 50}, a.ScreenToWorld(engine.Vec2{X: 320, Y: 240}))
			assert.Equal(t, n.VisibleRect(), a.VisibleRect())
			assert.InDelta(t, 640, a.VisibleRect().Width, 1e-9)
		}},
	})
}

func TestCPUParticles2DForwarding(t *testing.T) {
	newPair := func() (*engine.CPUParticles2D, *adapter.CPUParticles2D) {
		n := engine.NewCPUParticles2D("sparks")
		return n, adapter.NewCPUParticles2D(n)
	}
	runForwarding(t, []forwardCase{
		{"SetEmitting", func(t *testing.T) {
			n, a := newPair()
			a.SetEmitting(true)
			assert.True(t, n.Emitting())
			n.SetEmitting(false)
			assert.False(t, a.Emitting())
		}},
		{"SetAmount", func(t *testing.T) {
			n, a := newPair()
			a.SetAmount(32)
			assert.Equal(t, 32, n.Amount())
			assert.Panics(t, func() { a.SetAmount(0) })
		}},
		{"SetOneShot", func(t *testing.T) {
			n, a := newPair()
			a.SetOneShot(true)
			assert.True(t, n.OneShot())
		}},
		{"SetConfig", func(t *testing.T) {
			n, a := newPair()
			cfg := engine.DefaultParticleConfig()
			cfg.EmitRate = 99
			a.SetConfig(cfg)
			assert.InDelta(t, 99, n.Config().EmitRate, 1e-9)
			assert.Same(t, n.Config(), a.Config())
			a.Config().Gravity = engine.Vec2{Y: 98}
			assert.Equal(t, engine.Vec2{Y: 98}, n.Config().Gravity)
		}},
		{"SetTexture", func(t *testing.T) {
			n, a := newPair()
			img := ebiten.NewImage(2, 2)
			a.SetTexture(img)
			assert.Same(t, img, n.Texture())
		}},
		{"Restart", func(t *testing.T) {
			n, a := newPair()
			a.Restart()
			assert.True(t, n.Emitting())
		}},
		{"AliveCount", func(t *testing.T) {
			n, a := newPair()
			tree := engine.NewSceneTree()
			tree.Root().AddChild(n)
			n.SetAmount(4)
			n.Config().EmitRate = 0
			n.SetEmitting(true)
			tree.Process(0.1)
			assert.Equal(t, 4, a.AliveCount())
		}},
	})
}

func TestAnimatedSprite2DForwarding(t *testing.T) {
	newPair := func() (*engine.AnimatedSprite2D, *adapter.AnimatedSprite2D) {
		n := engine.NewAnimatedSprite2D("hero")
		sf := engine.NewSpriteFrames()
		sf.AddAnimation("run")
		for range 3 {
			sf.AddFrame("run", ebiten.NewImage(4, 4))
		}
		n.SetSpriteFrames(sf)
		return n, adapter.NewAnimatedSprite2D(n)
	}
	runForwarding(t, []forwardCase{
		{"SetSpriteFrames", func(t *testing.T) {
			n, a := newPair()
			sf := engine.NewSpriteFrames()
			a.SetSpriteFrames(sf)
			assert.Same(t, sf, n.SpriteFrames())
			assert.Same(t, n.SpriteFrames(), a.SpriteFrames())
		}},
		{"SetAnimation", func(t *testing.T) {
			n, a := newPair()
			a.SetAnimation("run")
			assert.Equal(t, "run", n.Animation())
			n.SetAnimation(engine.DefaultAnimation)
			assert.Equal(t, engine.DefaultAnimation, a.Animation())
		}},
		{"Play", func(t *testing.T) {
			n, a := newPair()
			a.Play("run")
			assert.True(t, n.IsPlaying())
			assert.Equal(t, "run", n.Animation())
			a.SetFrame(2)
			assert.Equal(t, 2, n.Frame())
			a.Pause()
			assert.False(t, n.IsPlaying())
			assert.Equal(t, 2, a.Frame())
			a.Stop()
			assert.Equal(t, 0, n.Frame())
			assert.Panics(t, func() { a.Play("jump") })
		}},
		{"SetSpeedScale", func(t *testing.T) {
			n, a := newPair()
			a.SetSpeedScale(2)
			assert.InDelta(t, 2, n.SpeedScale(), 1e-9)
		}},
		{"Drawing", func(t *testing.T) {
			n, a := newPair()
			a.SetCentered(false)
			a.SetOffset(engine.Vec2{X: 1, Y: 2})
			a.SetFlipH(true)
			a.SetFlipV(true)
			assert.False(t, n.Centered())
			assert.Equal(t, engine.Vec2{X: 1, Y: 2}, n.Offset())
			assert.True(t, n.FlipH())
			assert.True(t, n.FlipV())
			n.SetFlipV(false)
			assert.False(t, a.FlipV())
		}},
	})
}

func TestAnimationPlayerForwarding(t *testing.T) {
	var value float64
	newPair := func() (*engine.AnimationPlayer, *adapter.AnimationPlayer, *engine.Animation) {
		anim := engine.NewAnimation()
		anim.AddTrack(engine.Track{From: 0, To: 10, Duration: 1, Apply: func(v float64) { value = v }})
		n := engine.NewAnimationPlayer("player")
		return n, adapter.NewAnimationPlayer(n), anim
	}
	runForwarding(t, []forwardCase{
		{"AddAnimation", func(t *testing.T) {
			n, a, anim := newPair()
			a.AddAnimation("slide", anim)
			assert.True(t, n.HasAnimation("slide"))
			assert.Same(t, anim, a.GetAnimation("slide"))
			assert.Equal(t, []string{"slide"}, a.GetAnimationList())
			a.RemoveAnimation("slide")
			assert.False(t, n.HasAnimation("slide"))
		}},
		{"Play", func(t *testing.T) {
			n, a, anim := newPair()
			n.AddAnimation("slide", anim)
			a.Play("slide")
			assert.True(t, n.IsPlaying())
			assert.Equal(t, "slide", n.CurrentAnimation())
			a.Pause()
			assert.False(t, n.IsPlaying())
			assert.Panics(t, func() { a.Play("missing") })
		}},
		{"Seek", func(t *testing.T) {
			n, a, anim := newPair()
			n.AddAnimation("slide", anim)
			n.Play("slide")
			a.Seek(0.5)
			assert.InDelta(t, 0.5, n.CurrentAnimationPosition(), 1e-9)
			assert.InDelta(t, 5, value, 1e-6)
			a.Stop()
			assert.Zero(t, a.CurrentAnimationPosition())
		}},
		{"SetSpeedScale", func(t *testing.T) {
			n, a, _ := newPair()
			a.SetSpeedScale(2)
			assert.InDelta(t, 2, n.SpeedScale(), 1e-9)
			n.SetSpeedScale(0.5)
			assert.InDelta(t, 0.5, a.SpeedScale(), 1e-9)
		}},
	})
}

func TestPointLight2DForwarding(t *testing.T) {
	newPair := func() (*engine.PointLight2D, *adapter.PointLight2D) {
		n := engine.NewPointLight2D("lamp")
		return n, adapter.NewPointLight2D(n)
	}
	runForwarding(t, []forwardCase{
		{"SetEnabled", func(t *testing.T) {
			n, a := newPair()
			a.SetEnabled(false)
			assert.False(t, n.Enabled())
		}},
		{"SetEnergy", func(t *testing.T) {
			n, a := newPair()
			a.SetEnergy(0.5)
			assert.InDelta(t, 0.5, n.Energy(), 1e-9)
			assert.Panics(t, func() { a.SetEnergy(-1) })
		}},
		{"SetColor", func(t *testing.T) {
			n, a := newPair()
			a.SetColor(red)
			assert.Equal(t, red, n.Color())
		}},
		{"SetTexture", func(t *testing.T) {
			n, a := newPair()
			img := ebiten.NewImage(16, 16)
			a.SetTexture(img)
			assert.Same(t, img, n.Texture())
		}},
		{"SetTextureScale", func(t *testing.T) {
			n, a := newPair()
			a.SetTextureScale(2)
			assert.InDelta(t, 2, n.TextureScale(), 1e-9)
		}},
		{"SetRadius", func(t *testing.T) {
			n, a := newPair()
			assert.InDelta(t, 64, a.Radius(), 1e-9)
			a.SetRadius(128)
			assert.InDelta(t, 128, n.Radius(), 1e-9)
			n.SetRadius(32)
			assert.InDelta(t, 32, a.Radius(), 1e-9)
			assert.Panics(t, func() { a.SetRadius(0) })
		}},
		{"SetOffset", func(t *testing.T) {
			n, a := newPair()
			a.SetOffset(engine.Vec2{X: 4, Y: -4})
			assert.Equal(t, engine.Vec2{X: 4, Y: -4}, n.Offset())
		}},
	})
}

// --- Interface views ---

func TestButtonInterfaceViewsShareState(t *testing.T) {
	n := engine.NewButton("ok")
	b := adapter.NewButton(n)

	var asControl nodekit.Control = b
	var asBase nodekit.BaseButton = b
	var asButton nodekit.Button = b
	views := map[string]nodekit.Control{
		"Control":    asControl,
		"BaseButton": asBase,
		"Button":     asButton,
	}

	for setter, view := range views {
		size := engine.Vec2{X: float64(10 * len(setter)), Y: 24}
		view.SetSize(size)
		for name, other := range views {
			assert.Equal(t, size, other.Size(), "set through %s, read through %s", setter, name)
		}
		assert.Equal(t, size, n.Size())
	}

	asButton.SetCustomMinimumSize(engine.Vec2{X: 200, Y: 30})
	for name, view := range views {
		assert.Equal(t, engine.Vec2{X: 200, Y: 30}, view.Size(), name)
	}

	asBase.SetDisabled(true)
	assert.True(t, asButton.Disabled())
}

func TestInterfaceViewsFromSeparateAdapters(t *testing.T) {
	n := engine.NewButton("ok")

	ctrl, err := adapter.AdaptControl(n)
	require.NoError(t, err)
	base, err := adapter.AdaptBaseButton(n)
	require.NoError(t, err)
	generic, err := adapter.Adapt(n)
	require.NoError(t, err)
	button, ok := generic.(nodekit.Button)
	require.True(t, ok)

	var asControl nodekit.Control = ctrl
	var asBase nodekit.BaseButton = base

	asControl.SetSize(engine.Vec2{X: 64, Y: 16})
	assert.Equal(t, engine.Vec2{X: 64, Y: 16}, asBase.Size())
	assert.Equal(t, engine.Vec2{X: 64, Y: 16}, button.Size())

	button.SetToggleMode(true)
	button.Press()
	assert.True(t, asBase.ButtonPressed())
	assert.Equal(t, engine.ClassButton, asControl.GetClass())
}
