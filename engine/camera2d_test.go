package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestCamera2DDefaults(t *testing.T) {
	c := NewCamera2D("cam")
	assert.Equal(t, 1.0, c.Zoom())
	assert.True(t, c.Enabled())
	assert.Equal(t, Rect{Width: 640, Height: 480}, c.Viewport())
	_, ok := c.Limit()
	assert.False(t, ok, "limit should be off by default")
	assert.False(t, c.IsCurrent(), "camera outside a tree cannot be current")
	assert.PanicsWithValue(t, "engine: Camera2D zoom must be positive", func() { c.SetZoom(0) })
	assert.Panics(t, func() { c.SetZoom(-1) })
}

func TestCamera2DFirstEnabledBecomesCurrent(t *testing.T) {
	tree := NewSceneTree()
	off := NewCamera2D("off")
	off.SetEnabled(false)
	a := NewCamera2D("a")
	b := NewCamera2D("b")
	tree.Root().AddChild(off)
	tree.Root().AddChild(a)
	tree.Root().AddChild(b)

	require.Same(t, a, tree.CurrentCamera())
	assert.False(t, off.IsCurrent())
	assert.False(t, b.IsCurrent())

	b.MakeCurrent()
	assert.True(t, b.IsCurrent(), "MakeCurrent should switch the current camera")
	assert.False(t, a.IsCurrent())

	tree.Root().RemoveChild(b)
	assert.Nil(t, tree.CurrentCamera(), "removing the current camera should clear it")
}

func TestCamera2DMakeCurrentBeforeEnter(t *testing.T) {
	tree := NewSceneTree()
	a := NewCamera2D("a")
	tree.Root().AddChild(a)

	b := NewCamera2D("b")
	b.MakeCurrent()
	tree.Root().AddChild(b)
	assert.Same(t, b, tree.CurrentCamera(), "a pending MakeCurrent should apply on enter")
}

func TestCamera2DDisableCurrent(t *testing.T) {
	tree := NewSceneTree()
	a := NewCamera2D("a")
	tree.Root().AddChild(a)
	a.SetEnabled(false)
	assert.Nil(t, tree.CurrentCamera(), "disabling the current camera should clear it")
}

func TestCamera2DWorldScreen(t *testing.T) {
	c := NewCamera2D("cam")
	c.SetPosition(Vec2{100, 50})
	c.SetZoom(2)

	got := c.WorldToScreen(Vec2{110, 50})
	assertVec(t, Vec2{340, 240}, got, "WorldToScreen")
	assertVec(t, Vec2{110, 50}, c.ScreenToWorld(got), "ScreenToWorld")

	c.SetPosition(Vec2{})
	r := c.VisibleRect()
	assert.InDelta(t, -160, r.X, epsilon)
	assert.InDelta(t, -120, r.Y, epsilon)
	assert.InDelta(t, 320, r.Width, epsilon)
	assert.InDelta(t, 240, r.Height, epsilon)
}

func TestCamera2DRotatedView(t *testing.T) {
	c := NewCamera2D("cam")
	c.SetRotationDegrees(90)
	// The camera x axis points down the world y axis, so (0,10) shows up right of center.
	assertVec(t, Vec2{330, 240}, c.WorldToScreen(Vec2{0, 10}))
}

func TestCamera2DLimit(t *testing.T) {
	c := NewCamera2D("cam")
	c.SetLimit(Rect{Width: 1000, Height: 1000})

	tests := []struct {
		pos, want Vec2
	}{
		{Vec2{0, 0}, Vec2{320, 240}},
		{Vec2{500, 500}, Vec2{500, 500}},
		{Vec2{2000, 2000}, Vec2{680, 760}},
	}
	for _, tt := range tests {
		c.SetPosition(tt.pos)
		assert.Equal(t, tt.want, c.GetScreenCenter(), "center at %v", tt.pos)
	}

	c.SetLimit(Rect{Width: 100, Height: 100})
	assert.Equal(t, Vec2{50, 50}, c.GetScreenCenter(), "limit smaller than the view")

	c.ClearLimit()
	assert.Equal(t, Vec2{2000, 2000}, c.GetScreenCenter(), "without limit")
}

func TestCamera2DScrollTo(t *testing.T) {
	tree := NewSceneTree()
	c := NewCamera2D("cam")
	tree.Root().AddChild(c)

	c.ScrollTo(Vec2{100, 0}, 1, ease.Linear)
	require.True(t, c.IsScrolling())
	tree.Process(0.5)
	assertVec(t, Vec2{50, 0}, c.Position(), "halfway")
	tree.Process(0.5)
	assertVec(t, Vec2{100, 0}, c.Position(), "at end")
	assert.False(t, c.IsScrolling(), "scroll should be finished")
}

func TestCamera2DSmoothing(t *testing.T) {
	c := NewCamera2D("cam")
	c.SetPositionSmoothingEnabled(true)
	c.SetPosition(Vec2{100, 0})
	assert.Equal(t, Vec2{}, c.GetScreenCenter(), "center before processing")
	c.internalProcess(0.1)
	assertVec(t, Vec2{50, 0}, c.GetScreenCenter(), "after 0.1s")
	c.internalProcess(1)
	assertVec(t, Vec2{100, 0}, c.GetScreenCenter(), "after catching up")
}
