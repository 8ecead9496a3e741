package adapter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/adapter"
	"github.com/phanxgames/nodekit/engine"
)

// --- Construction ---

func TestAdaptMatchingClass(t *testing.T) {
	s := engine.NewSprite2D("hero")

	a, err := adapter.AdaptSprite2D(s)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Same(t, s, a.NodeInstance())
	assert.Equal(t, "hero", a.Name())
	assert.Equal(t, engine.ClassSprite2D, a.GetClass())
}

func TestAdaptBaseClassOverDerivedNode(t *testing.T) {
	s := engine.NewSprite2D("hero")

	n, err := adapter.AdaptNode2D(s)
	require.NoError(t, err)
	ci, err := adapter.AdaptCanvasItem(s)
	require.NoError(t, err)
	base, err := adapter.AdaptNode(s)
	require.NoError(t, err)

	assert.Equal(t, engine.ClassSprite2D, n.GetClass())
	assert.Equal(t, engine.ClassSprite2D, ci.GetClass())
	assert.Equal(t, engine.ClassSprite2D, base.GetClass())
	assert.True(t, base.IsClass(engine.ClassNode2D))
}

func TestAdaptEmbeddedBasePointer(t *testing.T) {
	s := engine.NewSprite2D("hero")

	a, err := adapter.AdaptSprite2D(s.AsNode2D())
	require.NoError(t, err)
	assert.Same(t, s, a.NodeInstance())
}

func TestAdaptMismatch(t *testing.T) {
	node := engine.NewNode("plain")
	timer := engine.NewTimer("t")
	label := engine.NewLabel("l")

	tests := []struct {
		name     string
		adapt    func(engine.Instance) error
		inst     engine.Instance
		actual   string
		expected string
	}{
		{"Node as Sprite2D", errOf(adapter.AdaptSprite2D), node, "Node", "Sprite2D"},
		{"Node as CanvasItem", errOf(adapter.AdaptCanvasItem), node, "Node", "CanvasItem"},
		{"Timer as Node2D", errOf(adapter.AdaptNode2D), timer, "Timer", "Node2D"},
		{"Label as Button", errOf(adapter.AdaptButton), label, "Label", "Button"},
		{"Label as BaseButton", errOf(adapter.AdaptBaseButton), label, "Label", "BaseButton"},
		{"Timer as AnimationPlayer", errOf(adapter.AdaptAnimationPlayer), timer, "Timer", "AnimationPlayer"},
		{"Node as PointLight2D", errOf(adapter.AdaptPointLight2D), node, "Node", "PointLight2D"},
		{"Object as Node", errOf(adapter.AdaptNode), engine.NewObject(), "Object", "Node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.adapt(tt.inst)
			require.Error(t, err)
			assert.True(t, errors.Is(err, adapter.ErrInvalidArgument))

			var mismatch *adapter.TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.actual, mismatch.Actual)
			assert.Equal(t, tt.expected, mismatch.Expected)
			assert.Contains(t, err.Error(), tt.actual)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestAdaptMismatchReturnsNilAdapter(t *testing.T) {
	a, err := adapter.AdaptCamera2D(engine.NewNode2D("n"))
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestAdaptNil(t *testing.T) {
	_, err := adapter.AdaptNode(nil)
	var mismatch *adapter.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "<nil>", mismatch.Actual)
	assert.Equal(t, "Node", mismatch.Expected)

	var typed *engine.Sprite2D
	_, err = adapter.AdaptSprite2D(typed)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "<nil>", mismatch.Actual)
	assert.EqualError(t, err, "adapter: cannot adapt <nil> as Sprite2D")
}

func errOf[A any](fn func(engine.Instance) (A, error)) func(engine.Instance) error {
	return func(inst engine.Instance) error {
		_, err := fn(inst)
		return err
	}
}

// --- Forwarding ---

func TestForwardingWritesThrough(t *testing.T) {
	s := engine.NewSprite2D("hero")
	a := adapter.NewSprite2D(s)

	a.SetPosition(engine.Vec2{X: 10, Y: 20})
	a.SetFlipH(true)
	a.SetHframes(4)
	a.SetFrame(3)
	a.SetModulate(engine.Color{R: 1, G: 0, B: 0, A: 1})
	a.SetMeta("hp", 7)

	assert.Equal(t, engine.Vec2{X: 10, Y: 20}, s.Position())
	assert.True(t, s.FlipH())
	assert.Equal(t, 3, s.Frame())
	assert.Equal(t, engine.Color{R: 1, G: 0, B: 0, A: 1}, s.Modulate())
	assert.Equal(t, 7, s.GetMeta("hp"))
}

func TestForwardingReadsThrough(t *testing.T) {
	s := engine.NewSprite2D("hero")
	a := adapter.NewSprite2D(s)

	s.SetRotationDegrees(90)
	s.SetCentered(false)
	s.SetZIndex(5)

	assert.InDelta(t, 90, a.RotationDegrees(), 1e-9)
	assert.False(t, a.Centered())
	assert.Equal(t, 5, a.ZIndex())
	assert.Equal(t, s.InstanceID(), a.InstanceID())
}

func TestBaseAndDerivedAdaptersShareNode(t *testing.T) {
	s := engine.NewSprite2D("hero")
	base, err := adapter.AdaptNode2D(s)
	require.NoError(t, err)
	derived := adapter.NewSprite2D(s)

	base.SetPosition(engine.Vec2{X: 3, Y: 4})
	assert.Equal(t, engine.Vec2{X: 3, Y: 4}, derived.Position())

	derived.Hide()
	assert.False(t, base.IsVisible())
}

func TestPanicsPassThrough(t *testing.T) {
	a := adapter.NewSprite2D(engine.NewSprite2D("hero"))
	assert.PanicsWithValue(t, "engine: Sprite2D frame out of range", func() { a.SetFrame(1) })

	timer := adapter.NewTimer(engine.NewTimer("t"))
	assert.Panics(t, func() { timer.SetWaitTime(0) })

	n := adapter.NewNode(engine.NewNode("n"))
	assert.Panics(t, func() { n.AddChild(nil) })
}

func TestTreeOperationsAcceptAdaptedNodes(t *testing.T) {
	parent := adapter.NewNode2D(engine.NewNode2D("parent"))
	child := adapter.NewSprite2D(engine.NewSprite2D("child"))

	parent.AddChild(child.NodeInstance())

	require.Equal(t, 1, parent.GetChildCount())
	assert.Same(t, child.NodeInstance(), parent.GetChild(0))
	assert.Same(t, parent.NodeInstance(), child.GetParent())
	assert.Same(t, child.NodeInstance(), parent.GetNode("child"))
	assert.True(t, parent.IsAncestorOf(child.NodeInstance()))
}

func TestSignalsThroughAdapter(t *testing.T) {
	b := adapter.NewButton(engine.NewButton("ok"))
	b.SetToggleMode(true)

	var pressed int
	var toggled []bool
	b.Connect(engine.SignalPressed, func(...any) { pressed++ })
	id := b.Connect(engine.SignalToggled, func(args ...any) { toggled = append(toggled, args[0].(bool)) })

	b.Press()
	b.Press()
	assert.Equal(t, 2, pressed)
	assert.Equal(t, []bool{true, false}, toggled)

	assert.True(t, b.IsConnected(engine.SignalToggled, id))
	assert.True(t, b.Disconnect(engine.SignalToggled, id))
	b.SetDisabled(true)
	b.Press()
	assert.Equal(t, 2, pressed)
}

func TestTimerAdapterInTree(t *testing.T) {
	tree := engine.NewSceneTree()
	timer := adapter.NewTimer(engine.NewTimer("t"))
	timer.SetOneShot(true)
	tree.Root().AddChild(timer.NodeInstance())

	fired := 0
	timer.Connect(engine.SignalTimeout, func(...any) { fired++ })
	timer.Start(0.5)
	assert.False(t, timer.IsStopped())

	tree.Process(0.25)
	assert.InDelta(t, 0.25, timer.TimeLeft(), 1e-9)
	tree.Process(0.25)
	assert.Equal(t, 1, fired)
	assert.True(t, timer.IsStopped())
	assert.Same(t, tree, timer.GetTree())
}

// --- Adapt ---

func TestAdaptPicksMostDerived(t *testing.T) {
	tests := []struct {
		inst engine.Instance
		want nodekit.Node
	}{
		{engine.NewNode("n"), &adapter.Node{}},
		{engine.NewNode2D("n"), &adapter.Node2D{}},
		{engine.NewSprite2D("n"), &adapter.Sprite2D{}},
		{engine.NewAnimatedSprite2D("n"), &adapter.AnimatedSprite2D{}},
		{engine.NewPolygon2D("n"), &adapter.Polygon2D{}},
		{engine.NewCamera2D("n"), &adapter.Camera2D{}},
		{engine.NewCPUParticles2D("n"), &adapter.CPUParticles2D{}},
		{engine.NewPointLight2D("n"), &adapter.PointLight2D{}},
		{engine.NewControl("n"), &adapter.Control{}},
		{engine.NewLabel("n"), &adapter.Label{}},
		{engine.NewButton("n"), &adapter.Button{}},
		{engine.NewTimer("n"), &adapter.Timer{}},
		{engine.NewAnimationPlayer("n"), &adapter.AnimationPlayer{}},
	}
	for _, tt := range tests {
		t.Run(tt.inst.GetClass(), func(t *testing.T) {
			got, err := adapter.Adapt(tt.inst)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
			assert.Equal(t, tt.inst.GetClass(), got.GetClass())
		})
	}
}

func TestAdaptTypeAssertToCapability(t *testing.T) {
	n, err := adapter.Adapt(engine.NewPointLight2D("lamp"))
	require.NoError(t, err)

	light, ok := n.(nodekit.Light2D)
	require.True(t, ok)
	light.SetEnergy(2)
	assert.InDelta(t, 2, light.Energy(), 1e-9)

	_, ok = n.(nodekit.Control)
	assert.False(t, ok)
}

func TestAdaptRejectsNonNode(t *testing.T) {
	_, err := adapter.Adapt(engine.NewObject())
	assert.ErrorIs(t, err, adapter.ErrInvalidArgument)

	_, err = adapter.Adapt(nil)
	assert.ErrorIs(t, err, adapter.ErrInvalidArgument)
}

func TestAdaptEveryInstantiableClass(t *testing.T) {
	for _, class := range engine.Classes() {
		if class == engine.ClassObject || engine.IsAbstract(class) {
			continue
		}
		inst, err := engine.Instantiate(class, "n")
		require.NoError(t, err, class)
		got, err := adapter.Adapt(inst)
		require.NoError(t, err, class)
		assert.Equal(t, class, got.GetClass())
	}
}
