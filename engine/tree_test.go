package engine

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordLifecycle installs callbacks on n that append "<event>:<name>" to log.
func recordLifecycle(n NodeInstance, log *[]string) {
	name := n.AsNode().Name()
	n.AsNode().SetCallbacks(NodeCallbacks{
		OnEnterTree: func() { *log = append(*log, "enter:"+name) },
		OnReady:     func() { *log = append(*log, "ready:"+name) },
		OnExitTree:  func() { *log = append(*log, "exit:"+name) },
	})
}

func TestNewSceneTreeRoot(t *testing.T) {
	tree := NewSceneTree()
	root := tree.Root()
	assert.Equal(t, "root", root.Name())
	assert.True(t, root.IsInsideTree())
	assert.Same(t, tree, root.GetTree())
	assert.Equal(t, "/root", root.GetPath())
}

func TestLifecycleOrdering(t *testing.T) {
	var log []string
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	a1 := NewNode("a1")
	parent.AddChild(a)
	parent.AddChild(b)
	a.AddChild(a1)
	for _, n := range []NodeInstance{parent, a, b, a1} {
		recordLifecycle(n, &log)
	}

	tree := NewSceneTree()
	tree.Root().AddChild(parent)

	assert.Equal(t, []string{
		"enter:parent", "enter:a", "enter:a1", "enter:b",
		"ready:a1", "ready:a", "ready:b", "ready:parent",
	}, log, "enter/ready order")

	log = nil
	tree.Root().RemoveChild(parent)
	assert.Equal(t, []string{"exit:b", "exit:a1", "exit:a", "exit:parent"}, log, "exit order")
	assert.False(t, parent.IsInsideTree())
	assert.False(t, a1.IsInsideTree())
}

func TestReadyOnlyOnce(t *testing.T) {
	tree := NewSceneTree()
	n := NewNode("n")
	ready := 0
	n.Connect(SignalReady, func(...any) { ready++ })

	tree.Root().AddChild(n)
	tree.Root().RemoveChild(n)
	tree.Root().AddChild(n)
	assert.Equal(t, 1, ready)
}

func TestTreeSignals(t *testing.T) {
	tree := NewSceneTree()
	n := NewNode("n")
	var got []string
	n.Connect(SignalTreeEntered, func(...any) { got = append(got, "entered") })
	n.Connect(SignalTreeExiting, func(...any) { got = append(got, "exiting") })

	tree.Root().AddChild(n)
	n.Free()
	assert.Equal(t, []string{"entered", "exiting"}, got)
}

func TestProcessOrder(t *testing.T) {
	tree := NewSceneTree()
	var log []string
	mk := func(name string) *Node {
		n := NewNode(name)
		n.SetCallbacks(NodeCallbacks{
			OnPhysicsProcess: func(float64) { log = append(log, "physics:"+name) },
			OnProcess:        func(float64) { log = append(log, "process:"+name) },
		})
		return n
	}
	a := mk("a")
	b := mk("b")
	tree.Root().AddChild(a)
	a.AddChild(b)

	tree.Process(1.0 / 60)
	assert.Equal(t, []string{"physics:a", "physics:b", "process:a", "process:b"}, log)
	assert.EqualValues(t, 1, tree.FrameCount())
}

func TestProcessDelta(t *testing.T) {
	tree := NewSceneTree()
	n := NewNode("n")
	var got float64
	n.SetCallbacks(NodeCallbacks{OnProcess: func(d float64) { got = d }})
	tree.Root().AddChild(n)
	tree.Process(0.25)
	assert.Equal(t, 0.25, got)
}

func TestNodeAddedDuringFrameProcessesNextFrame(t *testing.T) {
	tree := NewSceneTree()
	spawner := NewNode("spawner")
	spawned := NewNode("spawned")
	count := 0
	spawned.SetCallbacks(NodeCallbacks{OnProcess: func(float64) { count++ }})
	spawner.SetCallbacks(NodeCallbacks{OnProcess: func(float64) {
		if spawned.GetParent() == nil {
			spawner.AddChild(spawned)
		}
	}})
	tree.Root().AddChild(spawner)

	tree.Process(1)
	assert.Equal(t, 0, count, "spawned node must not process in its first frame")
	tree.Process(1)
	assert.Equal(t, 1, count)
}

func TestProcessModes(t *testing.T) {
	tree := NewSceneTree()
	pausable := NewNode("pausable")
	always := NewNode("always")
	whenPaused := NewNode("when_paused")
	disabled := NewNode("disabled")
	inherits := NewNode("inherits")
	always.SetProcessMode(ProcessModeAlways)
	whenPaused.SetProcessMode(ProcessModeWhenPaused)
	disabled.SetProcessMode(ProcessModeDisabled)
	for _, n := range []*Node{pausable, always, whenPaused, disabled} {
		tree.Root().AddChild(n)
	}
	always.AddChild(inherits)

	check := func(label string, want map[*Node]bool) {
		t.Helper()
		for n, w := range want {
			assert.Equal(t, w, n.CanProcess(), "%s: %s.CanProcess()", label, n.Name())
		}
	}

	check("running", map[*Node]bool{
		pausable: true, always: true, whenPaused: false, disabled: false, inherits: true,
	})
	tree.SetPaused(true)
	check("paused", map[*Node]bool{
		pausable: false, always: true, whenPaused: true, disabled: false, inherits: true,
	})

	assert.False(t, NewNode("detached").CanProcess(), "node outside a tree should not process")
}

func TestPausedTreeSkipsPausable(t *testing.T) {
	tree := NewSceneTree()
	n := NewNode("n")
	count := 0
	n.SetCallbacks(NodeCallbacks{OnProcess: func(float64) { count++ }})
	tree.Root().AddChild(n)

	tree.SetPaused(true)
	tree.Process(1)
	assert.Equal(t, 0, count, "paused tree processed a pausable node")
	tree.SetPaused(false)
	tree.Process(1)
	assert.Equal(t, 1, count)
}

func TestQueueFreeInTree(t *testing.T) {
	tree := NewSceneTree()
	a := NewNode("a")
	b := NewNode("b")
	tree.Root().AddChild(a)
	tree.Root().AddChild(b)

	bProcessed := 0
	b.SetCallbacks(NodeCallbacks{OnProcess: func(float64) { bProcessed++ }})
	a.SetCallbacks(NodeCallbacks{OnProcess: func(float64) { b.QueueFree() }})

	tree.Process(1)
	assert.True(t, b.IsFreed(), "queued node should be freed at the end of the frame")
	assert.Equal(t, 1, bProcessed, "queued node still processes in its last frame")
	assert.Equal(t, 1, tree.Root().GetChildCount())
}

func TestQueueFreeTwiceIsSafe(t *testing.T) {
	tree := NewSceneTree()
	n := NewNode("n")
	tree.Root().AddChild(n)
	n.QueueFree()
	n.QueueFree()
	assert.True(t, n.IsQueuedForDeletion())
	tree.Process(0)
	assert.True(t, n.IsFreed())
}

func TestFreedNodeSkippedInSameFrame(t *testing.T) {
	tree := NewSceneTree()
	a := NewNode("a")
	b := NewNode("b")
	tree.Root().AddChild(a)
	tree.Root().AddChild(b)
	processed := false
	b.SetCallbacks(NodeCallbacks{OnProcess: func(float64) { processed = true }})
	a.SetCallbacks(NodeCallbacks{OnPhysicsProcess: func(float64) { b.Free() }})

	tree.Process(1)
	assert.False(t, processed, "node freed earlier in the frame should not be processed")
}

func TestGroupsInTree(t *testing.T) {
	tree := NewSceneTree()
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	tree.Root().AddChild(a)
	a.AddChild(b)
	tree.Root().AddChild(c)
	a.AddToGroup("enemies")
	c.AddToGroup("enemies")
	NewNode("outside").AddToGroup("enemies")

	assert.Equal(t, []string{"a", "c"}, names(tree.GetNodesInGroup("enemies")))

	var called []string
	tree.CallGroup("enemies", func(n NodeInstance) { called = append(called, n.AsNode().Name()) })
	assert.Equal(t, []string{"a", "c"}, called)
}

type recordingSink struct {
	events []SignalEvent
}

func (s *recordingSink) EmitEvent(e SignalEvent) { s.events = append(s.events, e) }

func TestEventSink(t *testing.T) {
	tree := NewSceneTree()
	sink := &recordingSink{}
	tree.SetEventSink(sink)

	btn := NewButton("ok")
	tree.Root().AddChild(btn)
	sink.events = nil

	btn.Press()
	require.Len(t, sink.events, 1)
	e := sink.events[0]
	assert.Equal(t, SignalPressed, e.Signal)
	assert.Equal(t, ClassButton, e.Class)
	assert.Equal(t, "ok", e.Name)
	assert.Equal(t, "/root/ok", e.Path)
	assert.Equal(t, btn.InstanceID(), e.InstanceID)

	tree.SetEventSink(nil)
	btn.Press()
	assert.Len(t, sink.events, 1, "nil sink should disable forwarding")
}

func TestDebugModeFreedNodePanics(t *testing.T) {
	tree := NewSceneTree()
	tree.SetDebugMode(true)
	defer tree.SetDebugMode(false)

	parent := NewNode("parent")
	child := NewNode("child")
	child.Free()

	assert.Panics(t, func() { parent.AddChild(child) }, "adding a freed node in debug mode")
}

// --- Draw ---

func TestDrawListOrder(t *testing.T) {
	tree := NewSceneTree()
	back := NewSprite2D("back")
	front := NewSprite2D("front")
	mid := NewSprite2D("mid")
	front.SetZIndex(10)
	tree.Root().AddChild(front)
	tree.Root().AddChild(back)
	tree.Root().AddChild(mid)

	var got []string
	for _, d := range tree.drawList() {
		got = append(got, d.(NodeInstance).AsNode().Name())
	}
	assert.Equal(t, []string{"back", "mid", "front"}, got)
}

func TestDrawListHiddenPrunesSubtree(t *testing.T) {
	tree := NewSceneTree()
	parent := NewNode2D("parent")
	child := NewSprite2D("child")
	parent.AddChild(child)
	tree.Root().AddChild(parent)

	require.Len(t, tree.drawList(), 1)
	parent.Hide()
	assert.Empty(t, tree.drawList(), "hidden parent should hide its subtree")
	assert.False(t, child.IsVisibleInTree())
	assert.True(t, child.IsVisible(), "child's own flag should stay true")
}

func TestDrawSmoke(t *testing.T) {
	tree := NewSceneTree()
	tree.ClearColor = Color{0, 0, 0, 1}

	sprite := NewSprite2D("sprite")
	sprite.SetTexture(ebiten.NewImage(8, 8))
	poly := NewPolygon2D("poly")
	poly.SetPolygon([]Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	label := NewLabel("label")
	label.SetText("hello")
	btn := NewButton("btn")
	btn.SetText("ok")
	btn.SetSize(Vec2{60, 20})
	light := NewPointLight2D("light")
	particles := NewCPUParticles2D("particles")
	particles.SetEmitting(true)
	cam := NewCamera2D("cam")
	for _, n := range []NodeInstance{sprite, poly, label, btn, light, particles, cam} {
		tree.Root().AddChild(n)
	}
	tree.Process(0.5)

	screen := ebiten.NewImage(640, 480)
	assert.NotPanics(t, func() { tree.Draw(screen) })
}
