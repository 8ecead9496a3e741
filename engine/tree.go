package engine

import (
	"image"
	"slices"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink receives every signal emitted by a node inside a tree that has a
// sink. It is the hook for ECS integration.
type EventSink interface {
	EmitEvent(event SignalEvent)
}

// SignalEvent describes one emitted signal.
type SignalEvent struct {
	Signal     string
	InstanceID uint64
	Class      string
	Name       string
	Path       string
	Args       []any
}

// internalProcessor is implemented by classes with built-in per-frame
// behavior (timers, animation, particles, cameras).
type internalProcessor interface {
	internalProcess(delta float64)
}

// SceneTree owns the root node and drives processing, deletion, and drawing.
type SceneTree struct {
	root   *Node
	sink   EventSink
	paused bool
	debug  bool
	frames uint64

	currentCamera *Camera2D
	focusOwner    *Control
	deleteQueue   []NodeInstance

	// ClearColor fills the screen before Draw renders the tree. The zero
	// value leaves the screen untouched.
	ClearColor Color
}

// NewSceneTree creates a tree with a root node named "root". The root is
// inside the tree and ready.
func NewSceneTree() *SceneTree {
	t := &SceneTree{root: NewNode("root"), debug: globalDebug}
	t.root.propagateEnterTree(t)
	t.root.propagateReady()
	return t
}

// Root returns the root node.
func (t *SceneTree) Root() *Node {
	return t.root
}

// Paused reports whether pausable nodes are suspended.
func (t *SceneTree) Paused() bool {
	return t.paused
}

// SetPaused suspends or resumes pausable nodes.
func (t *SceneTree) SetPaused(paused bool) {
	t.paused = paused
}

// FrameCount returns the number of completed Process calls.
func (t *SceneTree) FrameCount() uint64 {
	return t.frames
}

// CurrentCamera returns the camera the tree is viewed through, or nil.
func (t *SceneTree) CurrentCamera() *Camera2D {
	return t.currentCamera
}

// FocusOwner returns the control that owns focus, or nil.
func (t *SceneTree) FocusOwner() *Control {
	return t.focusOwner
}

// SetEventSink forwards every signal emitted inside the tree to sink. nil
// disables forwarding.
func (t *SceneTree) SetEventSink(sink EventSink) {
	t.sink = sink
}

// SetDebugMode enables or disables debug checks. When enabled, operations on
// freed nodes panic, and deep trees or wide child lists log warnings.
func (t *SceneTree) SetDebugMode(enabled bool) {
	t.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug checks are enabled for this tree.
func (t *SceneTree) DebugMode() bool {
	return t.debug
}

// Process advances the tree by delta seconds. Every node that can process
// receives PhysicsProcess, then Process, then its built-in behavior, in tree
// order. Nodes added during the frame are processed from the next frame on.
// Deletions queued with QueueFree run at the end.
func (t *SceneTree) Process(delta float64) {
	nodes := t.snapshot()
	for _, n := range nodes {
		if nn := n.AsNode(); !nn.freed && nn.CanProcess() {
			nn.PhysicsProcess(delta)
		}
	}
	for _, n := range nodes {
		nn := n.AsNode()
		if nn.freed || !nn.CanProcess() {
			continue
		}
		nn.Process(delta)
		if ip, ok := n.(internalProcessor); ok {
			ip.internalProcess(delta)
		}
	}
	t.flushDeletes()
	t.frames++
}

// snapshot returns every node in the tree in pre-order.
func (t *SceneTree) snapshot() []NodeInstance {
	var out []NodeInstance
	var walk func(n NodeInstance)
	walk = func(n NodeInstance) {
		out = append(out, n)
		for _, c := range n.AsNode().children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

func (t *SceneTree) queueDelete(n NodeInstance) {
	t.deleteQueue = append(t.deleteQueue, n)
}

func (t *SceneTree) flushDeletes() {
	for len(t.deleteQueue) > 0 {
		q := t.deleteQueue
		t.deleteQueue = nil
		for _, n := range q {
			nn := n.AsNode()
			if t.debug {
				logger.Debug("freeing queued node", "node", nn.name, "class", nn.class)
			}
			nn.Free()
		}
	}
}

// GetNodesInGroup returns the tree's nodes in group, in tree order.
func (t *SceneTree) GetNodesInGroup(group string) []NodeInstance {
	var out []NodeInstance
	for _, n := range t.snapshot() {
		if slices.Contains(n.AsNode().groups, group) {
			out = append(out, n)
		}
	}
	return out
}

// CallGroup calls fn for every node in group, in tree order.
func (t *SceneTree) CallGroup(group string, fn func(n NodeInstance)) {
	for _, n := range t.GetNodesInGroup(group) {
		fn(n)
	}
}

// Draw renders every visible CanvasItem through the current camera. Items are
// ordered by ZIndex, ties keep tree order.
func (t *SceneTree) Draw(screen *ebiten.Image) {
	if t.ClearColor != (Color{}) {
		screen.Fill(t.ClearColor.RGBA())
	}

	target := screen
	view := IdentityTransform
	if cam := t.currentCamera; cam != nil {
		vp := cam.viewport
		target = screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)
		view = cam.viewTransform()
	}

	items := t.drawList()
	for _, d := range items {
		d.draw(target, view)
	}
}

// drawList collects visible drawers sorted by ZIndex. Hidden items hide their
// whole subtree.
func (t *SceneTree) drawList() []drawer {
	type entry struct {
		d drawer
		z int
	}
	var entries []entry
	var walk func(n NodeInstance)
	walk = func(n NodeInstance) {
		if ci, ok := n.(canvasItemer); ok && !ci.AsCanvasItem().visible {
			return
		}
		if d, ok := n.(drawer); ok {
			entries = append(entries, entry{d: d, z: n.(canvasItemer).AsCanvasItem().zIndex})
		}
		for _, c := range n.AsNode().children {
			walk(c)
		}
	}
	walk(t.root)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].z < entries[j].z })
	out := make([]drawer, len(entries))
	for i, e := range entries {
		out[i] = e.d
	}
	return out
}
