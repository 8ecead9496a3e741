package engine

import (
	"path"
	"slices"
	"strings"
)

// NodeInstance is the generic reference to any node class.
type NodeInstance interface {
	Instance
	AsNode() *Node
}

// NodeCallbacks holds per-node lifecycle hooks (nil by default; zero cost when
// unused). They are invoked by the virtual entry points EnterTree, Ready,
// Process, PhysicsProcess, and ExitTree.
type NodeCallbacks struct {
	OnEnterTree      func()
	OnReady          func()
	OnProcess        func(delta float64)
	OnPhysicsProcess func(delta float64)
	OnExitTree       func()
}

// SignalFunc receives the arguments passed to EmitSignal.
type SignalFunc func(args ...any)

// Signals emitted by the built-in classes.
const (
	SignalReady             = "ready"
	SignalTreeEntered       = "tree_entered"
	SignalTreeExiting       = "tree_exiting"
	SignalRenamed           = "renamed"
	SignalVisibilityChanged = "visibility_changed"
	SignalFocusEntered      = "focus_entered"
	SignalFocusExited       = "focus_exited"
	SignalTimeout           = "timeout"
	SignalPressed           = "pressed"
	SignalToggled           = "toggled"
	SignalFrameChanged      = "frame_changed"
	SignalAnimationFinished = "animation_finished"
	SignalFinished          = "finished"
)

// Internal notifications delivered to classes that implement notifier.
const (
	notificationEnterTree = iota
	notificationReady
	notificationExitTree
)

// notifier is implemented by classes that react to tree membership changes.
type notifier interface {
	notification(what int)
}

type connection struct {
	id int
	fn SignalFunc
}

// Node is the base class of everything that lives in a SceneTree.
type Node struct {
	Object

	name     string
	parent   NodeInstance
	children []NodeInstance
	tree     *SceneTree
	groups   []string

	processMode ProcessMode
	callbacks   NodeCallbacks

	signals    map[string][]connection
	nextConnID int

	readied bool
	queued  bool
	freed   bool
}

// NewNode creates a plain node.
func NewNode(name string) *Node {
	n := &Node{}
	n.initNode(n, ClassNode, name)
	return n
}

func (n *Node) initNode(self NodeInstance, class, name string) {
	n.initObject(self, class)
	n.name = name
}

// AsNode returns n.
func (n *Node) AsNode() *Node { return n }

// nodeSelf returns the most-derived value this node is embedded in.
func (n *Node) nodeSelf() NodeInstance {
	return n.Object.self.(NodeInstance)
}

// parentNode returns the embedded *Node of n's parent, or nil.
func parentNode(n *Node) *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.AsNode()
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// SetName renames the node and emits "renamed".
func (n *Node) SetName(name string) {
	if n.name == name {
		return
	}
	n.name = name
	n.EmitSignal(SignalRenamed)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
// When this node is inside a tree, the child subtree enters the tree and
// receives Ready.
func (n *Node) AddChild(child NodeInstance) {
	if child == nil {
		panic("engine: cannot add nil child")
	}
	c := child.AsNode()
	if globalDebug {
		debugCheckFreed(n, "AddChild (parent)")
		debugCheckFreed(c, "AddChild (child)")
	}
	if isAncestor(c, n) {
		panic("engine: adding child would create a cycle")
	}
	if c.parent != nil {
		c.parent.AsNode().RemoveChild(child)
	}
	c.parent = n.nodeSelf()
	n.children = append(n.children, c.nodeSelf())
	if n.tree != nil {
		c.propagateEnterTree(n.tree)
		c.propagateReady()
	}
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. The child is not freed.
// Panics if child's parent is not this node.
func (n *Node) RemoveChild(child NodeInstance) {
	if child == nil {
		panic("engine: cannot remove nil child")
	}
	c := child.AsNode()
	if globalDebug {
		debugCheckFreed(n, "RemoveChild (parent)")
	}
	if parentNode(c) != n {
		panic("engine: child's parent is not this node")
	}
	if c.tree != nil {
		c.propagateExitTree()
	}
	n.removeChildByPtr(c)
	c.parent = nil
}

// MoveChild moves child to a new index among its siblings.
func (n *Node) MoveChild(child NodeInstance, toIndex int) {
	c := child.AsNode()
	if parentNode(c) != n {
		panic("engine: child's parent is not this node")
	}
	nc := len(n.children)
	if toIndex < 0 || toIndex >= nc {
		panic("engine: child index out of range")
	}
	oldIndex := c.GetIndex()
	if oldIndex == toIndex {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < toIndex {
		copy(n.children[oldIndex:], n.children[oldIndex+1:toIndex+1])
	} else {
		copy(n.children[toIndex+1:], n.children[toIndex:oldIndex])
	}
	n.children[toIndex] = c.nodeSelf()
}

// GetParent returns the parent node, or nil.
func (n *Node) GetParent() NodeInstance {
	return n.parent
}

// GetChildCount returns the number of children.
func (n *Node) GetChildCount() int {
	return len(n.children)
}

// GetChild returns the child at index. Negative indices count from the end.
func (n *Node) GetChild(index int) NodeInstance {
	if index < 0 {
		index += len(n.children)
	}
	if index < 0 || index >= len(n.children) {
		panic("engine: child index out of range")
	}
	return n.children[index]
}

// GetChildren returns a copy of the child list.
func (n *Node) GetChildren() []NodeInstance {
	return slices.Clone(n.children)
}

// GetIndex returns this node's position among its siblings, or -1 without a parent.
func (n *Node) GetIndex() int {
	p := parentNode(n)
	if p == nil {
		return -1
	}
	for i, c := range p.children {
		if c.AsNode() == n {
			return i
		}
	}
	return -1
}

// GetNode resolves a slash-separated path relative to this node. "." and ".."
// are supported. Absolute paths ("/root/...") resolve from the tree root and
// require the node to be inside a tree. Returns nil when nothing matches.
func (n *Node) GetNode(p string) NodeInstance {
	if p == "" {
		return nil
	}
	var cur NodeInstance = n.nodeSelf()
	parts := strings.Split(p, "/")
	if strings.HasPrefix(p, "/") {
		if n.tree == nil {
			return nil
		}
		parts = strings.Split(strings.Trim(p, "/"), "/")
		if len(parts) == 0 || parts[0] != n.tree.root.name {
			return nil
		}
		cur = n.tree.root
		parts = parts[1:]
	}
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			cur = cur.AsNode().parent
		default:
			cur = cur.AsNode().childNamed(part)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

func (n *Node) childNamed(name string) NodeInstance {
	for _, c := range n.children {
		if c.AsNode().name == name {
			return c
		}
	}
	return nil
}

// FindChild returns the first descendant (depth-first, pre-order) whose name
// matches pattern. Patterns use path.Match syntax.
func (n *Node) FindChild(pattern string) NodeInstance {
	for _, c := range n.children {
		if ok, _ := path.Match(pattern, c.AsNode().name); ok {
			return c
		}
		if found := c.AsNode().FindChild(pattern); found != nil {
			return found
		}
	}
	return nil
}

// GetPath returns the slash-separated path from the topmost ancestor. Inside
// a tree the path is absolute ("/root/...").
func (n *Node) GetPath() string {
	var parts []string
	top := n
	for p := n; p != nil; p = parentNode(p) {
		parts = append(parts, p.name)
		top = p
	}
	slices.Reverse(parts)
	joined := strings.Join(parts, "/")
	if top.tree != nil && top == top.tree.root {
		return "/" + joined
	}
	return joined
}

// IsAncestorOf reports whether this node is a strict ancestor of node.
func (n *Node) IsAncestorOf(node NodeInstance) bool {
	if node == nil {
		return false
	}
	other := node.AsNode()
	return other != n && isAncestor(n, other)
}

// IsInsideTree reports whether the node is part of a SceneTree.
func (n *Node) IsInsideTree() bool {
	return n.tree != nil
}

// GetTree returns the SceneTree the node is in, or nil.
func (n *Node) GetTree() *SceneTree {
	return n.tree
}

// --- Groups ---

// AddToGroup adds the node to group. Adding twice is a no-op.
func (n *Node) AddToGroup(group string) {
	if !slices.Contains(n.groups, group) {
		n.groups = append(n.groups, group)
	}
}

// RemoveFromGroup removes the node from group.
func (n *Node) RemoveFromGroup(group string) {
	if i := slices.Index(n.groups, group); i >= 0 {
		n.groups = slices.Delete(n.groups, i, i+1)
	}
}

// IsInGroup reports whether the node belongs to group.
func (n *Node) IsInGroup(group string) bool {
	return slices.Contains(n.groups, group)
}

// GetGroups returns a copy of the node's groups in insertion order.
func (n *Node) GetGroups() []string {
	return slices.Clone(n.groups)
}

// --- Processing ---

// ProcessMode returns the node's own process mode.
func (n *Node) ProcessMode() ProcessMode {
	return n.processMode
}

// SetProcessMode sets the node's process mode.
func (n *Node) SetProcessMode(mode ProcessMode) {
	n.processMode = mode
}

// CanProcess reports whether the tree would process this node now, taking
// inherited process modes and the tree's pause state into account.
func (n *Node) CanProcess() bool {
	if n.tree == nil {
		return false
	}
	switch n.effectiveProcessMode() {
	case ProcessModeAlways:
		return true
	case ProcessModeDisabled:
		return false
	case ProcessModeWhenPaused:
		return n.tree.paused
	default:
		return !n.tree.paused
	}
}

func (n *Node) effectiveProcessMode() ProcessMode {
	for p := n; p != nil; p = parentNode(p) {
		if p.processMode != ProcessModeInherit {
			return p.processMode
		}
	}
	return ProcessModePausable
}

// SetCallbacks replaces the node's lifecycle hooks.
func (n *Node) SetCallbacks(cb NodeCallbacks) {
	n.callbacks = cb
}

// Callbacks returns the node's lifecycle hooks.
func (n *Node) Callbacks() NodeCallbacks {
	return n.callbacks
}

// EnterTree is called when the node enters a tree, parents before children.
func (n *Node) EnterTree() {
	if n.callbacks.OnEnterTree != nil {
		n.callbacks.OnEnterTree()
	}
}

// Ready is called once, the first time the node and all its children are
// inside a tree. Children become ready before their parent.
func (n *Node) Ready() {
	if n.callbacks.OnReady != nil {
		n.callbacks.OnReady()
	}
}

// Process is called every frame with the elapsed time in seconds.
func (n *Node) Process(delta float64) {
	if n.callbacks.OnProcess != nil {
		n.callbacks.OnProcess(delta)
	}
}

// PhysicsProcess is called every frame before Process.
func (n *Node) PhysicsProcess(delta float64) {
	if n.callbacks.OnPhysicsProcess != nil {
		n.callbacks.OnPhysicsProcess(delta)
	}
}

// ExitTree is called when the node leaves a tree, children before parents.
func (n *Node) ExitTree() {
	if n.callbacks.OnExitTree != nil {
		n.callbacks.OnExitTree()
	}
}

func (n *Node) notify(what int) {
	if nt, ok := n.Object.self.(notifier); ok {
		nt.notification(what)
	}
}

func (n *Node) propagateEnterTree(tree *SceneTree) {
	n.tree = tree
	n.notify(notificationEnterTree)
	n.EnterTree()
	n.EmitSignal(SignalTreeEntered)
	for _, c := range slices.Clone(n.children) {
		c.AsNode().propagateEnterTree(tree)
	}
}

func (n *Node) propagateReady() {
	for _, c := range slices.Clone(n.children) {
		c.AsNode().propagateReady()
	}
	if n.tree == nil || n.readied {
		return
	}
	n.readied = true
	n.notify(notificationReady)
	n.Ready()
	n.EmitSignal(SignalReady)
}

func (n *Node) propagateExitTree() {
	kids := slices.Clone(n.children)
	for i := len(kids) - 1; i >= 0; i-- {
		kids[i].AsNode().propagateExitTree()
	}
	n.EmitSignal(SignalTreeExiting)
	n.ExitTree()
	n.notify(notificationExitTree)
	n.tree = nil
}

// --- Signals ---

// Connect registers fn for signal and returns a connection id.
func (n *Node) Connect(signal string, fn SignalFunc) int {
	if fn == nil {
		panic("engine: cannot connect nil callback")
	}
	if n.signals == nil {
		n.signals = make(map[string][]connection)
	}
	n.nextConnID++
	n.signals[signal] = append(n.signals[signal], connection{id: n.nextConnID, fn: fn})
	return n.nextConnID
}

// Disconnect removes the connection with id from signal. Returns false when no
// such connection exists.
func (n *Node) Disconnect(signal string, id int) bool {
	conns := n.signals[signal]
	for i, c := range conns {
		if c.id == id {
			n.signals[signal] = slices.Delete(conns, i, i+1)
			return true
		}
	}
	return false
}

// IsConnected reports whether id is connected to signal.
func (n *Node) IsConnected(signal string, id int) bool {
	return slices.ContainsFunc(n.signals[signal], func(c connection) bool { return c.id == id })
}

// EmitSignal calls every callback connected to signal, in connection order,
// then forwards the event to the tree's EventSink if there is one.
func (n *Node) EmitSignal(signal string, args ...any) {
	if conns := n.signals[signal]; len(conns) > 0 {
		for _, c := range slices.Clone(conns) {
			c.fn(args...)
		}
	}
	if n.tree != nil && n.tree.sink != nil {
		n.tree.sink.EmitEvent(SignalEvent{
			Signal:     signal,
			InstanceID: n.id,
			Class:      n.class,
			Name:       n.name,
			Path:       n.GetPath(),
			Args:       args,
		})
	}
}

// --- Deletion ---

// QueueFree schedules the node for deletion at the end of the current tree
// frame. Outside a tree the node is freed immediately.
func (n *Node) QueueFree() {
	if n.queued || n.freed {
		return
	}
	if n.tree == nil {
		n.Free()
		return
	}
	n.queued = true
	n.tree.queueDelete(n.nodeSelf())
}

// IsQueuedForDeletion reports whether QueueFree was called and the node has
// not been freed yet.
func (n *Node) IsQueuedForDeletion() bool {
	return n.queued
}

// Free removes the node from its parent (leaving the tree if needed), marks it
// freed, and recursively frees all descendants.
func (n *Node) Free() {
	if n.freed {
		return
	}
	if p := parentNode(n); p != nil {
		p.RemoveChild(n.nodeSelf())
	} else if n.tree != nil {
		n.propagateExitTree()
	}
	n.free()
}

func (n *Node) free() {
	n.freed = true
	n.queued = false
	for _, c := range n.children {
		cn := c.AsNode()
		cn.parent = nil
		cn.free()
	}
	n.children = nil
	n.parent = nil
	n.signals = nil
	n.callbacks = NodeCallbacks{}
	n.groups = nil
	n.meta = nil
}

// IsFreed reports whether the node has been freed.
func (n *Node) IsFreed() bool {
	return n.freed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = parentNode(p) {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c.AsNode() == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
