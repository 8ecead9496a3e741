package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var (
	_ nodekit.Object = (*Object)(nil)
	_ nodekit.Node   = (*Node)(nil)
)

// Object forwards nodekit.Object to an *engine.Object.
type Object struct {
	obj *engine.Object
}

// NewObject wraps o without checking it.
func NewObject(o *engine.Object) *Object {
	return &Object{obj: o}
}

// AdaptObject wraps any engine instance.
func AdaptObject(inst engine.Instance) (*Object, error) {
	c, err := narrow[interface{ AsObject() *engine.Object }](inst, engine.ClassObject)
	if err != nil {
		return nil, err
	}
	return NewObject(c.AsObject()), nil
}

func (a *Object) Instance() engine.Instance      { return a.obj.Self() }
func (a *Object) GetClass() string               { return a.obj.GetClass() }
func (a *Object) IsClass(class string) bool      { return a.obj.IsClass(class) }
func (a *Object) InstanceID() uint64             { return a.obj.InstanceID() }
func (a *Object) SetMeta(name string, value any) { a.obj.SetMeta(name, value) }
func (a *Object) GetMeta(name string) any        { return a.obj.GetMeta(name) }
func (a *Object) HasMeta(name string) bool       { return a.obj.HasMeta(name) }
func (a *Object) RemoveMeta(name string)         { a.obj.RemoveMeta(name) }
func (a *Object) GetMetaList() []string          { return a.obj.GetMetaList() }

// Node forwards nodekit.Node to an *engine.Node.
type Node struct {
	*Object
	node *engine.Node
}

// NewNode wraps n without checking it.
func NewNode(n *engine.Node) *Node {
	return &Node{Object: NewObject(&n.Object), node: n}
}

// AdaptNode wraps inst if it is a Node or a subclass of Node.
func AdaptNode(inst engine.Instance) (*Node, error) {
	c, err := narrow[interface{ AsNode() *engine.Node }](inst, engine.ClassNode)
	if err != nil {
		return nil, err
	}
	return NewNode(c.AsNode()), nil
}

// NodeInstance returns the wrapped node as its most-derived class.
func (a *Node) NodeInstance() engine.NodeInstance {
	return a.node.Self().(engine.NodeInstance)
}

func (a *Node) Name() string        { return a.node.Name() }
func (a *Node) SetName(name string) { a.node.SetName(name) }

func (a *Node) AddChild(child engine.NodeInstance)    { a.node.AddChild(child) }
func (a *Node) RemoveChild(child engine.NodeInstance) { a.node.RemoveChild(child) }
func (a *Node) MoveChild(child engine.NodeInstance, toIndex int) {
	a.node.MoveChild(child, toIndex)
}
func (a *Node) GetParent() engine.NodeInstance               { return a.node.GetParent() }
func (a *Node) GetChildCount() int                           { return a.node.GetChildCount() }
func (a *Node) GetChild(index int) engine.NodeInstance       { return a.node.GetChild(index) }
func (a *Node) GetChildren() []engine.NodeInstance           { return a.node.GetChildren() }
func (a *Node) GetIndex() int                                { return a.node.GetIndex() }
func (a *Node) GetNode(path string) engine.NodeInstance      { return a.node.GetNode(path) }
func (a *Node) FindChild(pattern string) engine.NodeInstance { return a.node.FindChild(pattern) }
func (a *Node) GetPath() string                              { return a.node.GetPath() }
func (a *Node) IsAncestorOf(node engine.NodeInstance) bool   { return a.node.IsAncestorOf(node) }
func (a *Node) IsInsideTree() bool                           { return a.node.IsInsideTree() }
func (a *Node) GetTree() *engine.SceneTree                   { return a.node.GetTree() }

func (a *Node) AddToGroup(group string)      { a.node.AddToGroup(group) }
func (a *Node) RemoveFromGroup(group string) { a.node.RemoveFromGroup(group) }
func (a *Node) IsInGroup(group string) bool  { return a.node.IsInGroup(group) }
func (a *Node) GetGroups() []string          { return a.node.GetGroups() }

func (a *Node) ProcessMode() engine.ProcessMode        { return a.node.ProcessMode() }
func (a *Node) SetProcessMode(mode engine.ProcessMode) { a.node.SetProcessMode(mode) }
func (a *Node) CanProcess() bool                       { return a.node.CanProcess() }

func (a *Node) SetCallbacks(cb engine.NodeCallbacks) { a.node.SetCallbacks(cb) }
func (a *Node) Callbacks() engine.NodeCallbacks      { return a.node.Callbacks() }
func (a *Node) EnterTree()                           { a.node.EnterTree() }
func (a *Node) Ready()                               { a.node.Ready() }
func (a *Node) Process(delta float64)                { a.node.Process(delta) }
func (a *Node) PhysicsProcess(delta float64)         { a.node.PhysicsProcess(delta) }
func (a *Node) ExitTree()                            { a.node.ExitTree() }

func (a *Node) Connect(signal string, fn engine.SignalFunc) int {
	return a.node.Connect(signal, fn)
}
func (a *Node) Disconnect(signal string, id int) bool  { return a.node.Disconnect(signal, id) }
func (a *Node) IsConnected(signal string, id int) bool { return a.node.IsConnected(signal, id) }
func (a *Node) EmitSignal(signal string, args ...any)  { a.node.EmitSignal(signal, args...) }

func (a *Node) QueueFree()                { a.node.QueueFree() }
func (a *Node) IsQueuedForDeletion() bool { return a.node.IsQueuedForDeletion() }
func (a *Node) Free()                     { a.node.Free() }
func (a *Node) IsFreed() bool             { return a.node.IsFreed() }
