package nodekit

import "github.com/phanxgames/nodekit/engine"

// Object is the capability set of engine.Object.
type Object interface {
	// Instance returns the wrapped engine object.
	Instance() engine.Instance

	GetClass() string
	IsClass(class string) bool
	InstanceID() uint64

	SetMeta(name string, value any)
	GetMeta(name string) any
	HasMeta(name string) bool
	RemoveMeta(name string)
	GetMetaList() []string
}

// Node is the capability set of engine.Node.
type Node interface {
	Object

	// NodeInstance returns the wrapped engine node.
	NodeInstance() engine.NodeInstance

	Name() string
	SetName(name string)

	AddChild(child engine.NodeInstance)
	RemoveChild(child engine.NodeInstance)
	MoveChild(child engine.NodeInstance, toIndex int)
	GetParent() engine.NodeInstance
	GetChildCount() int
	GetChild(index int) engine.NodeInstance
	GetChildren() []engine.NodeInstance
	GetIndex() int
	GetNode(path string) engine.NodeInstance
	FindChild(pattern string) engine.NodeInstance
	GetPath() string
	IsAncestorOf(node engine.NodeInstance) bool
	IsInsideTree() bool
	GetTree() *engine.SceneTree

	AddToGroup(group string)
	RemoveFromGroup(group string)
	IsInGroup(group string) bool
	GetGroups() []string

	ProcessMode() engine.ProcessMode
	SetProcessMode(mode engine.ProcessMode)
	CanProcess() bool

	SetCallbacks(cb engine.NodeCallbacks)
	Callbacks() engine.NodeCallbacks
	EnterTree()
	Ready()
	Process(delta float64)
	PhysicsProcess(delta float64)
	ExitTree()

	Connect(signal string, fn engine.SignalFunc) int
	Disconnect(signal string, id int) bool
	IsConnected(signal string, id int) bool
	EmitSignal(signal string, args ...any)

	QueueFree()
	IsQueuedForDeletion() bool
	Free()
	IsFreed() bool
}

// Timer is the capability set of engine.Timer.
type Timer interface {
	Node

	WaitTime() float64
	SetWaitTime(sec float64)
	OneShot() bool
	SetOneShot(oneShot bool)
	Autostart() bool
	SetAutostart(autostart bool)
	Paused() bool
	SetPaused(paused bool)
	Start(sec float64)
	Stop()
	IsStopped() bool
	TimeLeft() float64
}

// AnimationPlayer is the capability set of engine.AnimationPlayer.
type AnimationPlayer interface {
	Node

	AddAnimation(name string, anim *engine.Animation)
	RemoveAnimation(name string)
	HasAnimation(name string) bool
	GetAnimation(name string) *engine.Animation
	GetAnimationList() []string
	Play(name string)
	Pause()
	Stop()
	IsPlaying() bool
	CurrentAnimation() string
	CurrentAnimationPosition() float64
	Seek(sec float64)
	SpeedScale() float64
	SetSpeedScale(scale float64)
}
