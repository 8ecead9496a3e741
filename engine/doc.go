// Package engine is a compact retained-mode 2D scene engine for [Ebitengine],
// organized as a single-inheritance class hierarchy of scene nodes.
//
// # Classes
//
// Every class is a struct that embeds its base class by value:
//
//	Object
//	└── Node
//	    ├── CanvasItem
//	    │   ├── Node2D
//	    │   │   ├── Sprite2D, AnimatedSprite2D, Polygon2D
//	    │   │   ├── Camera2D, CPUParticles2D
//	    │   │   └── Light2D
//	    │   │       └── PointLight2D
//	    │   └── Control
//	    │       ├── Label
//	    │       └── BaseButton
//	    │           └── Button
//	    ├── Timer
//	    └── AnimationPlayer
//
// A value of a derived class exposes every base method through promotion. The
// generic reference to a node is [NodeInstance]; its runtime class is reported
// by GetClass, and the casting accessors (AsNode, AsNode2D, AsSprite2D, ...)
// recover the embedded part of each class it is an instance of:
//
//	inst, _ := engine.Instantiate(engine.ClassSprite2D, "hero")
//	if s, ok := inst.(interface{ AsNode2D() *engine.Node2D }); ok {
//		s.AsNode2D().SetPosition(engine.Vec2{X: 100, Y: 50})
//	}
//
// # Scene tree
//
// Nodes form a tree rooted at [SceneTree.Root]. Adding a subtree to a node
// inside the tree calls EnterTree top-down and Ready bottom-up (once per
// node); removing it calls ExitTree bottom-up. [SceneTree.Process] runs
// PhysicsProcess and Process on every node whose [ProcessMode] allows it, then
// flushes QueueFree deletions. [SceneTree.Draw] renders CanvasItems through the
// current [Camera2D].
//
//	tree := engine.NewSceneTree()
//	tree.Root().AddChild(engine.NewSprite2D("hero"))
//	engine.Run(tree, engine.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Signals
//
// Nodes emit named signals ("ready", "timeout", "pressed", ...). Callbacks are
// registered with Connect. A tree with an [EventSink] also receives every
// signal as a [SignalEvent], which is how the ecs package bridges signals into
// a Donburi world.
//
// The engine is single-threaded: nodes and trees must only be touched from the
// goroutine driving the tree.
//
// [Ebitengine]: https://ebitengine.org
package engine
