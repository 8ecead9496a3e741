// Package nodekit declares capability interfaces mirroring the engine's
// scene-node classes, so application code can depend on abstractions instead
// of concrete engine types.
//
// There is one interface per engine class, named after the class. A derived
// interface embeds its base interface only, so the interfaces form the same
// single-inheritance tree as the classes:
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
// Members have the names and signatures of the engine methods. Node
// references are [engine.NodeInstance]; Node.NodeInstance returns the wrapped
// node so it can be handed back to engine APIs such as AddChild.
//
// Implementations live in the adapter package; gomock doubles for Node,
// Node2D, Timer, and AnimationPlayer live in the mock package.
package nodekit

//go:generate mockgen -destination=mock/mock_nodes.go -package=nodekitmock github.com/phanxgames/nodekit Node,Node2D,Timer,AnimationPlayer
