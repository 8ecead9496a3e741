// Package scenefile loads scene descriptions written in YAML or JSON and
// builds them into engine node trees.
//
// A scene file has an optional window section, used when the scene is run,
// and a root node description:
//
//	window:
//	  title: demo
//	  width: 640
//	  height: 360
//	root:
//	  class: Node2D
//	  name: world
//	  children:
//	    - class: Sprite2D
//	      name: hero
//	      position: {x: 32, y: 48}
//	    - class: Timer
//	      name: spawn
//	      wait_time: 2
//	      autostart: true
//
// Properties are applied through the nodekit capability interfaces, so a
// property is accepted exactly when the node's class has it. Unknown classes
// and inapplicable properties are reported with the path of the offending
// node.
package scenefile
