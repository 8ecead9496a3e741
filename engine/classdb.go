package engine

import (
	"errors"
	"fmt"
)

// Class names.
const (
	ClassObject           = "Object"
	ClassNode             = "Node"
	ClassCanvasItem       = "CanvasItem"
	ClassNode2D           = "Node2D"
	ClassSprite2D         = "Sprite2D"
	ClassAnimatedSprite2D = "AnimatedSprite2D"
	ClassPolygon2D        = "Polygon2D"
	ClassCamera2D         = "Camera2D"
	ClassCPUParticles2D   = "CPUParticles2D"
	ClassLight2D          = "Light2D"
	ClassPointLight2D     = "PointLight2D"
	ClassControl          = "Control"
	ClassLabel            = "Label"
	ClassBaseButton       = "BaseButton"
	ClassButton           = "Button"
	ClassTimer            = "Timer"
	ClassAnimationPlayer  = "AnimationPlayer"
)

// ErrUnknownClass is returned by Instantiate for names not in the class database.
var ErrUnknownClass = errors.New("engine: unknown class")

// classInfo describes one entry of the class database.
type classInfo struct {
	name   string
	parent string
}

// classTable lists every class in declaration order (parents before children).
var classTable = []classInfo{
	{name: ClassObject},
	{name: ClassNode, parent: ClassObject},
	{name: ClassCanvasItem, parent: ClassNode},
	{name: ClassNode2D, parent: ClassCanvasItem},
	{name: ClassSprite2D, parent: ClassNode2D},
	{name: ClassAnimatedSprite2D, parent: ClassNode2D},
	{name: ClassPolygon2D, parent: ClassNode2D},
	{name: ClassCamera2D, parent: ClassNode2D},
	{name: ClassCPUParticles2D, parent: ClassNode2D},
	{name: ClassLight2D, parent: ClassNode2D},
	{name: ClassPointLight2D, parent: ClassLight2D},
	{name: ClassControl, parent: ClassCanvasItem},
	{name: ClassLabel, parent: ClassControl},
	{name: ClassBaseButton, parent: ClassControl},
	{name: ClassButton, parent: ClassBaseButton},
	{name: ClassTimer, parent: ClassNode},
	{name: ClassAnimationPlayer, parent: ClassNode},
}

var (
	classIndex  map[string]int
	classCreate map[string]func(name string) NodeInstance
)

// The constructor table is filled in init so constructors may use the class
// database without forming an initialization cycle.
func init() {
	classIndex = make(map[string]int, len(classTable))
	for i, c := range classTable {
		classIndex[c.name] = i
	}
	classCreate = map[string]func(name string) NodeInstance{
		ClassNode:             func(n string) NodeInstance { return NewNode(n) },
		ClassNode2D:           func(n string) NodeInstance { return NewNode2D(n) },
		ClassSprite2D:         func(n string) NodeInstance { return NewSprite2D(n) },
		ClassAnimatedSprite2D: func(n string) NodeInstance { return NewAnimatedSprite2D(n) },
		ClassPolygon2D:        func(n string) NodeInstance { return NewPolygon2D(n) },
		ClassCamera2D:         func(n string) NodeInstance { return NewCamera2D(n) },
		ClassCPUParticles2D:   func(n string) NodeInstance { return NewCPUParticles2D(n) },
		ClassPointLight2D:     func(n string) NodeInstance { return NewPointLight2D(n) },
		ClassControl:          func(n string) NodeInstance { return NewControl(n) },
		ClassLabel:            func(n string) NodeInstance { return NewLabel(n) },
		ClassButton:           func(n string) NodeInstance { return NewButton(n) },
		ClassTimer:            func(n string) NodeInstance { return NewTimer(n) },
		ClassAnimationPlayer:  func(n string) NodeInstance { return NewAnimationPlayer(n) },
	}
}

// Classes returns every class name, parents before children.
func Classes() []string {
	out := make([]string, len(classTable))
	for i, c := range classTable {
		out[i] = c.name
	}
	return out
}

// ClassExists reports whether class is a known class name.
func ClassExists(class string) bool {
	_, ok := classIndex[class]
	return ok
}

// ParentClass returns the direct base class of class. It returns "" for
// Object and for unknown names.
func ParentClass(class string) string {
	i, ok := classIndex[class]
	if !ok {
		return ""
	}
	return classTable[i].parent
}

// IsAbstract reports whether class cannot be instantiated on its own.
// Object counts as abstract since Instantiate only creates nodes.
func IsAbstract(class string) bool {
	if !ClassExists(class) {
		return false
	}
	_, ok := classCreate[class]
	return !ok
}

// Inherits reports whether class is base or a descendant of base.
func Inherits(class, base string) bool {
	for c := class; c != ""; c = ParentClass(c) {
		if c == base {
			return true
		}
	}
	return false
}

// Instantiate creates a node of the named class.
func Instantiate(class, name string) (NodeInstance, error) {
	if !ClassExists(class) {
		return nil, fmt.Errorf("%w %q", ErrUnknownClass, class)
	}
	create, ok := classCreate[class]
	if !ok {
		return nil, fmt.Errorf("engine: class %q is abstract", class)
	}
	return create(name), nil
}
