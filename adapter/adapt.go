package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

// Adapt wraps inst in the adapter of its most-derived class. The result can
// be type-asserted to the derived capability interface:
//
//	n, err := adapter.Adapt(inst)
//	if s, ok := n.(nodekit.Sprite2D); ok { ... }
//
// Instances that are not nodes yield a *TypeMismatchError.
func Adapt(inst engine.Instance) (nodekit.Node, error) {
	if _, err := narrow[engine.NodeInstance](inst, engine.ClassNode); err != nil {
		return nil, err
	}
	switch n := mostDerived(inst).(type) {
	case *engine.Sprite2D:
		return NewSprite2D(n), nil
	case *engine.AnimatedSprite2D:
		return NewAnimatedSprite2D(n), nil
	case *engine.Polygon2D:
		return NewPolygon2D(n), nil
	case *engine.Camera2D:
		return NewCamera2D(n), nil
	case *engine.CPUParticles2D:
		return NewCPUParticles2D(n), nil
	case *engine.PointLight2D:
		return NewPointLight2D(n), nil
	case *engine.Light2D:
		return NewLight2D(n), nil
	case *engine.Node2D:
		return NewNode2D(n), nil
	case *engine.Label:
		return NewLabel(n), nil
	case *engine.Button:
		return NewButton(n), nil
	case *engine.BaseButton:
		return NewBaseButton(n), nil
	case *engine.Control:
		return NewControl(n), nil
	case *engine.CanvasItem:
		return NewCanvasItem(n), nil
	case *engine.Timer:
		return NewTimer(n), nil
	case *engine.AnimationPlayer:
		return NewAnimationPlayer(n), nil
	case *engine.Node:
		return NewNode(n), nil
	default:
		return NewNode(mostDerived(inst).(engine.NodeInstance).AsNode()), nil
	}
}
