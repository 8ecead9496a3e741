package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Node2D = (*Node2D)(nil)

// Node2D forwards nodekit.Node2D to an *engine.Node2D.
type Node2D struct {
	*CanvasItem
	n2d *engine.Node2D
}

// NewNode2D wraps n without checking it.
func NewNode2D(n *engine.Node2D) *Node2D {
	return &Node2D{CanvasItem: NewCanvasItem(&n.CanvasItem), n2d: n}
}

// AdaptNode2D wraps inst if it is a Node2D or a subclass.
func AdaptNode2D(inst engine.Instance) (*Node2D, error) {
	c, err := narrow[interface{ AsNode2D() *engine.Node2D }](inst, engine.ClassNode2D)
	if err != nil {
		return nil, err
	}
	return NewNode2D(c.AsNode2D()), nil
}

func (a *Node2D) Position() engine.Vec2                  { return a.n2d.Position() }
func (a *Node2D) SetPosition(p engine.Vec2)              { a.n2d.SetPosition(p) }
func (a *Node2D) Rotation() float64                      { return a.n2d.Rotation() }
func (a *Node2D) SetRotation(r float64)                  { a.n2d.SetRotation(r) }
func (a *Node2D) RotationDegrees() float64               { return a.n2d.RotationDegrees() }
func (a *Node2D) SetRotationDegrees(deg float64)         { a.n2d.SetRotationDegrees(deg) }
func (a *Node2D) Scale() engine.Vec2                     { return a.n2d.Scale() }
func (a *Node2D) SetScale(s engine.Vec2)                 { a.n2d.SetScale(s) }
func (a *Node2D) Skew() float64                          { return a.n2d.Skew() }
func (a *Node2D) SetSkew(s float64)                      { a.n2d.SetSkew(s) }
func (a *Node2D) Transform() engine.Transform2D          { return a.n2d.Transform() }
func (a *Node2D) GlobalPosition() engine.Vec2            { return a.n2d.GlobalPosition() }
func (a *Node2D) SetGlobalPosition(p engine.Vec2)        { a.n2d.SetGlobalPosition(p) }
func (a *Node2D) GlobalRotation() float64                { return a.n2d.GlobalRotation() }
func (a *Node2D) Translate(offset engine.Vec2)           { a.n2d.Translate(offset) }
func (a *Node2D) Rotate(radians float64)                 { a.n2d.Rotate(radians) }
func (a *Node2D) ToGlobal(local engine.Vec2) engine.Vec2 { return a.n2d.ToGlobal(local) }
func (a *Node2D) ToLocal(global engine.Vec2) engine.Vec2 { return a.n2d.ToLocal(global) }
func (a *Node2D) LookAt(point engine.Vec2)               { a.n2d.LookAt(point) }
