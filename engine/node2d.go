package engine

import "math"

// Node2D is a CanvasItem positioned by a 2D transform.
type Node2D struct {
	CanvasItem

	position Vec2
	rotation float64
	scale    Vec2
	skew     float64
}

// NewNode2D creates a Node2D at the origin with unit scale.
func NewNode2D(name string) *Node2D {
	n := &Node2D{}
	n.initNode2D(n, ClassNode2D, name)
	return n
}

func (n *Node2D) initNode2D(self NodeInstance, class, name string) {
	n.initCanvasItem(self, class, name)
	n.scale = Vec2{1, 1}
}

// AsNode2D returns n.
func (n *Node2D) AsNode2D() *Node2D { return n }

func (n *Node2D) localTransform() Transform2D {
	return composeTransform(n.position, n.rotation, n.scale, n.skew)
}

// Position returns the local position.
func (n *Node2D) Position() Vec2 {
	return n.position
}

// SetPosition sets the local position.
func (n *Node2D) SetPosition(p Vec2) {
	n.position = p
}

// Rotation returns the local rotation in radians.
func (n *Node2D) Rotation() float64 {
	return n.rotation
}

// SetRotation sets the local rotation in radians.
func (n *Node2D) SetRotation(r float64) {
	n.rotation = r
}

// RotationDegrees returns the local rotation in degrees.
func (n *Node2D) RotationDegrees() float64 {
	return n.rotation * 180 / math.Pi
}

// SetRotationDegrees sets the local rotation in degrees.
func (n *Node2D) SetRotationDegrees(deg float64) {
	n.rotation = deg * math.Pi / 180
}

// Scale returns the local scale.
func (n *Node2D) Scale() Vec2 {
	return n.scale
}

// SetScale sets the local scale.
func (n *Node2D) SetScale(s Vec2) {
	n.scale = s
}

// Skew returns the horizontal skew in radians.
func (n *Node2D) Skew() float64 {
	return n.skew
}

// SetSkew sets the horizontal skew in radians.
func (n *Node2D) SetSkew(s float64) {
	n.skew = s
}

// Transform returns the local transform matrix.
func (n *Node2D) Transform() Transform2D {
	return n.localTransform()
}

// GlobalPosition returns the position in the space of the outermost CanvasItem ancestor.
func (n *Node2D) GlobalPosition() Vec2 {
	return n.GetGlobalTransform().Origin()
}

// SetGlobalPosition moves the node so its global position equals p.
func (n *Node2D) SetGlobalPosition(p Vec2) {
	n.position = parentGlobalTransform(&n.Node).Inverse().Xform(p)
}

// GlobalRotation returns the accumulated rotation in radians.
func (n *Node2D) GlobalRotation() float64 {
	return n.GetGlobalTransform().Rotation()
}

// Translate offsets the local position.
func (n *Node2D) Translate(offset Vec2) {
	n.position = n.position.Add(offset)
}

// Rotate adds radians to the local rotation.
func (n *Node2D) Rotate(radians float64) {
	n.rotation += radians
}

// ToGlobal converts a point from this node's local space to global space.
func (n *Node2D) ToGlobal(local Vec2) Vec2 {
	return n.GetGlobalTransform().Xform(local)
}

// ToLocal converts a point from global space to this node's local space.
func (n *Node2D) ToLocal(global Vec2) Vec2 {
	return n.GetGlobalTransform().Inverse().Xform(global)
}

// LookAt rotates the node so its +X axis points at the global point.
func (n *Node2D) LookAt(point Vec2) {
	dir := point.Sub(n.GlobalPosition())
	parentRot := parentGlobalTransform(&n.Node).Rotation()
	n.rotation = dir.Angle() - parentRot
}
