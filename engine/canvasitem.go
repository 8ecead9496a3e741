package engine

import "github.com/hajimehoshi/ebiten/v2"

// canvasItemer is implemented by every class derived from CanvasItem.
type canvasItemer interface {
	AsCanvasItem() *CanvasItem
}

// localTransformer is implemented by the concrete CanvasItem branches
// (Node2D and Control) to supply their local matrix.
type localTransformer interface {
	localTransform() Transform2D
}

// drawer is implemented by classes that render themselves during SceneTree.Draw.
type drawer interface {
	draw(target *ebiten.Image, view Transform2D)
}

// CanvasItem is the abstract base of everything drawn in 2D.
type CanvasItem struct {
	Node

	visible      bool
	modulate     Color
	selfModulate Color
	zIndex       int
	blendMode    BlendMode
}

func (c *CanvasItem) initCanvasItem(self NodeInstance, class, name string) {
	c.initNode(self, class, name)
	c.visible = true
	c.modulate = ColorWhite
	c.selfModulate = ColorWhite
}

// AsCanvasItem returns c.
func (c *CanvasItem) AsCanvasItem() *CanvasItem { return c }

// IsVisible reports the item's own visibility flag.
func (c *CanvasItem) IsVisible() bool {
	return c.visible
}

// SetVisible sets the visibility flag and emits "visibility_changed" on change.
func (c *CanvasItem) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	c.EmitSignal(SignalVisibilityChanged)
}

// Show is SetVisible(true).
func (c *CanvasItem) Show() { c.SetVisible(true) }

// Hide is SetVisible(false).
func (c *CanvasItem) Hide() { c.SetVisible(false) }

// IsVisibleInTree reports whether the item is inside a tree and it and every
// CanvasItem ancestor are visible.
func (c *CanvasItem) IsVisibleInTree() bool {
	if c.tree == nil {
		return false
	}
	for p := &c.Node; p != nil; p = parentNode(p) {
		ci, ok := p.Object.self.(canvasItemer)
		if !ok {
			break
		}
		if !ci.AsCanvasItem().visible {
			return false
		}
	}
	return true
}

// Modulate returns the tint applied to this item and its children.
func (c *CanvasItem) Modulate() Color {
	return c.modulate
}

// SetModulate sets the tint applied to this item and its children.
func (c *CanvasItem) SetModulate(col Color) {
	c.modulate = col
}

// SelfModulate returns the tint applied to this item only.
func (c *CanvasItem) SelfModulate() Color {
	return c.selfModulate
}

// SetSelfModulate sets the tint applied to this item only.
func (c *CanvasItem) SetSelfModulate(col Color) {
	c.selfModulate = col
}

// ZIndex returns the draw order key. Higher values draw later.
func (c *CanvasItem) ZIndex() int {
	return c.zIndex
}

// SetZIndex sets the draw order key.
func (c *CanvasItem) SetZIndex(z int) {
	c.zIndex = z
}

// BlendMode returns the compositing operation used to draw the item.
func (c *CanvasItem) BlendMode() BlendMode {
	return c.blendMode
}

// SetBlendMode sets the compositing operation used to draw the item.
func (c *CanvasItem) SetBlendMode(mode BlendMode) {
	c.blendMode = mode
}

// GetGlobalTransform returns the product of the local transforms of this item
// and its contiguous CanvasItem ancestors. A parent that is not a CanvasItem
// ends the chain.
func (c *CanvasItem) GetGlobalTransform() Transform2D {
	t := IdentityTransform
	for p := &c.Node; p != nil; p = parentNode(p) {
		lt, ok := p.Object.self.(localTransformer)
		if !ok {
			break
		}
		t = lt.localTransform().Mul(t)
	}
	return t
}

// globalModulate returns the effective draw color: the product of every
// CanvasItem ancestor's modulate, this item's modulate, and its self modulate.
func (c *CanvasItem) globalModulate() Color {
	col := c.selfModulate
	for p := &c.Node; p != nil; p = parentNode(p) {
		ci, ok := p.Object.self.(canvasItemer)
		if !ok {
			break
		}
		col = col.Mul(ci.AsCanvasItem().modulate)
	}
	return col
}

// parentGlobalTransform returns the global transform of n's parent when it is
// a CanvasItem, otherwise the identity.
func parentGlobalTransform(n *Node) Transform2D {
	p := parentNode(n)
	if p == nil {
		return IdentityTransform
	}
	if ci, ok := p.Object.self.(canvasItemer); ok {
		return ci.AsCanvasItem().GetGlobalTransform()
	}
	return IdentityTransform
}

// applyColor writes a premultiplied color scale.
func applyColor(cs *ebiten.ColorScale, c Color) {
	cs.Reset()
	a := float32(c.A)
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}
