package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.CanvasItem = (*CanvasItem)(nil)

// CanvasItem forwards nodekit.CanvasItem to an *engine.CanvasItem.
type CanvasItem struct {
	*Node
	item *engine.CanvasItem
}

// NewCanvasItem wraps n without checking it.
func NewCanvasItem(n *engine.CanvasItem) *CanvasItem {
	return &CanvasItem{Node: NewNode(&n.Node), item: n}
}

// AdaptCanvasItem wraps inst if it is a CanvasItem or a subclass.
func AdaptCanvasItem(inst engine.Instance) (*CanvasItem, error) {
	c, err := narrow[interface{ AsCanvasItem() *engine.CanvasItem }](inst, engine.ClassCanvasItem)
	if err != nil {
		return nil, err
	}
	return NewCanvasItem(c.AsCanvasItem()), nil
}

func (a *CanvasItem) IsVisible() bool                        { return a.item.IsVisible() }
func (a *CanvasItem) SetVisible(visible bool)                { a.item.SetVisible(visible) }
func (a *CanvasItem) Show()                                  { a.item.Show() }
func (a *CanvasItem) Hide()                                  { a.item.Hide() }
func (a *CanvasItem) IsVisibleInTree() bool                  { return a.item.IsVisibleInTree() }
func (a *CanvasItem) Modulate() engine.Color                 { return a.item.Modulate() }
func (a *CanvasItem) SetModulate(c engine.Color)             { a.item.SetModulate(c) }
func (a *CanvasItem) SelfModulate() engine.Color             { return a.item.SelfModulate() }
func (a *CanvasItem) SetSelfModulate(c engine.Color)         { a.item.SetSelfModulate(c) }
func (a *CanvasItem) ZIndex() int                            { return a.item.ZIndex() }
func (a *CanvasItem) SetZIndex(z int)                        { a.item.SetZIndex(z) }
func (a *CanvasItem) BlendMode() engine.BlendMode            { return a.item.BlendMode() }
func (a *CanvasItem) SetBlendMode(mode engine.BlendMode)     { a.item.SetBlendMode(mode) }
func (a *CanvasItem) GetGlobalTransform() engine.Transform2D { return a.item.GetGlobalTransform() }
