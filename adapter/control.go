package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Control = (*Control)(nil)

// Control forwards nodekit.Control to an *engine.Control.
type Control struct {
	*CanvasItem
	ctrl *engine.Control
}

// NewControl wraps n without checking it.
func NewControl(n *engine.Control) *Control {
	return &Control{CanvasItem: NewCanvasItem(&n.CanvasItem), ctrl: n}
}

// AdaptControl wraps inst if it is a Control or a subclass.
func AdaptControl(inst engine.Instance) (*Control, error) {
	c, err := narrow[interface{ AsControl() *engine.Control }](inst, engine.ClassControl)
	if err != nil {
		return nil, err
	}
	return NewControl(c.AsControl()), nil
}

func (a *Control) Position() engine.Vec2               { return a.ctrl.Position() }
func (a *Control) SetPosition(p engine.Vec2)           { a.ctrl.SetPosition(p) }
func (a *Control) Size() engine.Vec2                   { return a.ctrl.Size() }
func (a *Control) SetSize(s engine.Vec2)               { a.ctrl.SetSize(s) }
func (a *Control) CustomMinimumSize() engine.Vec2      { return a.ctrl.CustomMinimumSize() }
func (a *Control) SetCustomMinimumSize(s engine.Vec2)  { a.ctrl.SetCustomMinimumSize(s) }
func (a *Control) GetRect() engine.Rect                { return a.ctrl.GetRect() }
func (a *Control) GetGlobalRect() engine.Rect          { return a.ctrl.GetGlobalRect() }
func (a *Control) HasPoint(p engine.Vec2) bool         { return a.ctrl.HasPoint(p) }
func (a *Control) TooltipText() string                 { return a.ctrl.TooltipText() }
func (a *Control) SetTooltipText(text string)          { a.ctrl.SetTooltipText(text) }
func (a *Control) MouseFilter() engine.MouseFilter     { return a.ctrl.MouseFilter() }
func (a *Control) SetMouseFilter(f engine.MouseFilter) { a.ctrl.SetMouseFilter(f) }
func (a *Control) GrabFocus()                          { a.ctrl.GrabFocus() }
func (a *Control) HasFocus() bool                      { return a.ctrl.HasFocus() }
func (a *Control) ReleaseFocus()                       { a.ctrl.ReleaseFocus() }
