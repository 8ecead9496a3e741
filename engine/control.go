package engine

// Control is the base of rectangular user interface items. Its position is
// relative to the parent CanvasItem.
type Control struct {
	CanvasItem

	position    Vec2
	size        Vec2
	minSize     Vec2
	tooltip     string
	mouseFilter MouseFilter
}

// NewControl creates an empty control.
func NewControl(name string) *Control {
	c := &Control{}
	c.initControl(c, ClassControl, name)
	return c
}

func (c *Control) initControl(self NodeInstance, class, name string) {
	c.initCanvasItem(self, class, name)
}

// AsControl returns c.
func (c *Control) AsControl() *Control { return c }

func (c *Control) localTransform() Transform2D {
	return translation(c.position)
}

// Position returns the top-left corner relative to the parent.
func (c *Control) Position() Vec2 {
	return c.position
}

// SetPosition sets the top-left corner relative to the parent.
func (c *Control) SetPosition(p Vec2) {
	c.position = p
}

// Size returns the control size.
func (c *Control) Size() Vec2 {
	return c.size
}

// SetSize sets the control size. Each axis is raised to CustomMinimumSize.
func (c *Control) SetSize(s Vec2) {
	c.size = Vec2{max(s.X, c.minSize.X), max(s.Y, c.minSize.Y)}
}

// CustomMinimumSize returns the lower bound for Size.
func (c *Control) CustomMinimumSize() Vec2 {
	return c.minSize
}

// SetCustomMinimumSize sets the lower bound for Size and grows the control
// when it is smaller. Panics on negative components.
func (c *Control) SetCustomMinimumSize(s Vec2) {
	if s.X < 0 || s.Y < 0 {
		panic("engine: Control minimum size must be non-negative")
	}
	c.minSize = s
	c.SetSize(c.size)
}

// GetRect returns the control rectangle in parent space.
func (c *Control) GetRect() Rect {
	return Rect{X: c.position.X, Y: c.position.Y, Width: c.size.X, Height: c.size.Y}
}

// GetGlobalRect returns the control rectangle with a global origin.
func (c *Control) GetGlobalRect() Rect {
	o := c.GetGlobalTransform().Origin()
	return Rect{X: o.X, Y: o.Y, Width: c.size.X, Height: c.size.Y}
}

// HasPoint reports whether a point in local coordinates lies inside the control.
func (c *Control) HasPoint(p Vec2) bool {
	return Rect{Width: c.size.X, Height: c.size.Y}.Contains(p.X, p.Y)
}

// TooltipText returns the tooltip.
func (c *Control) TooltipText() string {
	return c.tooltip
}

// SetTooltipText sets the tooltip.
func (c *Control) SetTooltipText(text string) {
	c.tooltip = text
}

// MouseFilter returns how the control treats pointer events.
func (c *Control) MouseFilter() MouseFilter {
	return c.mouseFilter
}

// SetMouseFilter sets how the control treats pointer events.
func (c *Control) SetMouseFilter(f MouseFilter) {
	c.mouseFilter = f
}

// GrabFocus makes this control the tree's focus owner. The previous owner
// receives "focus_exited". No-op outside a tree.
func (c *Control) GrabFocus() {
	if c.tree == nil || c.tree.focusOwner == c {
		return
	}
	if prev := c.tree.focusOwner; prev != nil {
		c.tree.focusOwner = nil
		prev.EmitSignal(SignalFocusExited)
	}
	c.tree.focusOwner = c
	c.EmitSignal(SignalFocusEntered)
}

// HasFocus reports whether this control owns focus.
func (c *Control) HasFocus() bool {
	return c.tree != nil && c.tree.focusOwner == c
}

// ReleaseFocus gives up focus if this control owns it.
func (c *Control) ReleaseFocus() {
	if !c.HasFocus() {
		return
	}
	c.tree.focusOwner = nil
	c.EmitSignal(SignalFocusExited)
}

func (c *Control) notification(what int) {
	if what == notificationExitTree {
		c.ReleaseFocus()
	}
}
