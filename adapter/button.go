package adapter

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var (
	_ nodekit.BaseButton = (*BaseButton)(nil)
	_ nodekit.Button     = (*Button)(nil)
)

// BaseButton forwards nodekit.BaseButton to an *engine.BaseButton.
type BaseButton struct {
	*Control
	base *engine.BaseButton
}

// NewBaseButton wraps n without checking it.
func NewBaseButton(n *engine.BaseButton) *BaseButton {
	return &BaseButton{Control: NewControl(&n.Control), base: n}
}

// AdaptBaseButton wraps inst if it is a BaseButton or a subclass.
func AdaptBaseButton(inst engine.Instance) (*BaseButton, error) {
	c, err := narrow[interface{ AsBaseButton() *engine.BaseButton }](inst, engine.ClassBaseButton)
	if err != nil {
		return nil, err
	}
	return NewBaseButton(c.AsBaseButton()), nil
}

func (a *BaseButton) Disabled() bool                { return a.base.Disabled() }
func (a *BaseButton) SetDisabled(disabled bool)     { a.base.SetDisabled(disabled) }
func (a *BaseButton) ToggleMode() bool              { return a.base.ToggleMode() }
func (a *BaseButton) SetToggleMode(toggle bool)     { a.base.SetToggleMode(toggle) }
func (a *BaseButton) ButtonPressed() bool           { return a.base.ButtonPressed() }
func (a *BaseButton) SetButtonPressed(pressed bool) { a.base.SetButtonPressed(pressed) }
func (a *BaseButton) Press()                        { a.base.Press() }

// Button forwards nodekit.Button to an *engine.Button.
type Button struct {
	*BaseButton
	button *engine.Button
}

// NewButton wraps n without checking it.
func NewButton(n *engine.Button) *Button {
	return &Button{BaseButton: NewBaseButton(&n.BaseButton), button: n}
}

// AdaptButton wraps inst if it is a Button.
func AdaptButton(inst engine.Instance) (*Button, error) {
	c, err := narrow[interface{ AsButton() *engine.Button }](inst, engine.ClassButton)
	if err != nil {
		return nil, err
	}
	return NewButton(c.AsButton()), nil
}

func (a *Button) Text() string                        { return a.button.Text() }
func (a *Button) SetText(s string)                    { a.button.SetText(s) }
func (a *Button) Flat() bool                          { return a.button.Flat() }
func (a *Button) SetFlat(flat bool)                   { a.button.SetFlat(flat) }
func (a *Button) Icon() *ebiten.Image                 { return a.button.Icon() }
func (a *Button) SetIcon(img *ebiten.Image)           { a.button.SetIcon(img) }
func (a *Button) Alignment() engine.TextAlign         { return a.button.Alignment() }
func (a *Button) SetAlignment(align engine.TextAlign) { a.button.SetAlignment(align) }
