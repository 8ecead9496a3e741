package adapter

import (
	"github.com/phanxgames/nodekit"
	"github.com/phanxgames/nodekit/engine"
)

var _ nodekit.Label = (*Label)(nil)

// Label forwards nodekit.Label to an *engine.Label.
type Label struct {
	*Control
	label *engine.Label
}

// NewLabel wraps n without checking it.
func NewLabel(n *engine.Label) *Label {
	return &Label{Control: NewControl(&n.Control), label: n}
}

// AdaptLabel wraps inst if it is a Label.
func AdaptLabel(inst engine.Instance) (*Label, error) {
	c, err := narrow[interface{ AsLabel() *engine.Label }](inst, engine.ClassLabel)
	if err != nil {
		return nil, err
	}
	return NewLabel(c.AsLabel()), nil
}

func (a *Label) Text() string                                  { return a.label.Text() }
func (a *Label) SetText(s string)                              { a.label.SetText(s) }
func (a *Label) HorizontalAlignment() engine.TextAlign         { return a.label.HorizontalAlignment() }
func (a *Label) SetHorizontalAlignment(align engine.TextAlign) { a.label.SetHorizontalAlignment(align) }
func (a *Label) Autowrap() bool                                { return a.label.Autowrap() }
func (a *Label) SetAutowrap(wrap bool)                         { a.label.SetAutowrap(wrap) }
func (a *Label) Font() engine.Font                             { return a.label.Font() }
func (a *Label) SetFont(f engine.Font)                         { a.label.SetFont(f) }
func (a *Label) FontColor() engine.Color                       { return a.label.FontColor() }
func (a *Label) SetFontColor(c engine.Color)                   { a.label.SetFontColor(c) }
func (a *Label) VisibleCharacters() int                        { return a.label.VisibleCharacters() }
func (a *Label) SetVisibleCharacters(n int)                    { a.label.SetVisibleCharacters(n) }
func (a *Label) GetLineCount() int                             { return a.label.GetLineCount() }
func (a *Label) TextSize() engine.Vec2                         { return a.label.TextSize() }
