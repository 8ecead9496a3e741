package nodekit

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodekit/engine"
)

// Control is the capability set of engine.Control.
type Control interface {
	CanvasItem

	Position() engine.Vec2
	SetPosition(p engine.Vec2)
	Size() engine.Vec2
	SetSize(s engine.Vec2)
	CustomMinimumSize() engine.Vec2
	SetCustomMinimumSize(s engine.Vec2)
	GetRect() engine.Rect
	GetGlobalRect() engine.Rect
	HasPoint(p engine.Vec2) bool
	TooltipText() string
	SetTooltipText(text string)
	MouseFilter() engine.MouseFilter
	SetMouseFilter(f engine.MouseFilter)
	GrabFocus()
	HasFocus() bool
	ReleaseFocus()
}

// Label is the capability set of engine.Label.
type Label interface {
	Control

	Text() string
	SetText(s string)
	HorizontalAlignment() engine.TextAlign
	SetHorizontalAlignment(a engine.TextAlign)
	Autowrap() bool
	SetAutowrap(wrap bool)
	Font() engine.Font
	SetFont(f engine.Font)
	FontColor() engine.Color
	SetFontColor(c engine.Color)
	VisibleCharacters() int
	SetVisibleCharacters(n int)
	GetLineCount() int
	TextSize() engine.Vec2
}

// BaseButton is the capability set of engine.BaseButton.
type BaseButton interface {
	Control

	Disabled() bool
	SetDisabled(disabled bool)
	ToggleMode() bool
	SetToggleMode(toggle bool)
	ButtonPressed() bool
	SetButtonPressed(pressed bool)
	Press()
}

// Button is the capability set of engine.Button.
type Button interface {
	BaseButton

	Text() string
	SetText(s string)
	Flat() bool
	SetFlat(flat bool)
	Icon() *ebiten.Image
	SetIcon(img *ebiten.Image)
	Alignment() engine.TextAlign
	SetAlignment(a engine.TextAlign)
}
