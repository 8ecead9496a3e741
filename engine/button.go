package engine

import "github.com/hajimehoshi/ebiten/v2"

// BaseButton is the abstract base of clickable controls.
type BaseButton struct {
	Control

	disabled   bool
	toggleMode bool
	pressed    bool
}

func (b *BaseButton) initBaseButton(self NodeInstance, class, name string) {
	b.initControl(self, class, name)
}

// AsBaseButton returns b.
func (b *BaseButton) AsBaseButton() *BaseButton { return b }

// Disabled reports whether the button ignores presses.
func (b *BaseButton) Disabled() bool {
	return b.disabled
}

// SetDisabled sets whether the button ignores presses.
func (b *BaseButton) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// ToggleMode reports whether presses flip ButtonPressed.
func (b *BaseButton) ToggleMode() bool {
	return b.toggleMode
}

// SetToggleMode sets whether presses flip ButtonPressed. Leaving toggle mode
// clears the pressed state.
func (b *BaseButton) SetToggleMode(toggle bool) {
	b.toggleMode = toggle
	if !toggle {
		b.pressed = false
	}
}

// ButtonPressed reports the toggle state.
func (b *BaseButton) ButtonPressed() bool {
	return b.pressed
}

// SetButtonPressed sets the toggle state and emits "toggled" on change. Only
// meaningful in toggle mode; ignored otherwise.
func (b *BaseButton) SetButtonPressed(pressed bool) {
	if !b.toggleMode || b.pressed == pressed {
		return
	}
	b.pressed = pressed
	b.EmitSignal(SignalToggled, pressed)
}

// Press activates the button as if clicked. In toggle mode the pressed state
// flips first and "toggled" is emitted; then "pressed" is emitted. Disabled
// buttons ignore presses.
func (b *BaseButton) Press() {
	if b.disabled {
		return
	}
	if b.toggleMode {
		b.SetButtonPressed(!b.pressed)
	}
	b.EmitSignal(SignalPressed)
}

// Button is a push button with an optional icon and text.
type Button struct {
	BaseButton

	text  string
	flat  bool
	icon  *ebiten.Image
	align TextAlign
}

// NewButton creates an enabled, centered, non-flat button.
func NewButton(name string) *Button {
	b := &Button{}
	b.initBaseButton(b, ClassButton, name)
	b.align = TextAlignCenter
	return b
}

// AsButton returns b.
func (b *Button) AsButton() *Button { return b }

// Text returns the caption.
func (b *Button) Text() string {
	return b.text
}

// SetText sets the caption.
func (b *Button) SetText(s string) {
	b.text = s
}

// Flat reports whether the background is hidden.
func (b *Button) Flat() bool {
	return b.flat
}

// SetFlat sets whether the background is hidden.
func (b *Button) SetFlat(flat bool) {
	b.flat = flat
}

// Icon returns the icon, or nil.
func (b *Button) Icon() *ebiten.Image {
	return b.icon
}

// SetIcon sets the icon drawn left of the caption.
func (b *Button) SetIcon(img *ebiten.Image) {
	b.icon = img
}

// Alignment returns the caption alignment.
func (b *Button) Alignment() TextAlign {
	return b.align
}

// SetAlignment sets the caption alignment.
func (b *Button) SetAlignment(a TextAlign) {
	b.align = a
}

// Button background colors.
var (
	buttonNormal   = Color{0.25, 0.25, 0.3, 1}
	buttonPressed  = Color{0.4, 0.4, 0.5, 1}
	buttonDisabled = Color{0.15, 0.15, 0.15, 1}
)

func (b *Button) draw(target *ebiten.Image, view Transform2D) {
	world := view.Mul(b.GetGlobalTransform())
	mod := b.globalModulate()

	if !b.flat && b.size.X > 0 && b.size.Y > 0 {
		bg := buttonNormal
		switch {
		case b.disabled:
			bg = buttonDisabled
		case b.pressed:
			bg = buttonPressed
		}
		drawTexture(target, ensureWhitePixel(), Rect{Width: b.size.X, Height: b.size.Y},
			false, false, world, bg.Mul(mod), b.blendMode)
	}

	left := 0.0
	if b.icon != nil {
		ib := b.icon.Bounds()
		iw, ih := float64(ib.Dx()), float64(ib.Dy())
		drawTexture(target, b.icon, Rect{Y: (b.size.Y - ih) / 2, Width: iw, Height: ih},
			false, false, world, mod, b.blendMode)
		left = iw
	}

	if b.text == "" {
		return
	}
	f := DefaultFont()
	top := (b.size.Y - f.LineHeight()) / 2
	drawLines(target, f, []string{b.text}, b.align, b.size.X-left, top,
		world.Mul(translation(Vec2{left, 0})), mod)
}
