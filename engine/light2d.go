package engine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Light2D is the abstract base of 2D lights. Lights draw additively by default.
type Light2D struct {
	Node2D

	enabled bool
	energy  float64
	color   Color
}

func (l *Light2D) initLight2D(self NodeInstance, class, name string) {
	l.initNode2D(self, class, name)
	l.enabled = true
	l.energy = 1
	l.color = ColorWhite
	l.blendMode = BlendAdd
}

// AsLight2D returns l.
func (l *Light2D) AsLight2D() *Light2D { return l }

// Enabled reports whether the light is drawn.
func (l *Light2D) Enabled() bool {
	return l.enabled
}

// SetEnabled turns the light on or off.
func (l *Light2D) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// Energy returns the brightness multiplier.
func (l *Light2D) Energy() float64 {
	return l.energy
}

// SetEnergy sets the brightness multiplier. Panics if energy < 0.
func (l *Light2D) SetEnergy(energy float64) {
	if energy < 0 {
		panic("engine: Light2D energy must be non-negative")
	}
	l.energy = energy
}

// Color returns the light tint.
func (l *Light2D) Color() Color {
	return l.color
}

// SetColor sets the light tint.
func (l *Light2D) SetColor(c Color) {
	l.color = c
}

// effectiveColor is the tint scaled by energy and the inherited modulate.
func (l *Light2D) effectiveColor() Color {
	c := l.color.Mul(l.globalModulate())
	e := l.energy
	return Color{c.R * e, c.G * e, c.B * e, clamp01(c.A * e)}
}

// PointLight2D emits light from a texture centered on the node. Without a
// texture it draws a feathered circle of the configured radius.
type PointLight2D struct {
	Light2D

	texture      *ebiten.Image
	textureScale float64
	radius       float64
	offset       Vec2
}

// NewPointLight2D creates a point light with a 64 pixel radius.
func NewPointLight2D(name string) *PointLight2D {
	l := &PointLight2D{}
	l.initLight2D(l, ClassPointLight2D, name)
	l.textureScale = 1
	l.radius = 64
	return l
}

// AsPointLight2D returns l.
func (l *PointLight2D) AsPointLight2D() *PointLight2D { return l }

// Texture returns the light texture, or nil for the generated circle.
func (l *PointLight2D) Texture() *ebiten.Image {
	return l.texture
}

// SetTexture sets the light texture.
func (l *PointLight2D) SetTexture(img *ebiten.Image) {
	l.texture = img
}

// TextureScale returns the scale applied to the light texture.
func (l *PointLight2D) TextureScale() float64 {
	return l.textureScale
}

// SetTextureScale sets the scale applied to the light texture. Panics if
// scale <= 0.
func (l *PointLight2D) SetTextureScale(scale float64) {
	if scale <= 0 {
		panic("engine: PointLight2D texture scale must be positive")
	}
	l.textureScale = scale
}

// Radius returns the radius of the generated circle.
func (l *PointLight2D) Radius() float64 {
	return l.radius
}

// SetRadius sets the radius of the generated circle. Panics if radius <= 0.
func (l *PointLight2D) SetRadius(radius float64) {
	if radius <= 0 {
		panic("engine: PointLight2D radius must be positive")
	}
	l.radius = radius
}

// Offset returns the texture offset.
func (l *PointLight2D) Offset() Vec2 {
	return l.offset
}

// SetOffset sets the texture offset.
func (l *PointLight2D) SetOffset(o Vec2) {
	l.offset = o
}

func (l *PointLight2D) draw(target *ebiten.Image, view Transform2D) {
	if !l.enabled || l.energy == 0 {
		return
	}
	img := l.texture
	if img == nil {
		img = circleTexture(l.radius)
	}
	b := img.Bounds()
	w := float64(b.Dx()) * l.textureScale
	h := float64(b.Dy()) * l.textureScale
	dst := Rect{X: l.offset.X - w/2, Y: l.offset.Y - h/2, Width: w, Height: h}
	drawTexture(target, img, dst, false, false,
		view.Mul(l.GetGlobalTransform()), l.effectiveColor(), l.blendMode)
}

// circleCache holds generated light circles keyed by quantized radius.
var circleCache map[int]*ebiten.Image

// circleTexture returns a cached circle texture for the given radius. Radius
// is quantized to the nearest integer above.
func circleTexture(radius float64) *ebiten.Image {
	key := max(int(math.Ceil(radius)), 1)
	if circleCache == nil {
		circleCache = make(map[int]*ebiten.Image)
	}
	if img, ok := circleCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(key*2, key*2)
	img.WritePixels(circlePixels(float64(key)))
	circleCache[key] = img
	return img
}

// circlePixels renders a feathered white circle as premultiplied RGBA bytes
// with smoothstep falloff.
func circlePixels(radius float64) []byte {
	size := max(int(math.Ceil(radius*2)), 1)
	pix := make([]byte, size*size*4)
	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist < 1 {
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}
			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}
