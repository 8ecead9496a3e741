package engine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite2D draws a texture, a region of it, or one frame of a sprite sheet.
type Sprite2D struct {
	Node2D

	texture       *ebiten.Image
	centered      bool
	offset        Vec2
	flipH, flipV  bool
	regionEnabled bool
	regionRect    Rect
	hframes       int
	vframes       int
	frame         int
}

// NewSprite2D creates a centered sprite with no texture.
func NewSprite2D(name string) *Sprite2D {
	s := &Sprite2D{}
	s.initNode2D(s, ClassSprite2D, name)
	s.centered = true
	s.hframes = 1
	s.vframes = 1
	return s
}

// AsSprite2D returns s.
func (s *Sprite2D) AsSprite2D() *Sprite2D { return s }

// Texture returns the sprite texture, or nil.
func (s *Sprite2D) Texture() *ebiten.Image {
	return s.texture
}

// SetTexture sets the sprite texture. nil hides the sprite.
func (s *Sprite2D) SetTexture(img *ebiten.Image) {
	s.texture = img
}

// Centered reports whether the texture is drawn centered on the node origin.
func (s *Sprite2D) Centered() bool {
	return s.centered
}

// SetCentered sets whether the texture is drawn centered on the node origin.
func (s *Sprite2D) SetCentered(c bool) {
	s.centered = c
}

// Offset returns the drawing offset.
func (s *Sprite2D) Offset() Vec2 {
	return s.offset
}

// SetOffset sets the drawing offset.
func (s *Sprite2D) SetOffset(o Vec2) {
	s.offset = o
}

// FlipH reports whether the texture is mirrored horizontally.
func (s *Sprite2D) FlipH() bool {
	return s.flipH
}

// SetFlipH sets horizontal mirroring.
func (s *Sprite2D) SetFlipH(f bool) {
	s.flipH = f
}

// FlipV reports whether the texture is mirrored vertically.
func (s *Sprite2D) FlipV() bool {
	return s.flipV
}

// SetFlipV sets vertical mirroring.
func (s *Sprite2D) SetFlipV(f bool) {
	s.flipV = f
}

// RegionEnabled reports whether only RegionRect of the texture is drawn.
func (s *Sprite2D) RegionEnabled() bool {
	return s.regionEnabled
}

// SetRegionEnabled toggles region drawing.
func (s *Sprite2D) SetRegionEnabled(e bool) {
	s.regionEnabled = e
}

// RegionRect returns the texture region in pixels.
func (s *Sprite2D) RegionRect() Rect {
	return s.regionRect
}

// SetRegionRect sets the texture region in pixels.
func (s *Sprite2D) SetRegionRect(r Rect) {
	s.regionRect = r
}

// Hframes returns the number of sheet columns.
func (s *Sprite2D) Hframes() int {
	return s.hframes
}

// SetHframes sets the number of sheet columns. Panics if n < 1.
func (s *Sprite2D) SetHframes(n int) {
	if n < 1 {
		panic("engine: Sprite2D hframes must be at least 1")
	}
	s.hframes = n
	s.clampFrame()
}

// Vframes returns the number of sheet rows.
func (s *Sprite2D) Vframes() int {
	return s.vframes
}

// SetVframes sets the number of sheet rows. Panics if n < 1.
func (s *Sprite2D) SetVframes(n int) {
	if n < 1 {
		panic("engine: Sprite2D vframes must be at least 1")
	}
	s.vframes = n
	s.clampFrame()
}

func (s *Sprite2D) clampFrame() {
	if s.frame >= s.hframes*s.vframes {
		s.frame = 0
	}
}

// Frame returns the current sheet frame.
func (s *Sprite2D) Frame() int {
	return s.frame
}

// SetFrame selects a sheet frame. Panics if frame is outside
// [0, Hframes*Vframes).
func (s *Sprite2D) SetFrame(frame int) {
	if frame < 0 || frame >= s.hframes*s.vframes {
		panic("engine: Sprite2D frame out of range")
	}
	if s.frame == frame {
		return
	}
	s.frame = frame
	s.EmitSignal(SignalFrameChanged)
}

// GetRect returns the local rectangle the sprite covers.
func (s *Sprite2D) GetRect() Rect {
	src := s.sourceRect()
	w, h := float64(src.Dx()), float64(src.Dy())
	x, y := s.offset.X, s.offset.Y
	if s.centered {
		x -= w / 2
		y -= h / 2
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// sourceRect returns the pixel rectangle of the texture that is drawn.
func (s *Sprite2D) sourceRect() image.Rectangle {
	if s.texture == nil {
		return image.Rectangle{}
	}
	base := s.texture.Bounds()
	if s.regionEnabled {
		r := s.regionRect
		base = image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height)).Intersect(base)
	}
	fw := base.Dx() / s.hframes
	fh := base.Dy() / s.vframes
	col := s.frame % s.hframes
	row := s.frame / s.hframes
	origin := base.Min.Add(image.Pt(col*fw, row*fh))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(fw, fh))}
}

func (s *Sprite2D) draw(target *ebiten.Image, view Transform2D) {
	src := s.sourceRect()
	if src.Empty() {
		return
	}
	drawTexture(target, s.texture.SubImage(src).(*ebiten.Image), s.GetRect(), s.flipH, s.flipV,
		view.Mul(s.GetGlobalTransform()), s.globalModulate(), s.blendMode)
}

// drawTexture draws img into the local rect dst transformed by world.
func drawTexture(target, img *ebiten.Image, dst Rect, flipH, flipV bool, world Transform2D, col Color, blend BlendMode) {
	var op ebiten.DrawImageOptions
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if flipH {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	if flipV {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, h)
	}
	if w > 0 && h > 0 && (dst.Width != w || dst.Height != h) {
		op.GeoM.Scale(dst.Width/w, dst.Height/h)
	}
	op.GeoM.Translate(dst.X, dst.Y)
	op.GeoM.Concat(world.GeoM())
	applyColor(&op.ColorScale, col)
	op.Blend = blend.EbitenBlend()
	target.DrawImage(img, &op)
}
