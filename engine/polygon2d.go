package engine

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Polygon2D draws a filled convex polygon, optionally textured.
type Polygon2D struct {
	Node2D

	polygon []Vec2
	color   Color
	texture *ebiten.Image
	offset  Vec2

	verts []ebiten.Vertex
	inds  []uint16
}

// NewPolygon2D creates an empty white polygon.
func NewPolygon2D(name string) *Polygon2D {
	p := &Polygon2D{}
	p.initNode2D(p, ClassPolygon2D, name)
	p.color = ColorWhite
	return p
}

// AsPolygon2D returns p.
func (p *Polygon2D) AsPolygon2D() *Polygon2D { return p }

// Polygon returns a copy of the polygon points in local space.
func (p *Polygon2D) Polygon() []Vec2 {
	return slices.Clone(p.polygon)
}

// SetPolygon replaces the polygon points. Fewer than three points draw nothing.
func (p *Polygon2D) SetPolygon(points []Vec2) {
	p.polygon = slices.Clone(points)
	p.verts, p.inds = nil, nil
}

// Color returns the fill color.
func (p *Polygon2D) Color() Color {
	return p.color
}

// SetColor sets the fill color.
func (p *Polygon2D) SetColor(c Color) {
	p.color = c
}

// Texture returns the fill texture, or nil for a solid fill.
func (p *Polygon2D) Texture() *ebiten.Image {
	return p.texture
}

// SetTexture sets the fill texture. UVs span the polygon's bounding box.
func (p *Polygon2D) SetTexture(img *ebiten.Image) {
	p.texture = img
	p.verts, p.inds = nil, nil
}

// Offset returns the offset added to every point.
func (p *Polygon2D) Offset() Vec2 {
	return p.offset
}

// SetOffset sets the offset added to every point.
func (p *Polygon2D) SetOffset(o Vec2) {
	p.offset = o
}

// TriangleCount returns the number of triangles the polygon is drawn with.
func (p *Polygon2D) TriangleCount() int {
	if len(p.polygon) < 3 {
		return 0
	}
	return len(p.polygon) - 2
}

func (p *Polygon2D) mesh() ([]ebiten.Vertex, []uint16) {
	if p.verts == nil {
		p.verts, p.inds = buildPolygonFan(p.polygon, p.texture)
	}
	return p.verts, p.inds
}

func (p *Polygon2D) draw(target *ebiten.Image, view Transform2D) {
	src, inds := p.mesh()
	if len(inds) == 0 {
		return
	}
	img := p.texture
	if img == nil {
		img = ensureWhitePixel()
	}
	world := view.Mul(p.GetGlobalTransform()).Mul(translation(p.offset))
	dst := make([]ebiten.Vertex, len(src))
	transformVertices(src, dst, world, p.color.Mul(p.globalModulate()))
	var op ebiten.DrawTrianglesOptions
	op.Blend = p.blendMode.EbitenBlend()
	target.DrawTriangles(dst, inds, img, &op)
}

// buildPolygonFan generates vertices and indices for a fan-triangulated polygon.
// N vertices, 3*(N-2) indices. With a texture, UVs are mapped to the bounding
// box of the points; otherwise they sample the center of the white pixel.
func buildPolygonFan(points []Vec2, img *ebiten.Image) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	var bounds Rect
	var imgW, imgH float64
	if img != nil {
		bounds = pointsBounds(points)
		b := img.Bounds()
		imgW = float64(b.Dx())
		imgH = float64(b.Dy())
	}

	for i, pt := range points {
		v := &verts[i]
		v.DstX = float32(pt.X)
		v.DstY = float32(pt.Y)
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
		if img == nil {
			v.SrcX, v.SrcY = 0.5, 0.5
			continue
		}
		if bounds.Width > 0 {
			v.SrcX = float32((pt.X - bounds.X) / bounds.Width * imgW)
		}
		if bounds.Height > 0 {
			v.SrcY = float32((pt.Y - bounds.Y) / bounds.Height * imgH)
		}
	}

	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// pointsBounds returns the axis-aligned bounding box of points.
func pointsBounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range points[1:] {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// transformVertices applies an affine transform and a premultiplied tint to
// src vertices, writing the result into dst.
func transformVertices(src, dst []ebiten.Vertex, t Transform2D, tint Color) {
	cr, cg, cb, ca := float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A)
	for i := range src {
		s := &src[i]
		pt := t.Xform(Vec2{float64(s.DstX), float64(s.DstY)})
		dst[i] = ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// The white pixel is lazily created; the engine is single-threaded so no
// sync.Once is needed.
var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a shared 1x1 white image used by untextured meshes
// and particles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
