package engine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform2D is a 2D affine matrix stored as [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform2D [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Transform2D{1, 0, 0, 1, 0, 0}

// composeTransform builds a local matrix from transform properties.
//
// Composition order:
//
//	Scale -> Skew -> Rotate -> Translate(position)
func composeTransform(pos Vec2, rotation float64, scale Vec2, skew float64) Transform2D {
	sin, cos := math.Sincos(rotation)

	var tanSkew float64
	if skew != 0 {
		tanSkew = math.Tan(skew)
	}

	// After Skew:
	a := scale.X
	b := 0.0
	c := tanSkew * scale.Y
	d := scale.Y

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d

	return Transform2D{ra, rb, rc, rd, pos.X, pos.Y}
}

// translation returns a pure translation matrix.
func translation(v Vec2) Transform2D {
	return Transform2D{1, 0, 0, 1, v.X, v.Y}
}

// Mul multiplies two affine matrices: result = t * child.
func (t Transform2D) Mul(child Transform2D) Transform2D {
	return Transform2D{
		t[0]*child[0] + t[2]*child[1],
		t[1]*child[0] + t[3]*child[1],
		t[0]*child[2] + t[2]*child[3],
		t[1]*child[2] + t[3]*child[3],
		t[0]*child[4] + t[2]*child[5] + t[4],
		t[1]*child[4] + t[3]*child[5] + t[5],
	}
}

// Inverse returns the inverse matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func (t Transform2D) Inverse() Transform2D {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform2D{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Xform applies the matrix to a point.
func (t Transform2D) Xform(v Vec2) Vec2 {
	return Vec2{t[0]*v.X + t[2]*v.Y + t[4], t[1]*v.X + t[3]*v.Y + t[5]}
}

// Origin returns the translation component.
func (t Transform2D) Origin() Vec2 {
	return Vec2{t[4], t[5]}
}

// Rotation returns the rotation encoded in the matrix, in radians.
func (t Transform2D) Rotation() float64 {
	return math.Atan2(t[1], t[0])
}

// GeoM converts the matrix into an ebiten.GeoM.
func (t Transform2D) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}
