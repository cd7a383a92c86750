package geom

import (
	"math"
)

// Affine is a 2D affine transform. Its coefficients (N0, ..., N5) form the
// matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// acting on column vectors, so that a.Mul(b) applies b first, then a.
//
// The rotation helpers of [Point] and [Line] build on it.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Translate returns the transform that moves every point by v.
func Translate(v Vec2) Affine {
	return Affine{N0: 1, N3: 1, N4: v.X, N5: v.Y}
}

// Rotate returns the transform that rotates about the origin by th radians,
// counter-clockwise in a y-up coordinate system.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{N0: cos, N1: sin, N2: -sin, N3: cos}
}

// RotateAbout returns the transform that rotates by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// RotateAboutDegrees is [RotateAbout] with the angle in degrees.
func RotateAboutDegrees(deg float64, center Point) Affine {
	return RotateAbout(Radians(deg), center)
}

// Mul composes two transforms. The result applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate returns aff followed by a rotation of th radians about the origin.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
