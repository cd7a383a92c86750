package geom

import (
	"math"
)

// Line represents a line segment from P0 to P1. Depending on the operation, it
// is treated either as the bounded segment or as the infinite line through both
// points.
//
// A line whose endpoints coincide is degenerate. Operations that need a
// direction document how they handle it.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Direction returns the unit vector pointing from P0 to P1. It returns false if
// the line has zero length.
func (l Line) Direction() (Vec2, bool) {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return Vec2{}, false
	}
	return d.Div(n), true
}

// Midpoint returns the point halfway between P0 and P1.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Reverse returns the line with its endpoints swapped.
func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

// implicit returns the coefficients of the line's implicit equation
// A·x + B·y + C = 0.
func (l Line) implicit() (a, b, c float64) {
	a = l.P1.Y - l.P0.Y
	b = l.P0.X - l.P1.X
	c = l.P1.X*l.P0.Y - l.P0.X*l.P1.Y
	return a, b, c
}

// foot computes the perpendicular foot of pt on the infinite line. It returns
// false if the line has zero length.
func (l Line) foot(pt Point) (Point, bool) {
	a, b, c := l.implicit()
	denom := a*a + b*b
	if denom == 0 {
		return Point{}, false
	}
	return Point{
		X: (b*(b*pt.X-a*pt.Y) - a*c) / denom,
		Y: (a*(-b*pt.X+a*pt.Y) - b*c) / denom,
	}, true
}

// IsParallel reports whether the directions of l and o are parallel. A
// zero-length line is parallel to every line.
func (l Line) IsParallel(o Line) bool {
	return math.Abs(l.P1.Sub(l.P0).Cross(o.P1.Sub(o.P0))) < Epsilon
}

// IsPerpendicular reports whether the directions of l and o are perpendicular.
// A zero-length line is perpendicular to every line.
func (l Line) IsPerpendicular(o Line) bool {
	return math.Abs(l.P1.Sub(l.P0).Dot(o.P1.Sub(o.P0))) < Epsilon
}

// Intersect computes the point where l and o, if extended to infinity, would
// cross. It returns false if the lines are parallel or coincident; the two
// cases are not distinguished.
func (l Line) Intersect(o Line) (Point, bool) {
	a1, b1, c1 := l.implicit()
	a2, b2, c2 := o.implicit()
	denom := a1*b2 - a2*b1
	if math.Abs(denom) < Epsilon {
		return Point{}, false
	}
	return Point{
		X: (b1*c2 - b2*c1) / denom,
		Y: (a2*c1 - a1*c2) / denom,
	}, true
}

// Angle returns the angle between the directions of l and o in degrees, in the
// range [0, 180]. It returns 0 if either line has zero length.
func (l Line) Angle(o Line) float64 {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	m1 := d1.Hypot()
	m2 := d2.Hypot()
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := d1.Dot(d2) / (m1 * m2)
	// Round-off can push the cosine slightly outside of acos's domain.
	cos = max(-1, min(1, cos))
	return Degrees(math.Acos(cos))
}

// IntersectAndAngle combines [Line.Intersect] and [Line.Angle].
func (l Line) IntersectAndAngle(o Line) (pt Point, ok bool, degrees float64) {
	pt, ok = l.Intersect(o)
	return pt, ok, l.Angle(o)
}

// Translate returns the line displaced by v.
func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// TranslateBy moves the line by distance along its own direction. A zero-length
// line is returned unchanged.
func (l Line) TranslateBy(distance float64) Line {
	return l.TranslateAlong(l, distance)
}

// TranslateAlong moves the line by distance along the direction of ref. If ref
// has zero length, l is returned unchanged.
func (l Line) TranslateAlong(ref Line, distance float64) Line {
	dir, ok := ref.Direction()
	if !ok {
		return l
	}
	return l.Translate(dir.Mul(distance))
}

// Rotate rotates both endpoints about center by the given angle in degrees.
func (l Line) Rotate(center Point, degrees float64) Line {
	return l.Transform(RotateAboutDegrees(degrees, center))
}

// Transform applies aff to both endpoints.
func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
