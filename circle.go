package geom

import (
	"math"
)

// Circle is the circle of the given radius around Center. A zero radius is
// allowed and describes a single point.
type Circle struct {
	Center Point
	Radius float64
}

// IsInside reports whether pt lies strictly inside the circle, by more than
// tolerance.
func (c Circle) IsInside(pt Point, tolerance float64) bool {
	return pt.Distance(c.Center) < c.Radius-tolerance
}

// IsOn reports whether pt lies on the circle's boundary, within tolerance.
func (c Circle) IsOn(pt Point, tolerance float64) bool {
	return math.Abs(pt.Distance(c.Center)-c.Radius) < tolerance
}

// IsOutside reports whether pt lies strictly outside the circle, by more than
// tolerance.
func (c Circle) IsOutside(pt Point, tolerance float64) bool {
	return pt.Distance(c.Center) > c.Radius+tolerance
}

// Contains reports whether pt lies inside or on the circle, within tolerance.
func (c Circle) Contains(pt Point, tolerance float64) bool {
	return pt.Distance(c.Center) <= c.Radius+tolerance
}

// LineToCenter returns the segment from pt to the circle's center.
func (c Circle) LineToCenter(pt Point) Line {
	return Line{pt, c.Center}
}

// Nearest returns the point on the circle's boundary closest to pt. If pt
// coincides with the center, every boundary point is equally close and the one
// in the positive x direction is returned.
func (c Circle) Nearest(pt Point) Point {
	d := pt.Distance(c.Center)
	if d < Epsilon {
		return Pt(c.Center.X+c.Radius, c.Center.Y)
	}
	return c.Center.Translate(pt.Sub(c.Center).Mul(c.Radius / d))
}

// Tangents computes the tangent lines from pt to the circle. Each returned line
// starts at pt.
//
// A point inside the circle has no tangents. A point on the circle has a single
// tangent, perpendicular to the radius and [TangentLength] long. A point
// outside of the circle has two tangents, each ending at its point of contact.
// A zero-radius circle has no tangent direction, and a point at its center
// yields no tangents.
func (c Circle) Tangents(pt Point, tolerance float64) ([2]Line, int) {
	var out [2]Line
	d := pt.Distance(c.Center)
	if d < c.Radius-tolerance {
		return out, 0
	}
	if math.Abs(d-c.Radius) < tolerance {
		if d == 0 {
			return out, 0
		}
		perp := pt.Sub(c.Center).Perp().Mul(TangentLength / d)
		out[0] = Line{pt, pt.Translate(perp)}
		return out, 1
	}

	// The radius to a point of contact is perpendicular to the tangent, so it
	// makes an angle of acos(r/d) with the bearing from the center to pt.
	offset := math.Acos(c.Radius / d)
	base := pt.Sub(c.Center).Angle()
	out[0] = Line{pt, c.Center.Translate(VecFromAngle(base + offset).Mul(c.Radius))}
	out[1] = Line{pt, c.Center.Translate(VecFromAngle(base - offset).Mul(c.Radius))}
	return out, 2
}

// Intersect computes the intersection points of two circles.
//
// Circles with coincident centers report no intersections, even if their radii
// are equal and they overlap entirely. Disjoint circles and circles contained
// in one another have no intersections. Tangent circles, whose center distance
// is within tolerance of the sum or difference of their radii, have a single
// intersection on the line through both centers. All other circles intersect
// in two points.
func (c Circle) Intersect(o Circle, tolerance float64) ([2]Point, int) {
	var out [2]Point
	d := c.Center.Distance(o.Center)
	r1 := c.Radius
	r2 := o.Radius

	if d < tolerance {
		return out, 0
	}
	if d > r1+r2+tolerance {
		return out, 0
	}
	if d < math.Abs(r1-r2)-tolerance {
		return out, 0
	}

	u := o.Center.Sub(c.Center).Div(d)
	if math.Abs(d-(r1+r2)) < tolerance {
		out[0] = c.Center.Translate(u.Mul(r1))
		return out, 1
	}
	if math.Abs(d-math.Abs(r1-r2)) < tolerance {
		// Internally tangent. When c is the smaller circle, the point of
		// contact lies on the far side of c's center.
		if r1 < r2 {
			u = u.Negate()
		}
		out[0] = c.Center.Translate(u.Mul(r1))
		return out, 1
	}

	// Radical line construction: m is where the chord crosses the center line.
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(max(0, r1*r1-a*a))
	m := c.Center.Translate(u.Mul(a))
	off := Vec(u.Y, -u.X).Mul(h)
	out[0] = m.Translate(off)
	out[1] = m.Translate(off.Negate())
	return out, 2
}

// Distance returns the gap between the boundaries of two circles: positive if
// they are disjoint, zero if they touch externally and negative by the overlap
// depth otherwise.
func (c Circle) Distance(o Circle) float64 {
	return c.Center.Distance(o.Center) - c.Radius - o.Radius
}

// CenterDistance returns the distance between the centers of two circles.
func (c Circle) CenterDistance(o Circle) float64 {
	return c.Center.Distance(o.Center)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
