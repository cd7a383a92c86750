package geom

import (
	"fmt"
	"math"
)

// Circumcircle returns the circle passing through a, b and c.
//
// It returns an error wrapping [ErrDegenerate] if twice the triangle's signed
// area is smaller than [Epsilon] in magnitude, which covers collinear points
// but also rejects very small triangles.
func Circumcircle(a, b, c Point) (Circle, error) {
	circ, d := circumcircle(a, b, c)
	if math.Abs(d) < Epsilon {
		return Circle{}, fmt.Errorf("circumcircle of %s, %s, %s: %w: points are collinear", a, b, c, ErrDegenerate)
	}
	return circ, nil
}

// circumcircle computes the circle through a, b and c relative to a, along
// with twice the triangle's signed area. The circle is only valid if that area
// is non-zero; there is no threshold, so triangles of any scale work.
func circumcircle(a, b, c Point) (Circle, float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	if d == 0 {
		return Circle{}, 0
	}
	b2 := ab.Hypot2()
	c2 := ac.Hypot2()
	off := Vec((ac.Y*b2-ab.Y*c2)/d, (ab.X*c2-ac.X*b2)/d)
	return Circle{Center: a.Translate(off), Radius: off.Hypot()}, d
}

// Incircle returns the circle inscribed in the triangle a, b, c, tangent to all
// three sides. The center is the average of the vertices weighted by the
// lengths of the opposite sides, and the radius is the triangle's area, by
// Heron's formula, divided by its semiperimeter.
//
// It returns an error wrapping [ErrDegenerate] if all three points coincide.
// Collinear but distinct points produce a zero-radius circle.
func Incircle(a, b, c Point) (Circle, error) {
	la := b.Distance(c)
	lb := a.Distance(c)
	lc := a.Distance(b)
	perimeter := la + lb + lc
	if perimeter == 0 {
		return Circle{}, fmt.Errorf("incircle of %s, %s, %s: %w: triangle has zero perimeter", a, b, c, ErrDegenerate)
	}
	center := Point{
		X: (la*a.X + lb*b.X + lc*c.X) / perimeter,
		Y: (la*a.Y + lb*b.Y + lc*c.Y) / perimeter,
	}
	s := perimeter / 2
	// Round-off can make the product slightly negative for collinear points.
	area := math.Sqrt(max(0, s*(s-la)*(s-lb)*(s-lc)))
	return Circle{Center: center, Radius: area / s}, nil
}
