package geom

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt displaced by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// TranslateAlong returns pt displaced by distance along the direction of ref.
// If ref has zero length, pt is returned unchanged.
func (pt Point) TranslateAlong(ref Line, distance float64) Point {
	dir, ok := ref.Direction()
	if !ok {
		return pt
	}
	return pt.Translate(dir.Mul(distance))
}

// Rotate rotates pt about center by the given angle in degrees. Positive angles
// rotate counter-clockwise in a y-up coordinate system.
func (pt Point) Rotate(center Point, degrees float64) Point {
	return pt.Transform(RotateAboutDegrees(degrees, center))
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// PerpendicularFoot returns the foot of the perpendicular dropped from pt onto
// the infinite line through l. If l has zero length, pt itself is returned.
//
// Compare [Point.Project], which falls back to l.P0 instead.
func (pt Point) PerpendicularFoot(l Line) Point {
	foot, ok := l.foot(pt)
	if !ok {
		return pt
	}
	return foot
}

// Project returns the orthogonal projection of pt onto the infinite line
// through l. If l has zero length, l.P0 is returned.
func (pt Point) Project(l Line) Point {
	foot, ok := l.foot(pt)
	if !ok {
		return l.P0
	}
	return foot
}

// ProjectedDistance returns the distance between the projections of pt and o
// onto ref, that is, their separation measured along ref's direction.
func (pt Point) ProjectedDistance(o Point, ref Line) float64 {
	return pt.Project(ref).Distance(o.Project(ref))
}

// PerpendicularTo returns the segment from pt to its perpendicular foot on l.
func (pt Point) PerpendicularTo(l Line) Line {
	return Line{pt, pt.PerpendicularFoot(l)}
}

// DistanceToLine returns the distance from pt to the infinite line through l.
// It is not the distance to the nearest point of the segment.
func (pt Point) DistanceToLine(l Line) float64 {
	return pt.Distance(pt.PerpendicularFoot(l))
}

// IsOnSegment reports whether pt lies on the bounded segment l, within
// tolerance. A point is on the segment when its distances to both endpoints
// sum to the segment's length.
func (pt Point) IsOnSegment(l Line, tolerance float64) bool {
	d := pt.Distance(l.P0) + pt.Distance(l.P1)
	return math.Abs(d-l.Length()) < tolerance
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
