package geom

import (
	"fmt"
	"math"
)

// Arc is a circular arc. Its angles are in degrees, measured counter-clockwise
// from the positive x axis, and are not normalized to any range. The arc runs
// counter-clockwise from StartAngle to EndAngle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc[Center=%s, Radius=%g, StartAngle=%g°, EndAngle=%g°]",
		a.Center, a.Radius, a.StartAngle, a.EndAngle)
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() Point {
	return a.pointAt(a.StartAngle)
}

// EndPoint returns the point at EndAngle.
func (a Arc) EndPoint() Point {
	return a.pointAt(a.EndAngle)
}

func (a Arc) pointAt(deg float64) Point {
	return a.Center.Translate(VecFromAngle(Radians(deg)).Mul(a.Radius))
}

// Circle returns the circle the arc lies on.
func (a Arc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}

// Spans reports whether the direction deg, in degrees, falls within the arc's
// angular span. Spans whose normalized start angle exceeds the end angle cross
// 0°.
func (a Arc) Spans(deg float64) bool {
	deg = NormalizeDegrees(deg)
	start := NormalizeDegrees(a.StartAngle)
	end := NormalizeDegrees(a.EndAngle)
	if start <= end {
		return deg >= start && deg <= end
	}
	return deg >= start || deg <= end
}

// Nearest returns the point on the arc closest to pt.
//
// If the direction from the center to pt lies within the arc's span, the result
// is the projection of pt onto the arc's circle; a point at the center maps to
// the start point. Otherwise the nearer of the two endpoints is returned,
// preferring the start point on ties.
func (a Arc) Nearest(pt Point) Point {
	v := pt.Sub(a.Center)
	if a.Spans(Degrees(v.Angle())) {
		d := v.Hypot()
		if d < Epsilon {
			return a.StartPoint()
		}
		return a.Center.Translate(v.Mul(a.Radius / d))
	}

	start := a.StartPoint()
	end := a.EndPoint()
	if pt.Distance(start) <= pt.Distance(end) {
		return start
	}
	return end
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.EndAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.EndAngle)
}
