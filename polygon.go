package geom

import (
	"fmt"
	"iter"
	"math"
)

// Polygon is a closed ring of vertices. The last vertex connects back to the
// first; repeating the first vertex at the end is not necessary.
type Polygon []Point

// Edges returns the polygon's edges in order, including the closing edge.
func (p Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		n := len(p)
		for i := range n {
			if !yield(Line{p[i], p[(i+1)%n]}) {
				return
			}
		}
	}
}

// Centroid returns the arithmetic mean of the vertices. This is not the
// area-weighted centroid and is pulled towards densely sampled parts of the
// outline. The centroid of an empty polygon is NaN.
func (p Polygon) Centroid() Point {
	var sx, sy float64
	for _, pt := range p {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p))
	return Pt(sx/n, sy/n)
}

// BoundingBox returns the smallest rectangle enclosing all vertices. An empty
// polygon has a zero bounding box.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Contains reports whether pt lies inside the polygon, using the crossing
// number of a ray cast from pt in the positive x direction. An edge is crossed
// when pt.Y lies in (min(y0, y1), max(y0, y1)] and the edge meets the ray at or
// to the right of pt. Horizontal edges are never crossed.
//
// It returns an error wrapping [ErrInvalidInput] if the polygon has fewer than
// three vertices.
func (p Polygon) Contains(pt Point) (bool, error) {
	if len(p) < 3 {
		return false, fmt.Errorf("point in polygon: %w: need at least 3 vertices, got %d", ErrInvalidInput, len(p))
	}

	// Points that no edge can count lie outside regardless of the ring's shape.
	bbox := p.BoundingBox()
	if pt.X > bbox.X1 || pt.Y <= bbox.Y0 || pt.Y > bbox.Y1 {
		return false, nil
	}

	crossings := 0
	for e := range p.Edges() {
		p0, p1 := e.P0, e.P1
		if pt.Y <= min(p0.Y, p1.Y) || pt.Y > max(p0.Y, p1.Y) {
			continue
		}
		dy := p1.Y - p0.Y
		if math.Abs(dy) <= Epsilon {
			continue
		}
		x := (pt.Y-p0.Y)*(p1.X-p0.X)/dy + p0.X
		if x >= pt.X {
			crossings++
		}
	}
	return crossings%2 == 1, nil
}

// ApproxInscribedCircle approximates the largest circle that fits inside the
// polygon. The center is the vertex mean returned by [Polygon.Centroid] and the
// radius is the smallest distance from it to any edge, with edges extended to
// infinite lines.
//
// This is an approximation, not the polygon's Chebyshev center. For non-convex
// or strongly asymmetric polygons the circle can be far smaller than the true
// maximum, and the centroid need not even lie inside the polygon.
//
// It returns an error wrapping [ErrInvalidInput] if the polygon has fewer than
// three vertices.
func (p Polygon) ApproxInscribedCircle() (Circle, error) {
	if len(p) < 3 {
		return Circle{}, fmt.Errorf("inscribed circle: %w: need at least 3 vertices, got %d", ErrInvalidInput, len(p))
	}
	center := p.Centroid()
	r := math.MaxFloat64
	for e := range p.Edges() {
		r = min(r, center.DistanceToLine(e))
	}
	return Circle{Center: center, Radius: r}, nil
}
