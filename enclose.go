package geom

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// MinimumEnclosingCircle returns the smallest circle containing all points,
// using Welzl's randomized incremental algorithm in expected linear time.
//
// The points are processed in a random order drawn from rng. The result does
// not depend on the order, only the running time does. If rng is nil, a new
// generator is seeded for this call. The points slice itself is not modified.
//
// It returns an error wrapping [ErrInvalidInput] if points is empty.
func MinimumEnclosingCircle(points []Point, rng *rand.Rand) (Circle, error) {
	if len(points) == 0 {
		return Circle{}, fmt.Errorf("minimum enclosing circle: %w: no points", ErrInvalidInput)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	pts := slices.Clone(points)
	rng.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})
	return welzl(pts), nil
}

// welzl is Welzl's recursion unrolled into three nested loops, one per point
// that is forced onto the boundary. Every circle is built by trivialCircle from
// at most three boundary points.
func welzl(pts []Point) Circle {
	var boundary [3]Point
	c := trivialCircle(boundary[:0])
	for i, p := range pts {
		if encloses(c, p) {
			continue
		}
		boundary[0] = p
		c = trivialCircle(boundary[:1])
		for j, q := range pts[:i] {
			if encloses(c, q) {
				continue
			}
			boundary[1] = q
			c = trivialCircle(boundary[:2])
			for _, r := range pts[:j] {
				if encloses(c, r) {
					continue
				}
				boundary[2] = r
				c = trivialCircle(boundary[:3])
			}
		}
	}
	return c
}

// encloses allows a relative slack of Epsilon so that boundary points,
// recomputed with round-off, don't force the circle to be rebuilt. The slack
// scales with the circle, so tiny point sets are not swallowed whole.
func encloses(c Circle, pt Point) bool {
	return pt.Distance(c.Center) <= c.Radius*(1+Epsilon)
}

// trivialCircle returns the smallest circle with all of boundary, which holds
// at most three points, on its circumference.
func trivialCircle(boundary []Point) Circle {
	switch len(boundary) {
	case 0:
		return Circle{}
	case 1:
		return Circle{Center: boundary[0]}
	case 2:
		return diameterCircle(boundary[0], boundary[1])
	case 3:
		a, b, c := boundary[0], boundary[1], boundary[2]
		if circ, d := circumcircle(a, b, c); d != 0 {
			return circ
		}
		// Exactly collinear. The circle over the two outermost points
		// encloses the third.
		best := diameterCircle(a, b)
		for _, cand := range [...]Circle{diameterCircle(a, c), diameterCircle(b, c)} {
			if cand.Radius > best.Radius {
				best = cand
			}
		}
		return best
	default:
		panic(fmt.Sprintf("trivialCircle called with %d boundary points", len(boundary)))
	}
}

func diameterCircle(a, b Point) Circle {
	return Circle{Center: a.Midpoint(b), Radius: a.Distance(b) / 2}
}
