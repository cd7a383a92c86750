package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FitCircle fits a circle to points using Kåsa's algebraic least-squares
// method. The center minimizes the algebraic residuals x² + y² − 2ax − 2by − c,
// which is fast and closed-form but biased towards smaller circles when the
// points cover only a short arc. The radius is the mean distance from the
// center to the points.
//
// It returns an error wrapping [ErrInvalidInput] for fewer than three points
// and one wrapping [ErrDegenerate] if the points are collinear.
func FitCircle(points []Point) (Circle, error) {
	if len(points) < 3 {
		return Circle{}, fmt.Errorf("fit circle: %w: need at least 3 points, got %d", ErrInvalidInput, len(points))
	}

	n := float64(len(points))
	var sx, sy, sxx, syy, sxy, sxxx, syyy, sxxy, sxyy float64
	for _, pt := range points {
		x, y := pt.Splat()
		x2 := x * x
		y2 := y * y
		sx += x
		sy += y
		sxx += x2
		syy += y2
		sxy += x * y
		sxxx += x2 * x
		syyy += y2 * y
		sxxy += x2 * y
		sxyy += x * y2
	}

	// Normal equations for the center (a, b):
	//
	//	| c d | |a|   |g|
	//	| d e | |b| = |h|
	c := n*sxx - sx*sx
	d := n*sxy - sx*sy
	e := n*syy - sy*sy
	g := 0.5 * (n*sxxx + n*sxyy - sx*sxx - sx*syy)
	h := 0.5 * (n*syyy + n*sxxy - sy*syy - sy*sxx)
	if math.Abs(c*e-d*d) < Epsilon {
		return Circle{}, fmt.Errorf("fit circle: %w: points are collinear", ErrDegenerate)
	}

	normal := mat.NewSymDense(2, []float64{c, d, d, e})
	rhs := mat.NewVecDense(2, []float64{g, h})
	var sol mat.VecDense
	if err := sol.SolveVec(normal, rhs); err != nil {
		return Circle{}, fmt.Errorf("fit circle: %w: %v", ErrDegenerate, err)
	}

	center := Pt(sol.AtVec(0), sol.AtVec(1))
	var r float64
	for _, pt := range points {
		r += center.Distance(pt)
	}
	return Circle{Center: center, Radius: r / n}, nil
}
