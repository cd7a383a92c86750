package geom

import "errors"

var (
	// ErrInvalidInput is returned when an operation receives too few points or
	// vertices to be meaningful.
	ErrInvalidInput = errors.New("geom: invalid input")

	// ErrDegenerate is returned when the input is collinear or has zero extent,
	// so that the result would require dividing by a (near) zero determinant.
	ErrDegenerate = errors.New("geom: degenerate input")
)
