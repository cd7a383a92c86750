package geom

import "math"

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeDegrees maps an angle in degrees into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	// Tiny negative inputs round up to exactly 360.
	if deg >= 360.0 {
		deg = 0
	}
	return deg
}
