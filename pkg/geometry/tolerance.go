package geometry

import "math"

// DefaultTolerance is the absolute tolerance used when comparing drawing
// coordinates. Upstream coordinates are rounded to 2 decimal places, so
// points closer than this are the same point.
const DefaultTolerance = 0.001

// EqualWithin reports whether two values differ by less than tol.
func EqualWithin(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// PointsEqual reports whether two points coincide within tol on both axes.
// Topology decisions (chaining, polygon closure) must go through this
// function rather than comparing coordinates directly.
func PointsEqual(p, q Point2D, tol float64) bool {
	return EqualWithin(p.X, q.X, tol) && EqualWithin(p.Y, q.Y, tol)
}
