package offset

import (
	"gonum.org/v1/gonum/mat"

	"dxf-cam/pkg/geometry"
)

// CornerPoints derives the vertex loop of an offset polygon from its
// independently offset edges. Each edge's implicit line equation is
// intersected with its cyclic successor's; the ordered intersection points
// are the corrected corners, and consumers connect point[i] to
// point[(i+1) mod n] to trace the final shape.
//
// Parallel adjacent edges (including collinear ones) produce no corner for
// that pair; the pair is skipped, not reported as an error.
func CornerPoints(edges []geometry.Segment) []geometry.Point2D {
	n := len(edges)
	if n == 0 {
		return nil
	}

	equations := make([]geometry.LineEquation, n)
	for i, e := range edges {
		equations[i] = geometry.LineEquationOf(e)
	}

	corners := make([]geometry.Point2D, 0, n)
	for i := 0; i < n; i++ {
		if p, ok := Intersect(equations[i], equations[(i+1)%n]); ok {
			corners = append(corners, p)
		}
	}
	return corners
}

// Intersect solves the 2x2 linear system of two line equations with Cramer's
// rule. The second return is false when the lines are parallel (zero
// determinant). The intersection point is rounded to 2 decimal places.
func Intersect(eq1, eq2 geometry.LineEquation) (geometry.Point2D, bool) {
	coeffs := mat.NewDense(2, 2, []float64{
		eq1.A, eq1.B,
		eq2.A, eq2.B,
	})

	denominator := mat.Det(coeffs)
	if denominator == 0 {
		return geometry.Point2D{}, false
	}

	x := (eq1.B*(-eq2.C) - eq2.B*(-eq1.C)) / denominator
	y := (eq2.A*(-eq1.C) - eq1.A*(-eq2.C)) / denominator

	return geometry.Point2D{X: x, Y: y}.Round(2), true
}
