package geometry

// LineEquation holds the coefficients of the implicit line form
// A*x + B*y = C.
type LineEquation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// LineEquationOf derives the implicit equation of the line through a
// segment's endpoints: A = y2-y1, B = -(x2-x1), C = A*x1 + B*y1.
func LineEquationOf(s Segment) LineEquation {
	a := s.End.Y - s.Start.Y
	b := -(s.End.X - s.Start.X)
	return LineEquation{
		A: a,
		B: b,
		C: a*s.Start.X + b*s.Start.Y,
	}
}

// IsDegenerate reports whether the equation came from a zero-length segment,
// in which case (A, B) is (0, 0) and the equation describes no line.
func (e LineEquation) IsDegenerate() bool {
	return e.A == 0 && e.B == 0
}
