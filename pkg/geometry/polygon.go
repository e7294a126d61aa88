package geometry

// SignedArea computes the signed area of the polygon described by the vertex
// loop using the shoelace formula. The result is positive for
// counter-clockwise winding and negative for clockwise winding.
func SignedArea(vertices []Point2D) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	return sum / 2
}

// IsClockwise reports whether the vertex loop winds clockwise.
func IsClockwise(vertices []Point2D) bool {
	return SignedArea(vertices) < 0
}
