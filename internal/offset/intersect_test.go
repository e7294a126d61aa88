package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxf-cam/pkg/geometry"
)

func TestIntersect(t *testing.T) {
	// Vertical line x=5 and horizontal line y=5 meet at (5,5).
	p, ok := Intersect(
		geometry.LineEquation{A: 1, B: 0, C: 5},
		geometry.LineEquation{A: 0, B: 1, C: 5},
	)
	require.True(t, ok)
	assert.Equal(t, geometry.Point2D{X: 5, Y: 5}, p)
}

func TestIntersectFromSegments(t *testing.T) {
	eq1 := geometry.LineEquationOf(seg(5, 0, 5, 10))
	eq2 := geometry.LineEquationOf(seg(0, 5, 10, 5))

	p, ok := Intersect(eq1, eq2)
	require.True(t, ok)
	assert.Equal(t, geometry.Point2D{X: 5, Y: 5}, p)
}

func TestIntersectParallel(t *testing.T) {
	_, ok := Intersect(
		geometry.LineEquation{A: 1, B: 0, C: 5},
		geometry.LineEquation{A: 1, B: 0, C: 10},
	)
	assert.False(t, ok)
}

func TestIntersectCollinear(t *testing.T) {
	eq := geometry.LineEquationOf(seg(0, 0, 10, 0))
	_, ok := Intersect(eq, eq)
	assert.False(t, ok)
}

func TestIntersectRounds(t *testing.T) {
	// Lines y = x/3 and x = 7 meet at y = 2.333..., rounded to 2 decimals.
	eq1 := geometry.LineEquationOf(seg(0, 0, 3, 1))
	eq2 := geometry.LineEquationOf(seg(7, 0, 7, 10))

	p, ok := Intersect(eq1, eq2)
	require.True(t, ok)
	assert.Equal(t, geometry.Point2D{X: 7, Y: 2.33}, p)
}

func TestCornerPointsEmpty(t *testing.T) {
	assert.Nil(t, CornerPoints(nil))
}
