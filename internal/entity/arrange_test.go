package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxf-cam/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D {
	return geometry.Point2D{X: x, Y: y}
}

func line(x1, y1, x2, y2 float64) Entity {
	return Entity{
		Start:    pt(x1, y1),
		End:      pt(x2, y2),
		StartRef: pt(x1, y1),
		EndRef:   pt(x2, y2),
	}
}

func arc(start, end, center geometry.Point2D, radius float64, dir Direction) Entity {
	c := center
	return Entity{
		Start:     start,
		End:       end,
		StartRef:  start,
		EndRef:    end,
		Radius:    radius,
		Direction: dir,
		Center:    &c,
		CenterRef: &c,
	}
}

// assertConnected checks that consecutive entities share end/start points
// within tolerance.
func assertConnected(t *testing.T, arranged []Entity) {
	t.Helper()
	for i := 0; i < len(arranged)-1; i++ {
		assert.True(t,
			geometry.PointsEqual(arranged[i].End, arranged[i+1].Start, geometry.DefaultTolerance),
			"entity %d end %v does not meet entity %d start %v",
			i, arranged[i].End, i+1, arranged[i+1].Start)
	}
}

func TestArrangeClosedLoop(t *testing.T) {
	// Square sides, shuffled, one supplied backwards.
	input := []Entity{
		line(10, 0, 10, 10),
		line(0, 10, 0, 0),
		line(0, 0, 10, 0),
		line(0, 10, 10, 10), // traversal needs this one reversed
	}

	arranged := Arrange(input, geometry.DefaultTolerance)
	require.Len(t, arranged, 4)

	// Seeded at the lexicographically smallest start point.
	assert.Equal(t, pt(0, 0), arranged[0].Start)
	assertConnected(t, arranged)
	assert.True(t, geometry.PointsEqual(
		arranged[3].End, arranged[0].Start, geometry.DefaultTolerance))

	for i, e := range arranged {
		assert.Equal(t, i+1, e.SlNo)
	}
	assert.Equal(t,
		[]string{"Line1", "Line2", "Line3", "Line4"},
		[]string{arranged[0].Name, arranged[1].Name, arranged[2].Name, arranged[3].Name})
}

func TestArrangeMixedLineArc(t *testing.T) {
	// Two lines plus an arc closing the loop back to the origin.
	input := []Entity{
		arc(pt(10, 10), pt(0, 0), pt(0, 5), 5, AntiClockwise),
		line(10, 0, 10, 10),
		line(0, 0, 10, 0),
	}

	arranged := Arrange(input, geometry.DefaultTolerance)
	require.Len(t, arranged, 3)

	assert.Equal(t, pt(0, 0), arranged[0].Start)
	assertConnected(t, arranged)

	assert.Equal(t, []int{1, 2, 3}, []int{arranged[0].SlNo, arranged[1].SlNo, arranged[2].SlNo})
	assert.Equal(t, "Line1", arranged[0].Name)
	assert.Equal(t, "Line2", arranged[1].Name)
	assert.Equal(t, "Arc1", arranged[2].Name)
	assert.Equal(t, AntiClockwise, arranged[2].Direction)
}

func TestArrangeReversesEntities(t *testing.T) {
	// The second entity connects end-to-end and must be flipped.
	input := []Entity{
		line(0, 0, 10, 0),
		line(20, 0, 10, 0),
	}

	arranged := Arrange(input, geometry.DefaultTolerance)
	require.Len(t, arranged, 2)

	assert.Equal(t, pt(10, 0), arranged[1].Start)
	assert.Equal(t, pt(20, 0), arranged[1].End)

	// The input records are untouched.
	assert.Equal(t, pt(20, 0), input[1].Start)
	assert.Equal(t, pt(10, 0), input[1].End)
}

func TestArrangeBrokenChain(t *testing.T) {
	// Two disconnected loops are concatenated into one sequence.
	near := []Entity{
		line(0, 0, 10, 0),
		line(10, 0, 0, 0),
	}
	far := []Entity{
		line(100, 0, 110, 0),
		line(110, 0, 100, 0),
	}
	input := append(append([]Entity{}, far...), near...)

	arranged := Arrange(input, geometry.DefaultTolerance)
	require.Len(t, arranged, 4)

	// First sub-chain starts at the global leftmost entity, the second at
	// the leftmost remaining one.
	assert.Equal(t, pt(0, 0), arranged[0].Start)
	assert.Equal(t, pt(100, 0), arranged[2].Start)

	// Serials run across sub-chains without gaps.
	for i, e := range arranged {
		assert.Equal(t, i+1, e.SlNo)
	}
}

func TestArrangeScanOrderTieBreak(t *testing.T) {
	// Both candidates touch the chain end at (10,0) within tolerance: the
	// earlier entity matches by its end point, the later one exactly by its
	// start point. First match in input order wins, so the end-matching
	// entity is taken (reversed) despite the exact start match later on.
	input := []Entity{
		line(0, 0, 10, 0),
		line(20, 0, 10.0005, 0),
		line(10, 0, 10, 10),
	}

	arranged := Arrange(input, geometry.DefaultTolerance)
	require.Len(t, arranged, 3)

	assert.Equal(t, pt(10.0005, 0), arranged[1].Start)
	assert.Equal(t, pt(20, 0), arranged[1].End)
}

func TestArrangeEmpty(t *testing.T) {
	assert.Nil(t, Arrange(nil, geometry.DefaultTolerance))
}
