package gcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxf-cam/internal/entity"
	"dxf-cam/pkg/geometry"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 200, opts.FeedRate)
	assert.Equal(t, 200.0, opts.SafeZ)
	assert.Equal(t, 0.0, opts.CutZ)
}

func TestGenerateSingleLine(t *testing.T) {
	entities := []entity.Entity{{
		Start: geometry.Point2D{X: 0, Y: 0},
		End:   geometry.Point2D{X: 10, Y: 0},
	}}

	lines := Generate(entities, DefaultOptions())

	// Preamble: setup, retract, tool change, staging, spindle, descent,
	// plunge, coolant, compensation.
	require.GreaterOrEqual(t, len(lines), 12)
	assert.Equal(t, "G00 G54 G17 G90 G40", lines[0])
	assert.Equal(t, "G00 Z200.00", lines[1])
	assert.Equal(t, "M6 T07", lines[2])
	assert.Equal(t, "G00 X100 Y100", lines[3])
	assert.Equal(t, "M03 S500", lines[4])
	assert.Equal(t, "G00 Z2", lines[5])
	assert.Equal(t, "G01 Z0.00 F200", lines[6])
	assert.Equal(t, "M07", lines[7])
	assert.Equal(t, "G01 G42 X80 Y0", lines[8])

	// First entity: rapid to start, plunge, then the cut move.
	assert.Equal(t, "G00 X0.00 Y0.00", lines[9])
	assert.Equal(t, "G01 Z0.00 F200", lines[10])
	assert.Equal(t, "G01 X10.00 Y0.00 F200", lines[11])

	// Postamble.
	assert.Equal(t, "G00 G40 Z200.00", lines[len(lines)-2])
	assert.Equal(t, "M30", lines[len(lines)-1])
}

func TestGenerateArc(t *testing.T) {
	center := geometry.Point2D{X: 5, Y: 0}
	entities := []entity.Entity{{
		Start:     geometry.Point2D{X: 0, Y: 0},
		End:       geometry.Point2D{X: 10, Y: 0},
		Radius:    5,
		Direction: entity.AntiClockwise,
		Center:    &center,
	}}

	lines := Generate(entities, DefaultOptions())
	assert.Contains(t, lines, "G03 X10.00 Y0.00 I5.00 J0.00 F200")
}

func TestGenerateClockwiseArc(t *testing.T) {
	center := geometry.Point2D{X: 0, Y: 5}
	entities := []entity.Entity{{
		Start:     geometry.Point2D{X: 10, Y: 10},
		End:       geometry.Point2D{X: 0, Y: 0},
		Radius:    5,
		Direction: entity.Clockwise,
		Center:    &center,
	}}

	lines := Generate(entities, DefaultOptions())
	assert.Contains(t, lines, "G02 X0.00 Y0.00 I-10.00 J-5.00 F200")
}

func TestGenerateCustomOptions(t *testing.T) {
	entities := []entity.Entity{{
		Start: geometry.Point2D{X: 0, Y: 0},
		End:   geometry.Point2D{X: 10, Y: 0},
	}}

	lines := Generate(entities, Options{FeedRate: 350, SafeZ: 50, CutZ: -1.5})

	assert.Contains(t, lines, "G00 Z50.00")
	assert.Contains(t, lines, "G01 Z-1.50 F350")
	assert.Contains(t, lines, "G01 X10.00 Y0.00 F350")
	assert.Equal(t, "G00 G40 Z50.00", lines[len(lines)-2])
}

func TestGenerateChain(t *testing.T) {
	center := geometry.Point2D{X: 0, Y: 5}
	entities := []entity.Entity{
		{Start: geometry.Point2D{X: 0, Y: 0}, End: geometry.Point2D{X: 10, Y: 0}},
		{Start: geometry.Point2D{X: 10, Y: 0}, End: geometry.Point2D{X: 10, Y: 10}},
		{
			Start:     geometry.Point2D{X: 10, Y: 10},
			End:       geometry.Point2D{X: 0, Y: 0},
			Radius:    5,
			Direction: entity.AntiClockwise,
			Center:    &center,
		},
	}

	lines := Generate(entities, DefaultOptions())

	// Rapid-to-start and plunge happen once, for the first entity only.
	rapids := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "G00 X") && l != "G00 X100 Y100" {
			rapids++
		}
	}
	assert.Equal(t, 1, rapids)

	assert.Contains(t, lines, "G01 X10.00 Y0.00 F200")
	assert.Contains(t, lines, "G01 X10.00 Y10.00 F200")
	assert.Contains(t, lines, "G03 X0.00 Y0.00 I-10.00 J-5.00 F200")
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "G00 Z200.00\nM30\n", Join([]string{"G00 Z200.00", "M30"}))
}
