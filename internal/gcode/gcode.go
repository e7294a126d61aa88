// Package gcode converts an arranged entity chain into a cutter-compensated
// G-code toolpath.
package gcode

import (
	"fmt"
	"strings"

	"dxf-cam/internal/entity"
)

// Options configures the emitted toolpath.
type Options struct {
	// FeedRate is the cutting feed rate in mm/min.
	FeedRate int
	// SafeZ is the retract height for rapid moves.
	SafeZ float64
	// CutZ is the cutting depth.
	CutZ float64
}

// DefaultOptions returns the standard machine setup.
func DefaultOptions() Options {
	return Options{
		FeedRate: 200,
		SafeZ:    200.0,
		CutZ:     0.0,
	}
}

// Generate converts an arranged entity chain into an ordered sequence of
// G-code instruction lines. The chain is assumed to be connected end-to-start;
// a broken chain produces a toolpath with an unannounced jump.
//
// All coordinate values are formatted with exactly 2 decimal places.
func Generate(entities []entity.Entity, opts Options) []string {
	var lines []string

	// Work offset G54, XY plane, absolute programming, cancel compensation.
	lines = append(lines, "G00 G54 G17 G90 G40")
	lines = append(lines, fmt.Sprintf("G00 Z%.2f", opts.SafeZ))
	lines = append(lines, "M6 T07")
	lines = append(lines, "G00 X100 Y100")
	lines = append(lines, "M03 S500")
	lines = append(lines, "G00 Z2")
	lines = append(lines, fmt.Sprintf("G01 Z%.2f F%d", opts.CutZ, opts.FeedRate))
	lines = append(lines, "M07")
	// Cutter compensation right, move to the staging start offset.
	lines = append(lines, "G01 G42 X80 Y0")

	first := true
	for _, e := range entities {
		if first {
			lines = append(lines, fmt.Sprintf("G00 X%.2f Y%.2f", e.Start.X, e.Start.Y))
			lines = append(lines, fmt.Sprintf("G01 Z%.2f F%d", opts.CutZ, opts.FeedRate))
			first = false
		}

		if e.IsLine() {
			lines = append(lines, fmt.Sprintf("G01 X%.2f Y%.2f F%d", e.End.X, e.End.Y, opts.FeedRate))
			continue
		}

		// Arc center relative to the start point (IJ format).
		i := e.Center.X - e.Start.X
		j := e.Center.Y - e.Start.Y

		command := "G03"
		if e.Direction == entity.Clockwise {
			command = "G02"
		}

		lines = append(lines, fmt.Sprintf("%s X%.2f Y%.2f I%.2f J%.2f F%d",
			command, e.End.X, e.End.Y, i, j, opts.FeedRate))
	}

	// Cancel cutter compensation, retract, end program.
	lines = append(lines, fmt.Sprintf("G00 G40 Z%.2f", opts.SafeZ))
	lines = append(lines, "M30")

	return lines
}

// Join renders instruction lines as a newline-joined program with a trailing
// newline, the form written to disk.
func Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
