// Package report renders arranged entities as human-readable text: a labeled
// coordinate listing and a fixed-width summary table.
package report

import (
	"fmt"
	"strings"

	"dxf-cam/internal/entity"
)

// Build renders the coordinate report. With useRef false the working-frame
// coordinates are listed; with useRef true the reference-frame (WCS)
// coordinates are listed instead, with WCS-suffixed labels.
func Build(entities []entity.Entity, useRef bool) string {
	var b strings.Builder
	b.WriteString("Vertexes and Coordinates \n\n")

	for _, e := range entities {
		if e.IsLine() {
			if useRef {
				fmt.Fprintf(&b, "LINE: Start Point WCS: (%.2f, %.2f)\n", e.StartRef.X, e.StartRef.Y)
				fmt.Fprintf(&b, "      End Point WCS: (%.2f, %.2f)\n", e.EndRef.X, e.EndRef.Y)
			} else {
				fmt.Fprintf(&b, "LINE: Start Point: (%.2f, %.2f)\n", e.Start.X, e.Start.Y)
				fmt.Fprintf(&b, "      End Point: (%.2f, %.2f)\n", e.End.X, e.End.Y)
			}
			continue
		}

		if useRef {
			fmt.Fprintf(&b, "ARC: Start Point WCS: (%.2f, %.2f)\n", e.StartRef.X, e.StartRef.Y)
			fmt.Fprintf(&b, "     End Point WCS: (%.2f, %.2f)\n", e.EndRef.X, e.EndRef.Y)
			fmt.Fprintf(&b, "     Center WCS: (%.2f, %.2f)\n", e.CenterRef.X, e.CenterRef.Y)
		} else {
			fmt.Fprintf(&b, "ARC: Start Point: (%.2f, %.2f)\n", e.Start.X, e.Start.Y)
			fmt.Fprintf(&b, "     End Point: (%.2f, %.2f)\n", e.End.X, e.End.Y)
			fmt.Fprintf(&b, "     Center: (%.2f, %.2f)\n", e.Center.X, e.Center.Y)
		}
		fmt.Fprintf(&b, "     Radius: %.2f, Direction: %s\n", e.Radius, e.Direction)
	}

	return b.String()
}

// Table renders the arranged entities as a fixed-width listing in traversal
// order, one row per entity.
func Table(entities []entity.Entity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-8s%-10s%-25s%-25s%-10s%-15s\n",
		"SL No", "NAME", "START", "END", "RADIUS", "DIRECTION")
	b.WriteString(strings.Repeat("-", 93))
	b.WriteByte('\n')

	for _, e := range entities {
		start := fmt.Sprintf("(%.2f, %.2f)", e.Start.X, e.Start.Y)
		end := fmt.Sprintf("(%.2f, %.2f)", e.End.X, e.End.Y)
		fmt.Fprintf(&b, "%-8d%-10s%-25s%-25s%-10.2f%-15s\n",
			e.SlNo, e.Name, start, end, e.Radius, e.Direction)
	}

	return b.String()
}
