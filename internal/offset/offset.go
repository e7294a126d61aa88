// Package offset computes tool-compensation geometry: perpendicular offsets
// of line segments and polygons, radius offsets of circles and arcs, and the
// corner intersections that join independently offset edges back into a
// closed shape.
package offset

import (
	"errors"
	"math"

	"dxf-cam/internal/polygon"
	"dxf-cam/pkg/geometry"
)

// ErrZeroLengthSegment is returned when a segment has no direction to be
// perpendicular to.
var ErrZeroLengthSegment = errors.New("cannot offset a zero-length segment")

// Offset entity types for round geometry.
const (
	TypeCircle = "CIRCLE"
	TypeArc    = "ARC"
)

// Entity is an offset circle or arc, ready for display or persistence.
// StartAngle and EndAngle are in degrees and only meaningful for arcs.
type Entity struct {
	Type       string           `json:"type"`
	Center     geometry.Point2D `json:"center"`
	Radius     float64          `json:"radius"`
	StartAngle float64          `json:"start_angle,omitempty"`
	EndAngle   float64          `json:"end_angle,omitempty"`
}

// Segment translates a segment along its own perpendicular by the signed
// distance. The perpendicular is the segment's direction vector rotated 90
// degrees counter-clockwise, so positive distances offset to the left of the
// travel direction. Resulting coordinates are rounded to 2 decimal places.
func Segment(s geometry.Segment, distance float64) (geometry.Segment, error) {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return geometry.Segment{}, ErrZeroLengthSegment
	}

	perp := geometry.Point2D{X: -dy / length, Y: dx / length}.Scale(distance)

	return geometry.Segment{
		Start: s.Start.Add(perp).Round(2),
		End:   s.End.Add(perp).Round(2),
	}, nil
}

// Polygon offsets every edge of a polygon independently. The returned edges
// are NOT joined at corners; CornerPoints derives the corrected vertex loop.
func Polygon(p polygon.Polygon, distance float64) ([]geometry.Segment, error) {
	edges := make([]geometry.Segment, len(p))
	for i, s := range p {
		offset, err := Segment(s, distance)
		if err != nil {
			return nil, err
		}
		edges[i] = offset
	}
	return edges, nil
}

// Circle offsets a circle by growing or shrinking its radius. A circle whose
// offset radius is not positive vanishes: the second return is false and no
// entity is emitted.
func Circle(center geometry.Point2D, radius, distance float64) (Entity, bool) {
	newRadius := radius + distance
	if newRadius <= 0 {
		return Entity{}, false
	}
	return Entity{Type: TypeCircle, Center: center, Radius: newRadius}, true
}

// Arc offsets an arc the same way as a circle. The angular bounds and center
// are preserved unchanged; only the radius moves.
func Arc(center geometry.Point2D, radius, startAngle, endAngle, distance float64) (Entity, bool) {
	newRadius := radius + distance
	if newRadius <= 0 {
		return Entity{}, false
	}
	return Entity{
		Type:       TypeArc,
		Center:     center,
		Radius:     newRadius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}, true
}
