// Package dxf adapts parsed DXF drawings into the pipeline's core types.
// Parsing of the DXF format itself is delegated to github.com/rpaloschi/dxf-go;
// this package only normalizes LINE, ARC and CIRCLE entities.
package dxf

import (
	"fmt"
	"io"
	"math"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"

	"dxf-cam/internal/entity"
	"dxf-cam/pkg/geometry"
)

// ArcSpec is a raw arc as stored in the drawing: center, radius and angular
// bounds in degrees.
type ArcSpec struct {
	Center     geometry.Point2D `json:"center"`
	Radius     float64          `json:"radius"`
	StartAngle float64          `json:"start_angle"`
	EndAngle   float64          `json:"end_angle"`
}

// CircleSpec is a raw circle as stored in the drawing.
type CircleSpec struct {
	Center geometry.Point2D `json:"center"`
	Radius float64          `json:"radius"`
}

// Drawing is the normalized content of a DXF model space. All coordinates are
// rounded to 2 decimal places on import; the Z coordinate is dropped.
type Drawing struct {
	Lines   []geometry.Segment `json:"lines"`
	Arcs    []ArcSpec          `json:"arcs"`
	Circles []CircleSpec       `json:"circles"`
}

// Read parses a DXF stream and collects its LINE, ARC and CIRCLE entities.
// Other entity kinds are ignored.
func Read(r io.Reader) (*Drawing, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("parsing DXF stream: %w", err)
	}

	d := &Drawing{}
	for _, ent := range doc.Entities.Entities {
		switch e := ent.(type) {
		case *entities.Line:
			d.Lines = append(d.Lines, geometry.Segment{
				Start: point2D(e.Start),
				End:   point2D(e.End),
			})
		case *entities.Arc:
			d.Arcs = append(d.Arcs, ArcSpec{
				Center:     point2D(e.Center),
				Radius:     geometry.RoundTo(e.Radius, 2),
				StartAngle: e.StartAngle,
				EndAngle:   e.EndAngle,
			})
		case *entities.Circle:
			d.Circles = append(d.Circles, CircleSpec{
				Center: point2D(e.Center),
				Radius: geometry.RoundTo(e.Radius, 2),
			})
		}
	}
	return d, nil
}

// Entities converts the drawing's lines and arcs into chaining-domain
// entities. The optional ucs transform maps reference-frame (drawing-native)
// coordinates into the working frame; when nil, both frames coincide.
//
// Arc endpoints are derived from center, radius and the angular bounds. The
// winding direction is Clockwise when the end angle is greater than the start
// angle and Anti-clockwise otherwise, matching the drawing convention this
// pipeline has always used.
func Entities(d *Drawing, ucs *geometry.AffineTransform) []entity.Entity {
	result := make([]entity.Entity, 0, len(d.Lines)+len(d.Arcs))

	for _, l := range d.Lines {
		result = append(result, entity.Entity{
			Start:    toWorking(l.Start, ucs),
			End:      toWorking(l.End, ucs),
			StartRef: l.Start,
			EndRef:   l.End,
		})
	}

	for _, a := range d.Arcs {
		startRef := pointOnArc(a.Center, a.Radius, a.StartAngle)
		endRef := pointOnArc(a.Center, a.Radius, a.EndAngle)

		direction := entity.AntiClockwise
		if a.EndAngle > a.StartAngle {
			direction = entity.Clockwise
		}

		center := toWorking(a.Center, ucs)
		centerRef := a.Center

		result = append(result, entity.Entity{
			Start:     toWorking(startRef, ucs),
			End:       toWorking(endRef, ucs),
			StartRef:  startRef,
			EndRef:    endRef,
			Radius:    a.Radius,
			Direction: direction,
			Center:    &center,
			CenterRef: &centerRef,
		})
	}

	return result
}

// pointOnArc computes the point at angleDeg degrees on a circle, rounded to
// 2 decimal places.
func pointOnArc(center geometry.Point2D, radius, angleDeg float64) geometry.Point2D {
	rad := angleDeg * math.Pi / 180
	return geometry.Point2D{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}.Round(2)
}

// toWorking maps a reference-frame point into the working frame.
func toWorking(p geometry.Point2D, ucs *geometry.AffineTransform) geometry.Point2D {
	if ucs == nil {
		return p
	}
	return ucs.Apply(p).Round(2)
}

// point2D converts a DXF point to a rounded 2D point, dropping Z.
func point2D(p core.Point) geometry.Point2D {
	return geometry.Point2D{X: p.X, Y: p.Y}.Round(2)
}
