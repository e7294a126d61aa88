// Package entity models the drawing entities (lines and arcs) that make up a
// toolpath, and arranges an unordered collection of them into a single
// connected traversal.
package entity

import (
	"encoding/json"
	"fmt"

	"dxf-cam/pkg/geometry"
)

// Direction is the winding sense of an arc. Lines have no direction.
type Direction int

const (
	// DirectionNone marks a line, which has no winding sense.
	DirectionNone Direction = iota
	// Clockwise winding.
	Clockwise
	// AntiClockwise winding.
	AntiClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case AntiClockwise:
		return "Anti-clockwise"
	default:
		return ""
	}
}

// Flipped returns the opposite winding sense. DirectionNone stays unchanged.
func (d Direction) Flipped() Direction {
	switch d {
	case Clockwise:
		return AntiClockwise
	case AntiClockwise:
		return Clockwise
	default:
		return d
	}
}

// MarshalJSON encodes the direction as its display string.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction from its display string.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "":
		*d = DirectionNone
	case "Clockwise":
		*d = Clockwise
	case "Anti-clockwise":
		*d = AntiClockwise
	default:
		return fmt.Errorf("unknown direction %q", s)
	}
	return nil
}

// Entity is a line or arc segment of a toolpath. Start and End are in the
// working coordinate frame; StartRef and EndRef carry the same points in the
// drawing's reference frame. Radius 0 marks a line; a positive radius marks
// an arc, which also carries a center and a winding direction.
//
// SlNo and Name are assigned by Arrange in traversal order and are zero/empty
// before arrangement.
type Entity struct {
	SlNo      int               `json:"sl_no"`
	Name      string            `json:"name"`
	Start     geometry.Point2D  `json:"start_point"`
	End       geometry.Point2D  `json:"end_point"`
	StartRef  geometry.Point2D  `json:"start_point_ref"`
	EndRef    geometry.Point2D  `json:"end_point_ref"`
	Radius    float64           `json:"radius"`
	Direction Direction         `json:"direction"`
	Center    *geometry.Point2D `json:"center,omitempty"`
	CenterRef *geometry.Point2D `json:"center_ref,omitempty"`
}

// IsLine reports whether the entity is a line segment.
func (e Entity) IsLine() bool {
	return e.Radius == 0
}

// Reversed returns a copy of the entity traversed in the opposite direction:
// start and end points are swapped in both frames and the winding sense is
// flipped. The original entity is left untouched.
func (e Entity) Reversed() Entity {
	r := e
	r.Start, r.End = e.End, e.Start
	r.StartRef, r.EndRef = e.EndRef, e.StartRef
	r.Direction = e.Direction.Flipped()
	return r
}
