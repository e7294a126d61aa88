// Package geometry provides the basic geometric types used throughout the
// pipeline: 2D points, line segments and implicit line equations.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Round returns the point with both coordinates rounded to the given number
// of decimal places. Drawing coordinates are kept at 2 decimals throughout
// the pipeline.
func (p Point2D) Round(decimals int) Point2D {
	return Point2D{X: RoundTo(p.X, decimals), Y: RoundTo(p.Y, decimals)}
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}

// Segment represents a directed line segment between two points.
type Segment struct {
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

// NewSegment creates a segment from start to end.
func NewSegment(start, end Point2D) Segment {
	return Segment{Start: start, End: end}
}

// Reversed returns the segment with start and end swapped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}
