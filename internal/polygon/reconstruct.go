// Package polygon reconstructs closed polygonal loops from an unordered
// collection of line segments.
package polygon

import (
	"dxf-cam/pkg/geometry"
)

// Polygon is an ordered sequence of segments forming a closed loop: each
// segment's end point is the next segment's start point, and the last
// segment's end point is the first segment's start point.
type Polygon []geometry.Segment

// Closed reports whether the loop closes and consecutive segments share
// endpoints within tol.
func (p Polygon) Closed(tol float64) bool {
	if len(p) < 2 {
		return false
	}
	for i := 0; i < len(p); i++ {
		next := p[(i+1)%len(p)]
		if !geometry.PointsEqual(p[i].End, next.Start, tol) {
			return false
		}
	}
	return true
}

// Vertices returns the start point of every segment, in loop order.
func (p Polygon) Vertices() []geometry.Point2D {
	vertices := make([]geometry.Point2D, len(p))
	for i, s := range p {
		vertices[i] = s.Start
	}
	return vertices
}

// Reconstruct groups an unordered set of segments into closed polygons by
// endpoint adjacency. Each chain is grown greedily from a seed segment:
// a remaining segment whose start matches the chain's current end extends
// the chain as-is, one whose end matches is flipped first. Chains that fail
// to close are dropped. Every input segment ends up in at most one polygon.
//
// Endpoint matching is exact: input coordinates are already rounded to
// 2 decimal places, so shared endpoints are bit-identical.
func Reconstruct(segments []geometry.Segment) []Polygon {
	placed := make([]bool, len(segments))
	var polygons []Polygon

	for seed := range segments {
		if placed[seed] {
			continue
		}
		placed[seed] = true

		chain := Polygon{segments[seed]}
		current := segments[seed]

		for {
			found := false
			for j, candidate := range segments {
				if placed[j] {
					continue
				}
				switch current.End {
				case candidate.Start:
					current = candidate
				case candidate.End:
					current = candidate.Reversed()
				default:
					continue
				}
				placed[j] = true
				chain = append(chain, current)
				found = true
				break
			}
			if !found {
				break
			}
		}

		if closed, ok := closeChain(chain); ok {
			polygons = append(polygons, closed)
		}
	}

	return polygons
}

// closeChain returns the chain as a polygon if it forms a closed loop of at
// least two segments. Open chains yield no polygon.
func closeChain(chain Polygon) (Polygon, bool) {
	if len(chain) < 2 {
		return nil, false
	}
	if chain[len(chain)-1].End != chain[0].Start {
		return nil, false
	}
	return chain, true
}
