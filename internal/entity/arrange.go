package entity

import (
	"fmt"

	"dxf-cam/pkg/geometry"
)

// Arrange orders an unordered collection of entities into a single connected
// traversal and assigns serial numbers and names in traversal order.
//
// The chain is seeded with the entity whose start point is lexicographically
// smallest (x first, then y). From the chain's last entity, the first
// unplaced entity whose start point matches the current end point (within
// tol) is appended as-is; failing that, the first whose end point matches is
// appended reversed. When neither exists the chain is broken: a new sub-chain
// is seeded from the lexicographically smallest remaining entity and appended
// to the same output, so disconnected loops are concatenated rather than
// reported separately.
//
// When several candidates fall within tolerance of the same end point the
// first one in input order wins, for both the as-is and the reversed check.
// The input slice is never modified; reversal produces a fresh record.
func Arrange(entities []Entity, tol float64) []Entity {
	if len(entities) == 0 {
		return nil
	}

	placed := make([]bool, len(entities))
	arranged := make([]Entity, 0, len(entities))

	take := func(i int, e Entity) {
		placed[i] = true
		arranged = append(arranged, e)
	}

	seed := leftmost(entities, placed)
	take(seed, entities[seed])

	for len(arranged) < len(entities) {
		if i, next, ok := nextConnected(arranged[len(arranged)-1], entities, placed, tol); ok {
			take(i, next)
			continue
		}
		// Broken chain: start a new sub-chain.
		seed = leftmost(entities, placed)
		take(seed, entities[seed])
	}

	number(arranged)
	return arranged
}

// nextConnected scans the unplaced entities in input order for one that
// connects to the end point of last. An entity matching by its start point is
// taken verbatim; one matching by its end point is taken reversed. Both
// checks run per candidate before moving to the next, so an end-to-end match
// early in the scan beats a start-to-end match later in it.
func nextConnected(last Entity, entities []Entity, placed []bool, tol float64) (int, Entity, bool) {
	for i, e := range entities {
		if placed[i] {
			continue
		}
		if geometry.PointsEqual(last.End, e.Start, tol) {
			return i, e, true
		}
		if geometry.PointsEqual(last.End, e.End, tol) {
			return i, e.Reversed(), true
		}
	}
	return 0, Entity{}, false
}

// leftmost returns the index of the unplaced entity with the
// lexicographically smallest start point (x first, then y).
func leftmost(entities []Entity, placed []bool) int {
	best := -1
	for i, e := range entities {
		if placed[i] {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := entities[best].Start
		if e.Start.X < b.X || (e.Start.X == b.X && e.Start.Y < b.Y) {
			best = i
		}
	}
	return best
}

// number assigns 1-based serial numbers in traversal order and Line{k}/Arc{k}
// names with independent per-kind counters.
func number(arranged []Entity) {
	lineCount, arcCount := 1, 1
	for i := range arranged {
		arranged[i].SlNo = i + 1
		if arranged[i].IsLine() {
			arranged[i].Name = fmt.Sprintf("Line%d", lineCount)
			lineCount++
		} else {
			arranged[i].Name = fmt.Sprintf("Arc%d", arcCount)
			arcCount++
		}
	}
}
