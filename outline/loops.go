package outline

import (
	"iter"
	"slices"
)

// Loops returns an iterator over the closed loops formed by the border's
// edges. Each loop starts from the lowest remaining edge identity, for
// reproducible output, and follows successor links until the chain
// returns to its start. Every edge belongs to exactly one loop.
//
// Loops walks a snapshot of the border, so the border may keep
// accumulating rectangles afterward. The sequence can be ranged over
// multiple times; each range takes a fresh snapshot.
func (b *Border) Loops() iter.Seq[[]Edge] {
	return func(yield func([]Edge) bool) {
		remaining := make(map[int]Edge, len(b.edges))
		for _, e := range b.edges {
			remaining[e.ID] = e
		}


		for len(remaining) > 0 {
			first := -1
			for id := range remaining {
				if first < 0 || id < first {
					first = id
				}
			}

			var loop []Edge
			id := first
			for {
				edge, ok := remaining[id]
				if !ok {
					break
				}
				delete(remaining, id)
				loop = append(loop, edge)
				id = edge.Next
			}

			if !yield(loop) {
				return
			}
		}
	}
}

// Pairs returns an iterator over consecutive edge pairs of a loop,
// including the closing pair of last and first edge. The shared vertex of
// each pair is a corner of the boundary polygon, so ranging over Pairs
// visits every corner exactly once.
func Pairs(loop []Edge) iter.Seq2[Edge, Edge] {
	return func(yield func(Edge, Edge) bool) {
		if len(loop) == 0 {
			return
		}
		for i := range loop {
			next := loop[(i+1)%len(loop)]
			if !yield(loop[i], next) {
				return
			}
		}
	}
}

// CornerPoints returns the boundary vertices of the rectangles' union by
// corner parity: a point that appears an odd number of times among the
// rectangles' corners lies on the outline. The result is sorted by Y then
// X for reproducibility.
func CornerPoints(rects []Rect) []Point {
	parity := make(map[Point]bool)

	for _, r := range rects {
		corners := [4]Point{
			r.Min,
			{X: r.Max.X, Y: r.Min.Y},
			r.Max,
			{X: r.Min.X, Y: r.Max.Y},
		}
		for _, c := range corners {
			if parity[c] {
				delete(parity, c)
			} else {
				parity[c] = true
			}
		}
	}

	points := make([]Point, 0, len(parity))
	for p := range parity {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b Point) int {
		if a.Y != b.Y {
			if a.Y < b.Y {
				return -1
			}
			return 1
		}
		if a.X < b.X {
			return -1
		}
		if a.X > b.X {
			return 1
		}
		return 0
	})
	return points
}
