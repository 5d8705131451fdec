// Package outline reduces a union of axis-aligned rectangles to its
// minimal boundary: a set of disjoint closed loops of directed edges.
//
// Rectangles are inserted one at a time. Each contributes four directed
// unit-winding edges, and insertion merges collinear adjacent edges, so
// boundaries shared between neighboring rectangles cancel and only the
// outer perimeter survives. After all rectangles are inserted the edges'
// successor links partition them into closed cycles, extracted with
// [Border.Loops].
//
// Edges are stored by value and reference each other through integer
// identities rather than pointers, so the structure has no cyclic
// ownership and copies cheaply.
package outline

// Point is an integer grid coordinate. Viewers typically produce these
// from block corner coordinates in cell space.
type Point struct {
	X, Y uint64
}

// Pt is a convenience function to create a Point.
func Pt(x, y uint64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle. Min is the top-left corner and Max
// the bottom-right, exclusive, matching block corner conventions.
type Rect struct {
	Min, Max Point
}

// Edge is a directed axis-aligned segment of a rectangle-union boundary.
// ID is the edge's identity and Next the identity of its successor in the
// boundary loop. Identities survive merging, which keeps predecessor
// links valid as edges absorb their collinear neighbors.
type Edge struct {
	ID    int
	Next  int
	Start Point
	End   Point
}

// Border accumulates rectangle edges and merges them into the minimal
// boundary of the rectangles' union.
//
// The zero value is an empty border ready for use.
type Border struct {
	nextID int
	edges  []Edge
}

// AddRect inserts the four edges of r, wound clockwise starting from the
// top edge, merging them with any collinear adjacent edges already
// present. Two rectangles sharing a full edge cancel that edge entirely,
// leaving only their combined perimeter.
func (b *Border) AddRect(r Rect) {
	left, top := r.Min.X, r.Min.Y
	right, bottom := r.Max.X, r.Max.Y

	id := b.nextID
	b.addEdge(id, id+1, Point{left, top}, Point{right, top})
	b.addEdge(id+1, id+2, Point{right, top}, Point{right, bottom})
	b.addEdge(id+2, id+3, Point{right, bottom}, Point{left, bottom})
	b.addEdge(id+3, id, Point{left, bottom}, Point{left, top})
	b.nextID += 4
}

// addEdge inserts one directed edge, scanning the existing edges for
// collinear neighbors to absorb. An existing edge ending where the new
// one starts extends the new edge backward and donates its identity, so
// links pointing at the absorbed edge stay valid; an existing edge
// starting where the new one ends extends it forward and donates its
// successor. Edges that collapse to a point are dropped.
//
// The scan assumes at most one collinear-adjacent match on each side.
// Configurations where three or more rectangles meet at a single point
// can violate that and split the boundary into extra loops; see the
// regression test for the pinned behavior.
func (b *Border) addEdge(id, next int, start, end Point) {
	if start.X != end.X && start.Y != end.Y {
		panic("outline: edge must be horizontal or vertical")
	}

	kept := b.edges[:0:0]
	for _, edge := range b.edges {
		// An edge ending at our start, collinear with us: merge backward.
		if edge.End == start && (edge.Start.X == end.X || edge.Start.Y == end.Y) {
			start = edge.Start
			id = edge.ID
			continue
		}
		// An edge starting at our end, collinear with us: merge forward.
		if end == edge.Start && (start.X == edge.End.X || start.Y == edge.End.Y) {
			end = edge.End
			next = edge.Next
			continue
		}
		kept = append(kept, edge)
	}

	if start != end {
		kept = append(kept, Edge{ID: id, Next: next, Start: start, End: end})
	}

	b.edges = kept
}

// Edges returns the accumulated boundary edges in storage order. The
// result aliases the border's internal state; treat it as read-only.
func (b *Border) Edges() []Edge {
	return b.edges
}

// Len returns the number of boundary edges accumulated so far.
func (b *Border) Len() int {
	return len(b.edges)
}
