package builder

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EdgeIndex is the edge collaborator spec.md S6 calls the "edge index":
// fixed-radius queries over geodesic arcs, supporting within(p,r)
// enumeration of arcs whose DistanceToEdge is <= r. Like PointIndex, it
// is a deliberately simple linear scan rather than a full ShapeIndex —
// that acceleration structure is out of spec.md's scope (S1), and the
// splicer only ever runs it against the current, already-small edge
// multiset.
type EdgeIndex struct {
	edges []Edge
}

// NewEdgeIndex creates an empty index.
func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{}
}

// Add inserts an edge.
func (idx *EdgeIndex) Add(a, b Point) {
	idx.edges = append(idx.edges, Edge{Src: a, Dst: b})
}

// Len returns the number of edges in the index.
func (idx *EdgeIndex) Len() int {
	return len(idx.edges)
}

// EdgeAt returns the edge at position i.
func (idx *EdgeIndex) EdgeAt(i int) Edge {
	return idx.edges[i]
}

// Within returns the positions of every edge whose geodesic distance from
// p to the shorter arc is <= r, inclusive.
func (idx *EdgeIndex) Within(p Point, r s1.Angle) []int {
	if len(idx.edges) == 0 {
		return nil
	}
	limit := s1.ChordAngleFromAngle(r)
	var out []int
	for i, e := range idx.edges {
		if s2.DistanceFromSegment(p, e.Src, e.Dst) <= limit {
			out = append(out, i)
		}
	}
	return out
}
