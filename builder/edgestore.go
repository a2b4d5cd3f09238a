// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package builder

import (
	"math"

	"github.com/golang/geo/s2"
)

// Point is a unit vector: a point on the unit sphere. It is a plain alias
// for the real geometric type so that callers never have to convert.
type Point = s2.Point

// degenerateEdgeEpsilon is the geodesic distance below which two
// endpoints are treated as coincident (or, measured from the antipode, as
// antipodal), per SPEC_FULL.md S3.
const degenerateEdgeEpsilon = 1e-15

// IsDegenerateEdge reports whether a and b are close enough that an edge
// between them would have zero effective length, or are antipodal, so that
// the shorter geodesic arc between them is not defined.
func IsDegenerateEdge(a, b Point) bool {
	angle := float64(a.Vector.Angle(b.Vector))
	return angle < degenerateEdgeEpsilon || angle > math.Pi-degenerateEdgeEpsilon
}

// Edge is a directed edge: the shorter geodesic arc from Src to Dst.
type Edge struct {
	Src, Dst Point
}

// EdgeStore is the multiset of directed edges described in spec.md S4.B:
// a mapping from src to an ordered-by-insertion bag of dst values, with
// canonical insertion (optionally XOR-cancelling), removal and
// enumeration. Enumeration order of sources is the insertion order of
// each source's first occurrence, so loop assembly is reproducible.
type EdgeStore struct {
	xor bool

	bag       map[Point][]Point
	order     []Point
	firstSeen map[Point]bool
	count     int
}

// NewEdgeStore creates an empty store. When xor is true, AddEdge
// implements symmetric-difference semantics (spec.md S3 "XOR rule").
func NewEdgeStore(xor bool) *EdgeStore {
	return &EdgeStore{
		xor:       xor,
		bag:       make(map[Point][]Point),
		firstSeen: make(map[Point]bool),
	}
}

// AddEdge inserts a directed edge, honoring XOR semantics if enabled.
// Degenerate edges (zero-length or antipodal) are rejected and never stored. It
// returns true if the multiset gained a net edge, false if the edge was
// degenerate or cancelled by XOR.
func (s *EdgeStore) AddEdge(a, b Point) bool {
	if IsDegenerateEdge(a, b) {
		return false
	}
	if s.xor {
		if s.removeOne(a, b) {
			return false
		}
	}
	s.touch(a)
	s.bag[a] = append(s.bag[a], b)
	s.count++
	return true
}

// Erase removes a single occurrence of (src,dst), if present.
func (s *EdgeStore) Erase(src, dst Point) bool {
	return s.removeOne(src, dst)
}

func (s *EdgeStore) removeOne(src, dst Point) bool {
	bucket := s.bag[src]
	for i, d := range bucket {
		if d == dst {
			s.bag[src] = append(bucket[:i], bucket[i+1:]...)
			s.count--
			return true
		}
	}
	return false
}

func (s *EdgeStore) touch(v Point) {
	if !s.firstSeen[v] {
		s.firstSeen[v] = true
		s.order = append(s.order, v)
	}
}

// Outgoing enumerates the destinations of edges starting at src, in
// insertion order — the order nextContinuation relies on to break exact
// turning-angle ties.
func (s *EdgeStore) Outgoing(src Point) []Point {
	out := make([]Point, len(s.bag[src]))
	copy(out, s.bag[src])
	return out
}

// Count returns the total number of edges currently stored.
func (s *EdgeStore) Count() int {
	return s.count
}

// Sources returns every vertex that has ever been used as an edge's
// source, in the order each first appeared. Vertices whose outgoing
// bucket has since been fully drained are still included; callers that
// need only active sources should check len(Outgoing(v)) > 0.
func (s *EdgeStore) Sources() []Point {
	out := make([]Point, len(s.order))
	copy(out, s.order)
	return out
}

// AllEdges enumerates every edge currently in the store, grouped by
// source in enumeration order and by insertion order within each source.
func (s *EdgeStore) AllEdges() []Edge {
	edges := make([]Edge, 0, s.count)
	for _, src := range s.order {
		for _, dst := range s.bag[src] {
			edges = append(edges, Edge{Src: src, Dst: dst})
		}
	}
	return edges
}

// Vertices returns the set of distinct points that appear as an endpoint
// of some edge currently in the store, in first-occurrence order across
// sources and then destinations.
func (s *EdgeStore) Vertices() []Point {
	seen := make(map[Point]bool, len(s.order))
	var out []Point
	add := func(p Point) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, src := range s.order {
		bucket := s.bag[src]
		if len(bucket) == 0 {
			continue
		}
		add(src)
		for _, dst := range bucket {
			add(dst)
		}
	}
	return out
}
