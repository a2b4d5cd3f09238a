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

import "github.com/golang/geo/s2"

// Loop is a closed chain of geodesic edges produced by the assembler. The
// vertex slice does not repeat the start vertex at the end: an edge runs
// from Vertices[i] to Vertices[(i+1)%len(Vertices)].
type Loop struct {
	Vertices []Point
}

// NewLoop wraps vertices as a Loop without validation. Use Validate to check
// spec.md S4.E's simplicity and length requirements before trusting a loop.
func NewLoop(vertices []Point) *Loop {
	return &Loop{Vertices: append([]Point(nil), vertices...)}
}

// Reverse flips the loop's winding order in place.
func (l *Loop) Reverse() {
	for i, j := 0, len(l.Vertices)-1; i < j; i, j = i+1, j-1 {
		l.Vertices[i], l.Vertices[j] = l.Vertices[j], l.Vertices[i]
	}
}

// NumEdges returns the number of edges (equal to the number of vertices).
func (l *Loop) NumEdges() int {
	return len(l.Vertices)
}

// Edge returns the i'th edge, wrapping from the last vertex back to the
// first.
func (l *Loop) Edge(i int) Edge {
	n := len(l.Vertices)
	return Edge{Src: l.Vertices[i], Dst: l.Vertices[(i+1)%n]}
}

// Validate checks the structural requirements spec.md S4.E places on an
// assembled loop: at least 3 vertices, no repeated vertex, and no crossing
// between non-adjacent edges (a loop whose boundary crosses itself, like
// the bowtie of S8's self-crossing scenario, is not simple even though
// every vertex in it is individually distinct).
func (l *Loop) Validate() error {
	if len(l.Vertices) < 3 {
		return ErrLoopTooShort
	}
	seen := make(map[Point]bool, len(l.Vertices))
	for _, v := range l.Vertices {
		if seen[v] {
			return ErrLoopNotSimple
		}
		seen[v] = true
	}
	n := len(l.Vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share an endpoint by construction
			}
			a, b := l.Edge(i), l.Edge(j)
			if s2.CrossingSign(a.Src, a.Dst, b.Src, b.Dst) == s2.Cross {
				return ErrLoopNotSimple
			}
		}
	}
	return nil
}

// CrossesAny reports whether any edge of l crosses any edge of other.
// Edges that share an endpoint are adjacent, not crossing, by
// construction (splicing or clustering is what turns a near-miss into a
// shared vertex before assembly; what remains here is a genuine crossing
// the builder never resolved).
func (l *Loop) CrossesAny(other *Loop) bool {
	for i := 0; i < l.NumEdges(); i++ {
		ea := l.Edge(i)
		for j := 0; j < other.NumEdges(); j++ {
			eb := other.Edge(j)
			if ea.Src == eb.Src || ea.Src == eb.Dst || ea.Dst == eb.Src || ea.Dst == eb.Dst {
				continue
			}
			if s2.CrossingSign(ea.Src, ea.Dst, eb.Src, eb.Dst) == s2.Cross {
				return true
			}
		}
	}
	return false
}

// Area returns the loop's spherical surface area in steradians, signed
// according to orientation (positive for a CCW loop as seen from outside the
// sphere, i.e. one enclosing the smaller region).
func (l *Loop) Area() float64 {
	if len(l.Vertices) < 3 {
		return 0
	}
	// Girard's theorem via a fixed origin fan, matching the standard
	// spherical-polygon-area-by-triangulation approach: sum the signed area
	// of the triangles (origin, v[i], v[i+1]).
	origin := l.Vertices[0]
	var total float64
	for i := 1; i+1 < len(l.Vertices); i++ {
		a, b := l.Vertices[i], l.Vertices[i+1]
		total += float64(s2.RobustSign(origin, a, b)) * s2.PointArea(origin, a, b)
	}
	return total
}

// ContainsPoint reports whether p lies in the interior of l. It uses the
// same reference-point crossing-parity technique as the real S2 Loop type:
// s2.OriginPoint is fixed and known to lie outside any loop small enough to
// fit in a hemisphere (which is the only kind of loop this builder ever
// assembles), so the parity of crossings along the edge from OriginPoint to
// p determines containment directly.
func (l *Loop) ContainsPoint(p Point) bool {
	if len(l.Vertices) < 3 {
		return false
	}
	origin := s2.OriginPoint()
	crossings := 0
	n := len(l.Vertices)
	for i := 0; i < n; i++ {
		a := l.Vertices[i]
		b := l.Vertices[(i+1)%n]
		if s2.CrossingSign(origin, p, a, b) == s2.Cross {
			crossings++
		}
	}
	return crossings%2 == 1
}
