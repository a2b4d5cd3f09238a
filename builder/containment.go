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

// ContainsLoop reports whether outer contains inner, using a representative
// vertex of inner: since the builder only ever assembles loops that fit
// within a hemisphere (spec scope), testing containment of any single
// vertex of inner against outer is sufficient — a loop this builder
// produces cannot partially straddle another.
//
// This is the "external loop-containment oracle" spec.md's polygon mode
// calls out as a pluggable collaborator; it is grounded on the chain/shell/
// hole relationship modeled by akhenakh-geo/s2/shape_nesting_query.go, here
// simplified to pairwise point-in-loop tests rather than a full nesting
// query over a shared ShapeIndex.
func ContainsLoop(outer, inner *Loop) bool {
	if outer == inner || len(inner.Vertices) == 0 {
		return false
	}
	return outer.ContainsPoint(inner.Vertices[0])
}

// LoopDepth computes, for each loop in loops, the number of ancestor loops
// that contain it: the immediate parent of a loop is the smallest-area loop
// (among those that contain it) other than itself. Depth 0 means the loop
// has no parent (a top-level shell).
func LoopDepth(loops []*Loop) []int {
	n := len(loops)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	for i, l := range loops {
		bestArea := 0.0
		found := false
		for j, candidate := range loops {
			if i == j || !ContainsLoop(candidate, l) {
				continue
			}
			a := absArea(candidate)
			if !found || a < bestArea {
				bestArea = a
				parent[i] = j
				found = true
			}
		}
	}
	depth := make([]int, n)
	for i := range loops {
		d := 0
		cur := i
		for parent[cur] >= 0 {
			d++
			cur = parent[cur]
			if d > n {
				break // cycle guard; should not happen for well-formed input
			}
		}
		depth[i] = d
	}
	return depth
}

func absArea(l *Loop) float64 {
	a := l.Area()
	if a < 0 {
		return -a
	}
	return a
}
