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

import "github.com/golang/geo/s1"

type edgeKey struct{ src, dst Point }

// SpliceEdges implements spec.md S4.D: for every vertex in vertices and
// every edge (a,b) in store with the vertex not incident to it, if the
// vertex lies within spliceRadius of the edge, the edge is replaced by
// (a,v) and (v,b). It runs to a fixed point, since a newly introduced
// sub-edge must itself be rechecked against nearby vertices.
//
// spliceRadius <= 0 disables splicing entirely.
func SpliceEdges(store *EdgeStore, vertices []Point, spliceRadius s1.Angle, logger Logger) {
	if spliceRadius <= 0 {
		return
	}
	if logger == nil {
		logger = noopLogger{}
	}

	for pass := 1; ; pass++ {
		if !splicePass(store, vertices, spliceRadius) {
			logger.Debugf("splicer converged after %d pass(es)", pass)
			return
		}
	}
}

// splicePass runs a single splice pass over store and reports whether any
// edge was split. When several candidate vertices lie within
// spliceRadius of the same edge, only the one closest to that edge's
// midpoint (picked via go-highway's batched nearest-point search,
// batchNearest) actually splices it this pass; the rest are re-evaluated
// against the resulting sub-edges on the next pass.
func splicePass(store *EdgeStore, vertices []Point, spliceRadius s1.Angle) bool {
	idx := NewEdgeIndex()
	for _, e := range store.AllEdges() {
		idx.Add(e.Src, e.Dst)
	}

	var order []edgeKey
	nearby := make(map[edgeKey][]Point)
	for _, v := range vertices {
		for _, ei := range idx.Within(v, spliceRadius) {
			e := idx.EdgeAt(ei)
			if v == e.Src || v == e.Dst {
				continue
			}
			key := edgeKey{e.Src, e.Dst}
			if _, seen := nearby[key]; !seen {
				order = append(order, key)
			}
			nearby[key] = append(nearby[key], v)
		}
	}

	changed := false
	for _, key := range order {
		if !store.Erase(key.src, key.dst) {
			continue
		}
		mid := Point{Vector: key.src.Vector.Add(key.dst.Vector).Normalize()}
		ni, _ := batchNearest(mid, nearby[key])
		v := nearby[key][ni]

		store.AddEdge(key.src, v)
		store.AddEdge(v, key.dst)
		changed = true
	}
	return changed
}
