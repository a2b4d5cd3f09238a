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

// AssembleLoops implements spec.md S4.E's primary procedure: repeatedly
// choose a starting edge, walk the store taking the least-left-turn
// continuation at each vertex, and either emit a closed simple loop or
// back out a stuck attempt. It runs until no edges remain, returning every
// assembled loop and, separately, every edge that could not be incorporated
// into a loop.
func AssembleLoops(store *EdgeStore, opts Options) ([]*Loop, []Edge) {
	var loops []*Loop
	var unused []Edge
	triedFailed := make(map[Edge]bool)

	for store.Count() > 0 {
		start, ok := pickStartEdge(store, triedFailed, opts.StartEdgeSeed)
		if !ok {
			break
		}

		verts, closed := walkFrom(store, start, opts.UndirectedEdges)
		if closed {
			l := NewLoop(verts)
			if opts.Validate {
				if err := l.Validate(); err != nil {
					opts.Logger.Warnf("rejecting loop: %v", err)
					unused = append(unused, loopEdges(l)...)
					continue
				}
			}
			loops = append(loops, l)
			continue
		}

		// Stuck: the starting edge itself is retired to the unused list, all
		// other consumed edges were already restored inside walkFrom.
		if opts.Logger != nil {
			opts.Logger.Debugf("assembly: start edge %v dead-ended; retired to unused", start)
		}
		triedFailed[start] = true
		store.Erase(start.Src, start.Dst)
		unused = append(unused, start)
	}

	// Any edges belonging only to tried-and-failed starts that were never
	// retried (e.g. the store became momentarily empty of eligible starts
	// while edges technically remained) fall through here; in practice the
	// loop above drains the store exactly, so this is a safety net.
	unused = append(unused, store.AllEdges()...)

	if opts.Validate {
		var crossUnused []Edge
		loops, crossUnused = rejectCrossingLoops(loops, opts.Logger)
		unused = append(unused, crossUnused...)
	}

	return loops, unused
}

// rejectCrossingLoops extends the per-loop simplicity check with the
// cross-loop case spec.md's Non-goals call out: the builder cannot
// re-intersect crossing edges, so two independently-closed loops that
// cross each other without ever sharing a vertex (never spliced or
// clustered together) are not valid output either. Both loops in every
// crossing pair are rejected and their edges routed to unused.
func rejectCrossingLoops(loops []*Loop, logger Logger) ([]*Loop, []Edge) {
	bad := make([]bool, len(loops))
	for i := range loops {
		for j := i + 1; j < len(loops); j++ {
			if loops[i].CrossesAny(loops[j]) {
				bad[i], bad[j] = true, true
			}
		}
	}

	var kept []*Loop
	var unused []Edge
	for i, l := range loops {
		if bad[i] {
			logger.Warnf("%v", ErrLoopsCross)
			unused = append(unused, loopEdges(l)...)
			continue
		}
		kept = append(kept, l)
	}
	return kept, unused
}

// pickStartEdge returns the next starting edge to try, honoring the debug
// rotation hook (Options.StartEdgeSeed) and excluding edges already marked
// tried-and-failed. ok is false when no eligible edge remains.
func pickStartEdge(store *EdgeStore, triedFailed map[Edge]bool, seed int64) (Edge, bool) {
	var candidates []Edge
	for _, src := range store.Sources() {
		for _, dst := range store.Outgoing(src) {
			e := Edge{Src: src, Dst: dst}
			if triedFailed[e] {
				continue
			}
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return Edge{}, false
	}
	perm := lcgPermutation(len(candidates), seed)
	return candidates[perm[0]], true
}

// walkFrom walks the store starting at edge start, popping edges as it
// goes. On success it returns the vertex sequence of the closed loop (the
// cut prefix, if any, has already been restored to the store) and true. On
// a dead end it restores every popped edge and returns (nil, false).
func walkFrom(store *EdgeStore, start Edge, undirected bool) ([]Point, bool) {
	path := []Point{start.Src}
	var consumed []Edge

	cur := start
	for {
		store.Erase(cur.Src, cur.Dst)
		consumed = append(consumed, cur)
		path = append(path, cur.Dst)

		if j := indexOfPoint(path[:len(path)-1], cur.Dst); j >= 0 {
			loopVerts := append([]Point(nil), path[j:len(path)-1]...)

			// The prefix before the cycle start was only a tentative
			// approach path; it did not contribute an edge to the closed
			// cycle, so it goes back into the pool for future attempts.
			for _, e := range consumed[:j] {
				store.AddEdge(e.Src, e.Dst)
			}

			if undirected {
				for _, e := range consumed[j:] {
					store.Erase(e.Dst, e.Src)
				}
			}

			return loopVerts, true
		}

		next, ok := nextContinuation(store, cur.Src, cur.Dst)
		if !ok {
			for _, e := range consumed {
				store.AddEdge(e.Src, e.Dst)
			}
			return nil, false
		}
		cur = Edge{Src: cur.Dst, Dst: next}
	}
}

// nextContinuation picks the outgoing edge from at that turns least to the
// left of the incoming edge (prev -> at), per spec.md S4.E, delegating the
// actual turning-angle comparison to leastLeftTurn. Candidates are passed
// in insertion sequence order, so any tie leastLeftTurn itself doesn't
// resolve (i.e. a genuine repeat) favors the earliest-inserted edge,
// matching the store's enumeration order.
//
// The edge directly back to prev (the sibling of the edge just traversed)
// is excluded whenever a genuine alternative exists: its turning angle is
// the exact U-turn case, where the sign of the turn is not well defined,
// and real S2Builder graph traversal likewise never reconsiders the edge it
// just arrived on except when it is the only way out of a dead end.
func nextContinuation(store *EdgeStore, prev, at Point) (Point, bool) {
	dsts := store.Outgoing(at)
	if len(dsts) == 0 {
		return Point{}, false
	}

	var filtered []Point
	for _, d := range dsts {
		if d != prev {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) > 0 {
		dsts = filtered
	}

	best := leastLeftTurn(prev, at, dsts)
	return dsts[best], true
}

func indexOfPoint(path []Point, p Point) int {
	for i, v := range path {
		if v == p {
			return i
		}
	}
	return -1
}
