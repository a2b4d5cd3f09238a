package builder

import "math"

// AssemblePolygon implements spec.md S4.E's polygon mode: it runs
// AssembleLoops (which already applies validate-mode rejection, per
// spec.md S4.A), deduplicates loops that retrace the same cyclic vertex
// sequence (the "same loop emitted twice" case; see DESIGN.md), and
// finally fixes orientation by containment depth — even depth (shells)
// must wind counter-clockwise, odd depth (holes) clockwise.
func AssemblePolygon(store *EdgeStore, opts Options) ([]*Loop, []Edge) {
	loops, unused := AssembleLoops(store, opts)

	loops, dupUnused := dedupLoops(loops, opts.Logger)
	unused = append(unused, dupUnused...)

	depth := LoopDepth(loops)
	for i, l := range loops {
		wantCCW := depth[i]%2 == 0
		isCCW := l.Area() > 0
		if wantCCW != isCCW {
			l.Reverse()
		}
	}

	return loops, unused
}

func loopEdges(l *Loop) []Edge {
	edges := make([]Edge, l.NumEdges())
	for i := range edges {
		edges[i] = l.Edge(i)
	}
	return edges
}

// dedupLoops removes loops that retrace the same cyclic vertex sequence as
// an earlier-kept loop, up to rotation or winding direction, routing the
// duplicate's edges to the unused output. Two loops that merely happen to
// visit the same set of vertices in a different order are different
// loops and are both kept — only a literal re-walk of the same boundary
// counts as a duplicate.
func dedupLoops(loops []*Loop, logger Logger) ([]*Loop, []Edge) {
	seen := make(map[string]bool, len(loops))
	var kept []*Loop
	var unused []Edge
	for _, l := range loops {
		key := loopSequenceKey(l)
		if seen[key] {
			logger.Warnf("%v", ErrDuplicateLoop)
			unused = append(unused, loopEdges(l)...)
			continue
		}
		seen[key] = true
		kept = append(kept, l)
	}
	return kept, unused
}

// loopSequenceKey builds a rotation- and reversal-invariant key for a
// loop's cyclic vertex sequence: among every rotation of the sequence and
// of its reversal, the lexicographically smallest byte encoding is the
// canonical form. Unlike sorting the vertices into a set, this preserves
// connectivity — two loops sharing the same vertices but joined in a
// different cyclic order encode to different keys.
func loopSequenceKey(l *Loop) string {
	verts := l.Vertices
	n := len(verts)
	if n == 0 {
		return ""
	}

	reversed := make([]Point, n)
	for i, p := range verts {
		reversed[n-1-i] = p
	}

	var best string
	for _, seq := range [2][]Point{verts, reversed} {
		for start := 0; start < n; start++ {
			buf := make([]byte, 0, n*24)
			for i := 0; i < n; i++ {
				p := seq[(start+i)%n]
				buf = appendFloat(buf, p.X)
				buf = appendFloat(buf, p.Y)
				buf = appendFloat(buf, p.Z)
			}
			if candidate := string(buf); best == "" || candidate < best {
				best = candidate
			}
		}
	}
	return best
}

func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func appendFloat(buf []byte, f float64) []byte {
	bits := math.Float64bits(f)
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(bits>>(8*i)))
	}
	return buf
}
