package builder

import "testing"

func TestAssemblePolygonOrientsHoleOppositeShell(t *testing.T) {
	store := NewEdgeStore(false)
	outer := []Point{ll(0, 0), ll(0, 20), ll(20, 20), ll(20, 0)}
	inner := []Point{ll(5, 5), ll(5, 10), ll(10, 10), ll(10, 5)}

	for _, loop := range [][]Point{outer, inner} {
		for i := range loop {
			store.AddEdge(loop[i], loop[(i+1)%len(loop)])
		}
	}

	opts, _ := NewOptions()
	loops, unused := AssemblePolygon(store, opts)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}

	depth := LoopDepth(loops)
	for i, l := range loops {
		wantCCW := depth[i]%2 == 0
		isCCW := l.Area() > 0
		if wantCCW != isCCW {
			t.Errorf("loop %d at depth %d: wantCCW=%v isCCW=%v", i, depth[i], wantCCW, isCCW)
		}
	}
}

func TestAssemblePolygonValidateRejectsShortLoop(t *testing.T) {
	store := NewEdgeStore(false)
	a, b := ll(0, 0), ll(0, 1)
	// a->b->a closes as a two-vertex loop, which Validate rejects as too
	// short.
	store.AddEdge(a, b)
	store.AddEdge(b, a)

	opts, _ := NewOptions(WithValidate())
	loops, unused := AssemblePolygon(store, opts)
	if len(loops) != 0 {
		t.Fatalf("got %d loops, want 0", len(loops))
	}
	if len(unused) != 2 {
		t.Fatalf("unused = %v, want 2 edges", unused)
	}
}

func TestLoopSequenceKeyInvariantUnderRotation(t *testing.T) {
	a, b, c := triangleVerts()
	l1 := NewLoop([]Point{a, b, c})
	l2 := NewLoop([]Point{b, c, a})
	if loopSequenceKey(l1) != loopSequenceKey(l2) {
		t.Errorf("expected rotation-invariant keys to match")
	}
}

func TestLoopSequenceKeyInvariantUnderReversal(t *testing.T) {
	a, b, c := triangleVerts()
	l1 := NewLoop([]Point{a, b, c})
	l2 := NewLoop([]Point{a, c, b})
	if loopSequenceKey(l1) != loopSequenceKey(l2) {
		t.Errorf("expected reversal-invariant keys to match")
	}
}

func TestLoopSequenceKeyDiffersForDifferentLoops(t *testing.T) {
	a, b, c := triangleVerts()
	l1 := NewLoop([]Point{a, b, c})
	l2 := NewLoop([]Point{a, b, ll(-10, -10)})
	if loopSequenceKey(l1) == loopSequenceKey(l2) {
		t.Errorf("expected different loops to have different keys")
	}
}

// TestLoopSequenceKeyDiffersForSameVertexSetDifferentConnectivity is the
// case loopVertexSetKey (sorted-set comparison) got wrong: a quadrilateral
// and its "bowtie" diagonal-swap share all four corners but connect them
// differently, and are not the same loop.
func TestLoopSequenceKeyDiffersForSameVertexSetDifferentConnectivity(t *testing.T) {
	p00, p01, p10, p11 := ll(0, 0), ll(0, 10), ll(10, 0), ll(10, 10)
	square := NewLoop([]Point{p00, p01, p11, p10})
	bowtie := NewLoop([]Point{p00, p11, p01, p10})
	if loopSequenceKey(square) == loopSequenceKey(bowtie) {
		t.Errorf("expected loops with the same vertex set but different connectivity to have different keys")
	}
}
