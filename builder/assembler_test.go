package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func triangleVerts() (a, b, c Point) {
	return ll(0, 0), ll(0, 10), ll(10, 5)
}

func TestAssembleLoopsSimpleTriangle(t *testing.T) {
	a, b, c := triangleVerts()
	store := NewEdgeStore(false)
	store.AddEdge(a, b)
	store.AddEdge(b, c)
	store.AddEdge(c, a)

	opts, err := NewOptions()
	if err != nil {
		t.Fatalf("NewOptions: %v", err)
	}

	loops, unused := AssembleLoops(store, opts)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}
	if len(loops[0].Vertices) != 3 {
		t.Fatalf("loop has %d vertices, want 3", len(loops[0].Vertices))
	}
}

// TestAssembleLoopsSimpleTriangleVertexSet checks the assembled loop's
// vertex set against the input triangle regardless of which vertex the
// walk happened to start from, since AssembleLoops makes no guarantee
// about rotation.
func TestAssembleLoopsSimpleTriangleVertexSet(t *testing.T) {
	a, b, c := triangleVerts()
	store := NewEdgeStore(false)
	store.AddEdge(a, b)
	store.AddEdge(b, c)
	store.AddEdge(c, a)

	opts, err := NewOptions()
	if err != nil {
		t.Fatalf("NewOptions: %v", err)
	}

	loops, _ := AssembleLoops(store, opts)
	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}

	want := []Point{a, b, c}
	less := func(x, y Point) bool { return pointLess(x, y) }
	if diff := cmp.Diff(want, loops[0].Vertices, cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("loop vertex set mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLoopsDeadEndGoesToUnused(t *testing.T) {
	a, b, _ := triangleVerts()
	store := NewEdgeStore(false)
	store.AddEdge(a, b)

	opts, _ := NewOptions()
	loops, unused := AssembleLoops(store, opts)
	if len(loops) != 0 {
		t.Fatalf("got %d loops, want 0", len(loops))
	}
	if len(unused) != 1 || unused[0].Src != a || unused[0].Dst != b {
		t.Fatalf("unused = %v, want [{a b}]", unused)
	}
}

func TestAssembleLoopsUndirectedConsumesBothDirections(t *testing.T) {
	a, b, c := triangleVerts()
	store := NewEdgeStore(false)
	for _, e := range [][2]Point{{a, b}, {b, a}, {b, c}, {c, b}, {c, a}, {a, c}} {
		store.AddEdge(e[0], e[1])
	}

	opts, _ := NewOptions(WithUndirectedEdges())
	loops, unused := AssembleLoops(store, opts)
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none (all 6 directed edges consumed via sibling retirement)", unused)
	}
	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}
}
