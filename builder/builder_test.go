package builder

import (
	"errors"
	"testing"

	"github.com/golang/geo/s1"
)

func TestBuilderAddEdgeAfterAssembleReturnsErrAlreadyBuilt(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	a, c := ll(0, 0), ll(0, 10)
	if err := b.AddEdge(a, c); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, _, err := b.AssembleLoops(); err != nil {
		t.Fatalf("AssembleLoops: %v", err)
	}
	if err := b.AddEdge(a, c); !errors.Is(err, ErrAlreadyBuilt) {
		t.Errorf("AddEdge after assemble = %v, want ErrAlreadyBuilt", err)
	}
	if _, _, err := b.AssembleLoops(); !errors.Is(err, ErrAlreadyBuilt) {
		t.Errorf("second AssembleLoops = %v, want ErrAlreadyBuilt", err)
	}
}

func TestBuilderEmptyInputIsIdempotent(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	loops, unused, err := b.AssembleLoops()
	if err != nil {
		t.Fatalf("AssembleLoops: %v", err)
	}
	if len(loops) != 0 || len(unused) != 0 {
		t.Errorf("empty builder produced loops=%v unused=%v, want none", loops, unused)
	}
}

func TestBuilderAddLoopClosesBack(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	verts := []Point{ll(0, 0), ll(0, 10), ll(10, 5)}
	if err := b.AddLoop(verts); err != nil {
		t.Fatalf("AddLoop: %v", err)
	}
	loops, unused, err := b.AssembleLoops()
	if err != nil {
		t.Fatalf("AssembleLoops: %v", err)
	}
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}
	if len(loops) != 1 || len(loops[0].Vertices) != 3 {
		t.Fatalf("got loops %v, want one triangle", loops)
	}
}

// TestPropertyIdempotentUnderRebuildWithZeroRadius feeds a builder's
// emitted loops back into a fresh builder with no merge radius and checks
// that reassembling them reproduces the same set of loops up to rotation
// or reversal (loopSequenceKey is exactly this equivalence). The four
// subsquares from the S4 scenario give a non-trivial multi-loop input
// without any of the branch points that would make a single round-trip
// unrepresentative of the general case.
func TestPropertyIdempotentUnderRebuildWithZeroRadius(t *testing.T) {
	squares := [][]Point{
		{ll(0, 0), ll(0, 5), ll(5, 5), ll(5, 0)},
		{ll(0, 5), ll(0, 10), ll(5, 10), ll(5, 5)},
		{ll(5, 0), ll(5, 5), ll(10, 5), ll(10, 0)},
		{ll(5, 5), ll(5, 10), ll(10, 10), ll(10, 5)},
	}

	bd, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for i, sq := range squares {
		if err := bd.AddLoop(sq); err != nil {
			t.Fatalf("AddLoop %d: %v", i, err)
		}
	}
	first, unused, err := bd.AssembleLoops()
	if err != nil {
		t.Fatalf("AssembleLoops: %v", err)
	}
	if len(unused) != 0 {
		t.Fatalf("unused = %v, want none", unused)
	}

	rebuilt, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder (rebuild): %v", err)
	}
	for i, l := range first {
		if err := rebuilt.AddLoop(l.Vertices); err != nil {
			t.Fatalf("AddLoop (rebuild) %d: %v", i, err)
		}
	}
	second, unused2, err := rebuilt.AssembleLoops()
	if err != nil {
		t.Fatalf("AssembleLoops (rebuild): %v", err)
	}
	if len(unused2) != 0 {
		t.Fatalf("rebuild unused = %v, want none", unused2)
	}
	if len(second) != len(first) {
		t.Fatalf("rebuild produced %d loops, want %d", len(second), len(first))
	}

	firstKeys := make(map[string]bool, len(first))
	for _, l := range first {
		firstKeys[loopSequenceKey(l)] = true
	}
	for _, l := range second {
		if !firstKeys[loopSequenceKey(l)] {
			t.Errorf("rebuild produced a loop absent from the original assembly: %v", l.Vertices)
		}
	}
}

// TestPropertyIncreasingMergeRadiusNeverIncreasesUnused builds the same
// three-edge near-triangle (whose last edge lands 0.02 degrees short of
// closing back to its start) at increasing merge radii and checks that
// the unused-edge count never goes up as the radius grows: with no
// radius the triangle can't close at all, past the gap it closes cleanly,
// and no larger radius should ever reopen edges that a smaller one had
// already resolved.
func TestPropertyIncreasingMergeRadiusNeverIncreasesUnused(t *testing.T) {
	a, aNear, b, c := ll(0, 0), ll(0, 0.02), ll(0, 10), ll(10, 5)
	radii := []s1.Angle{0, degreesAngle(0.005), degreesAngle(0.05), degreesAngle(1)}

	var unusedCounts []int
	for _, r := range radii {
		bd, err := NewBuilder(WithVertexMergeRadius(r))
		if err != nil {
			t.Fatalf("NewBuilder radius %v: %v", r, err)
		}
		if err := bd.AddEdge(a, b); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		if err := bd.AddEdge(b, c); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		if err := bd.AddEdge(c, aNear); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		_, unused, err := bd.AssembleLoops()
		if err != nil {
			t.Fatalf("AssembleLoops radius %v: %v", r, err)
		}
		unusedCounts = append(unusedCounts, len(unused))
	}

	for i := 1; i < len(unusedCounts); i++ {
		if unusedCounts[i] > unusedCounts[i-1] {
			t.Errorf("unused count rose from %d to %d going from radius %v to %v",
				unusedCounts[i-1], unusedCounts[i], radii[i-1], radii[i])
		}
	}
	if unusedCounts[0] != 3 {
		t.Errorf("baseline (radius 0) unused = %d, want 3", unusedCounts[0])
	}
	if last := unusedCounts[len(unusedCounts)-1]; last != 0 {
		t.Errorf("largest radius unused = %d, want 0", last)
	}
}
