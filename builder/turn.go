package builder

import "github.com/golang/geo/s2"

// leastLeftTurn picks, among candidates, the continuation with the smallest
// signed turning angle from the incoming edge (prev -> at) — i.e. the
// continuation that turns least to the left (most sharply to the right, if
// all candidates turn left to some degree). This is the rule spec.md S4.E
// specifies for the greedy assembly walk: consistently taking the next edge
// in clockwise order around the vertex traces the outer boundary of the
// embedded planar graph, which is what keeps the walk on simple loops.
//
// s2.TurnAngle(a, b, c) returns the angle of the turn at b from edge a->b to
// edge b->c, positive when the turn is to the left. Exact ties (possible
// only when two candidates sit on the same bearing from at, at different
// distances) are broken by batchDotConst: the candidate whose unnormalized
// offset (c - at) has the larger dot product with the unnormalized incoming
// offset (at - prev) wins, which on a shared bearing ahead is the farther
// candidate; any remaining tie favors the earlier candidate.
func leastLeftTurn(prev, at Point, candidates []Point) int {
	if len(candidates) <= 1 {
		return 0
	}

	dirs := make([]Point, len(candidates))
	for i, c := range candidates {
		dirs[i] = Point{Vector: c.Vector.Sub(at.Vector)}
	}
	incoming := Point{Vector: at.Vector.Sub(prev.Vector)}
	alignment := batchDotConst(incoming, dirs)

	best := 0
	bestAngle := s2.TurnAngle(prev, at, candidates[0])
	for i := 1; i < len(candidates); i++ {
		a := s2.TurnAngle(prev, at, candidates[i])
		switch {
		case a < bestAngle:
			bestAngle, best = a, i
		case a == bestAngle && alignment[i] > alignment[best]:
			best = i
		}
	}
	return best
}
