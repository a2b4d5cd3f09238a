package builder

import "testing"

func TestLeastLeftTurnPicksSharpestRight(t *testing.T) {
	// Walking north (south -> origin), candidates to the west, east and
	// straight ahead. Turning towards the west is a left turn, towards the
	// east a right turn; the least-left (most negative signed angle)
	// continuation is east.
	prev := ll(-1, 0)
	at := ll(0, 0)
	west := ll(1, -1)
	east := ll(1, 1)
	straight := ll(1, 0)

	candidates := []Point{west, straight, east}
	got := leastLeftTurn(prev, at, candidates)
	if candidates[got] != east {
		t.Errorf("leastLeftTurn picked %v, want east", candidates[got])
	}
}

func TestLeastLeftTurnSingleCandidate(t *testing.T) {
	prev := ll(-1, 0)
	at := ll(0, 0)
	only := ll(1, 0)
	got := leastLeftTurn(prev, at, []Point{only})
	if got != 0 {
		t.Errorf("leastLeftTurn with one candidate = %d, want 0", got)
	}
}
