package builder

import "github.com/golang/geo/s2"

// SnapPoint rewrites p to the center of the s2.CellID grid cell at level
// containing it, per spec.md S4.F. Callers pass Options.GetSnapLevel()'s
// result; NoSnapLevel disables snapping and SnapPoint returns p unchanged.
func SnapPoint(p Point, level int) Point {
	if level == NoSnapLevel {
		return p
	}
	return s2.CellIDFromPoint(p).Parent(level).Point()
}

// SnapPoints applies SnapPoint to every point in pts, returning a new
// slice; with NoSnapLevel it returns pts itself. The orchestrator does not
// call it: it snaps each edge endpoint through SnapPoint directly.
func SnapPoints(pts []Point, level int) []Point {
	if level == NoSnapLevel {
		return pts
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = SnapPoint(p, level)
	}
	return out
}
