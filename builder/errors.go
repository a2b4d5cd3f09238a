package builder

import "errors"

// Sentinel errors reported synchronously by NewOptions and by the
// Builder's methods. Callers branch on these with errors.Is; the core never panics
// outside of option validation.
var (
	// ErrNegativeRadius is returned when a caller supplies a negative angle
	// for VertexMergeRadius or RobustnessRadius.
	ErrNegativeRadius = errors.New("builder: radius must be >= 0")

	// ErrInvalidSpliceFraction is returned when EdgeSpliceFraction is
	// outside {0} union [sqrt(2)/2, 1].
	ErrInvalidSpliceFraction = errors.New("builder: edge splice fraction must be 0 or in [sqrt(2)/2, 1]")

	// ErrDegenerateEdge is returned by AddEdge when src and dst coincide or
	// are antipodal and the builder was configured with WithValidate.
	ErrDegenerateEdge = errors.New("builder: edge endpoints coincide or are antipodal")

	// ErrAlreadyBuilt is returned by any mutating call made after
	// AssembleLoops or AssemblePolygon has run.
	ErrAlreadyBuilt = errors.New("builder: builder already consumed by Assemble")

	// ErrDuplicateLoop is reported as a diagnostic (not returned to the
	// caller) when AssemblePolygon detects that the same loop was emitted
	// twice; see DESIGN.md "same loop emitted twice" decision.
	ErrDuplicateLoop = errors.New("builder: duplicate loop emitted")

	// ErrLoopTooShort is returned by Loop.Validate when a loop has fewer
	// than 3 vertices.
	ErrLoopTooShort = errors.New("builder: loop has fewer than 3 vertices")

	// ErrLoopNotSimple is returned by Loop.Validate when a loop revisits a
	// vertex or crosses itself.
	ErrLoopNotSimple = errors.New("builder: loop repeats a vertex or crosses itself")

	// ErrLoopsCross is reported as a diagnostic when validate is on and two
	// assembled loops cross each other without sharing a vertex: the
	// builder cannot re-intersect crossing edges (see spec's Non-goals), so
	// neither loop is valid output and both are routed to unused.
	ErrLoopsCross = errors.New("builder: assembled loops cross each other")
)
