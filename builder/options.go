package builder

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// MinEdgeSpliceFraction is the lower bound below which EdgeSpliceFraction
// is rejected: below sqrt(2)/2 the triangle-inequality guarantee that
// spliced-in vertices stay no closer than the merge radius to the unsplit
// remainder of the edge breaks down (spec.md S4.D, S9).
const MinEdgeSpliceFraction = math.Sqrt2 / 2

// NoSnapLevel is the sentinel returned by Options.GetSnapLevel when
// snapping is disabled, or when even s2.MaxLevel's cell diagonal exceeds
// the caller's robustness budget.
const NoSnapLevel = -1

// Options holds the clustering radius, splice fraction, snap level,
// direction mode and XOR mode recognized by a Builder. The zero value is
// a usable, fully-permissive configuration: directed edges, no XOR, no
// clustering, no splicing, no snapping, no validation.
type Options struct {
	// UndirectedEdges: each input edge (a,b) adds both (a,b) and (b,a).
	UndirectedEdges bool

	// XorEdges: duplicate directed edges cancel pairwise.
	XorEdges bool

	// VertexMergeRadius is the geodesic distance within which two
	// vertices may be clustered. Zero disables clustering.
	VertexMergeRadius s1.Angle

	// EdgeSpliceFraction, together with VertexMergeRadius, determines the
	// splice radius. Must be 0 (splicing disabled) or within
	// [MinEdgeSpliceFraction, 1].
	EdgeSpliceFraction float64

	// SnapToCellCenters: snap endpoints to s2.CellID centers before
	// clustering.
	SnapToCellCenters bool

	// RobustnessRadius is the required maximum displacement a vertex may
	// suffer from snapping; it selects the snap level.
	RobustnessRadius s1.Angle

	// Validate: after assembly, run loop-validity checks and route
	// failures to the unused-edges output.
	Validate bool

	// StartEdgeSeed perturbs the order in which eligible starting edges
	// are tried during assembly, without changing which edges are
	// eligible. Zero means "use enumeration order".
	StartEdgeSeed int64

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger Logger
}

// Option mutates an Options value. Constructed via the With* functions
// below and applied in order by NewOptions.
type Option func(*Options)

// WithUndirectedEdges enables undirected-edge mode.
func WithUndirectedEdges() Option {
	return func(o *Options) { o.UndirectedEdges = true }
}

// WithXorEdges enables XOR (symmetric-difference) edge semantics.
func WithXorEdges() Option {
	return func(o *Options) { o.XorEdges = true }
}

// WithVertexMergeRadius sets the clustering radius.
func WithVertexMergeRadius(r s1.Angle) Option {
	return func(o *Options) { o.VertexMergeRadius = r }
}

// WithEdgeSpliceFraction sets the splice fraction.
func WithEdgeSpliceFraction(f float64) Option {
	return func(o *Options) { o.EdgeSpliceFraction = f }
}

// WithSnapToCellCenters enables grid snapping.
func WithSnapToCellCenters() Option {
	return func(o *Options) { o.SnapToCellCenters = true }
}

// WithRobustnessRadius sets the snapping displacement budget.
func WithRobustnessRadius(r s1.Angle) Option {
	return func(o *Options) { o.RobustnessRadius = r }
}

// WithValidate enables post-assembly loop validation.
func WithValidate() Option {
	return func(o *Options) { o.Validate = true }
}

// WithStartEdgeSeed sets the debug rotation seed for assembly order.
func WithStartEdgeSeed(seed int64) Option {
	return func(o *Options) { o.StartEdgeSeed = seed }
}

// WithLogger installs a diagnostics sink.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// NewOptions resolves a set of Option values into a validated Options,
// applied in order (later options override earlier ones for scalar
// fields). It rejects a negative radius or an out-of-range splice
// fraction; all other fields are accepted as given.
func NewOptions(opts ...Option) (Options, error) {
	o := Options{Logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
	if o.VertexMergeRadius < 0 {
		return Options{}, ErrNegativeRadius
	}
	if o.RobustnessRadius < 0 {
		return Options{}, ErrNegativeRadius
	}
	if o.EdgeSpliceFraction != 0 &&
		(o.EdgeSpliceFraction < MinEdgeSpliceFraction || o.EdgeSpliceFraction > 1) {
		return Options{}, ErrInvalidSpliceFraction
	}
	return o, nil
}

// SpliceRadius returns EdgeSpliceFraction * VertexMergeRadius, or zero if
// splicing is disabled.
func (o Options) SpliceRadius() s1.Angle {
	if o.EdgeSpliceFraction == 0 {
		return 0
	}
	return s1.Angle(o.EdgeSpliceFraction) * o.VertexMergeRadius
}

// GetSnapLevel returns the coarsest s2.CellID level whose maximum cell
// diagonal, halved, is within RobustnessRadius — the cheapest grid that
// still respects the caller's displacement budget, since a coarser grid
// merges more aggressively. It returns NoSnapLevel when SnapToCellCenters
// is off, or when not even s2.MaxLevel's cell diagonal fits the budget.
func (o Options) GetSnapLevel() int {
	if !o.SnapToCellCenters {
		return NoSnapLevel
	}
	for level := 0; level <= s2.MaxLevel; level++ {
		maxDiag := s1.Angle(s2.MaxDiagMetric.Value(level))
		if maxDiag/2 <= o.RobustnessRadius {
			return level
		}
	}
	return NoSnapLevel
}
