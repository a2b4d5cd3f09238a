package builder

// Builder is the public entry point: accumulate edges, loops, polylines or
// whole polygons, then assemble them into simple loops or an oriented
// polygon. It implements spec.md S4.G's orchestrator, executing ingest →
// (snap) → cluster → rewrite → splice → assemble exactly once per instance.
type Builder struct {
	opts  Options
	store *EdgeStore
	built bool
}

// NewBuilder resolves opts and returns a ready-to-use Builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{
		opts:  o,
		store: NewEdgeStore(o.XorEdges),
	}, nil
}

// AddEdge inserts a single directed edge (or, under UndirectedEdges, both
// directions). It returns ErrAlreadyBuilt if called after Assemble*, and
// ErrDegenerateEdge if src and dst coincide or are antipodal and the builder was configured
// to treat that as an error via WithValidate (degenerate edges are always
// silently dropped by the underlying store; WithValidate only upgrades
// that to a reported error here at ingestion time).
func (b *Builder) AddEdge(a, c Point) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if b.opts.Validate && IsDegenerateEdge(a, c) {
		return ErrDegenerateEdge
	}
	b.store.AddEdge(a, c)
	if b.opts.UndirectedEdges {
		b.store.AddEdge(c, a)
	}
	return nil
}

// AddLoop adds the edges of a closed loop: verts[0]->verts[1], ...,
// verts[n-1]->verts[0]. verts must not repeat its first vertex at the end.
func (b *Builder) AddLoop(verts []Point) error {
	if len(verts) < 2 {
		return nil
	}
	for i := range verts {
		if err := b.AddEdge(verts[i], verts[(i+1)%len(verts)]); err != nil {
			return err
		}
	}
	return nil
}

// AddPolyline adds the edges of an open path: verts[0]->verts[1], ...,
// verts[n-2]->verts[n-1]. Unlike AddLoop, it does not close back to the
// first vertex.
func (b *Builder) AddPolyline(verts []Point) error {
	for i := 0; i+1 < len(verts); i++ {
		if err := b.AddEdge(verts[i], verts[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// AddPolygon adds every loop of a multi-loop polygon (a shell plus any
// holes), each supplied as an open vertex list per AddLoop's convention.
func (b *Builder) AddPolygon(loops [][]Point) error {
	for _, l := range loops {
		if err := b.AddLoop(l); err != nil {
			return err
		}
	}
	return nil
}

// AssembleLoops runs the full pipeline and returns every simple loop it
// could extract, plus any edges left over. The builder is single-shot:
// after this call, further mutation returns ErrAlreadyBuilt.
func (b *Builder) AssembleLoops() ([]*Loop, []Edge, error) {
	if b.built {
		return nil, nil, ErrAlreadyBuilt
	}
	b.built = true
	b.prepare()
	return AssembleLoops(b.store, b.opts)
}

// AssemblePolygon is AssembleLoops followed by orientation-fixing and
// duplicate-loop rejection, per spec.md S4.E's polygon mode.
func (b *Builder) AssemblePolygon() ([]*Loop, []Edge, error) {
	if b.built {
		return nil, nil, ErrAlreadyBuilt
	}
	b.built = true
	b.prepare()
	loops, unused := AssemblePolygon(b.store, b.opts)
	return loops, unused, nil
}

// prepare runs the snap/cluster/rewrite/splice stages in place on b.store,
// mutating it into the form AssembleLoops/AssemblePolygon expect.
func (b *Builder) prepare() {
	if b.store.Count() == 0 {
		return
	}

	level := b.opts.GetSnapLevel()
	if level != NoSnapLevel {
		b.rewriteVertices(func(p Point) Point { return SnapPoint(p, level) })
	}

	if b.opts.VertexMergeRadius > 0 {
		rep := ClusterVertices(b.store.Vertices(), b.opts.VertexMergeRadius, b.opts.Logger)
		b.rewriteVertices(func(p Point) Point {
			if r, ok := rep[p]; ok {
				return r
			}
			return p
		})
	}

	if r := b.opts.SpliceRadius(); r > 0 {
		SpliceEdges(b.store, b.store.Vertices(), r, b.opts.Logger)
	}
}

// rewriteVertices replaces every edge endpoint via f, rebuilding the store
// so that duplicate/degenerate edges introduced by the rewrite are
// re-canonicalized through AddEdge (including XOR cancellation).
func (b *Builder) rewriteVertices(f func(Point) Point) {
	edges := b.store.AllEdges()
	rewritten := NewEdgeStore(b.opts.XorEdges)
	for _, e := range edges {
		rewritten.AddEdge(f(e.Src), f(e.Dst))
	}
	b.store = rewritten
}
