package builder

import "github.com/golang/geo/s1"

// clusterUnionFind is a weighted union-find over a fixed set of original
// sites, tracking each cluster's running (unnormalized) vector sum and
// member count so that the cluster representative — the unit-normalized
// mean of all current members (spec.md S3) — can be recovered in O(1)
// after a union, without re-scanning members.
type clusterUnionFind struct {
	parent []int
	rank   []int
	sum    []Point // reused as a plain 3-vector accumulator via .Vector
	count  []int
}

func newClusterUnionFind(points []Point) *clusterUnionFind {
	n := len(points)
	u := &clusterUnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		sum:    make([]Point, n),
		count:  make([]int, n),
	}
	for i, p := range points {
		u.parent[i] = i
		u.sum[i] = p
		u.count[i] = 1
	}
	return u
}

func (u *clusterUnionFind) find(i int) int {
	root := i
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[i] != root {
		u.parent[i], i = root, u.parent[i]
	}
	return root
}

func (u *clusterUnionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.sum[ra] = Point{Vector: u.sum[ra].Vector.Add(u.sum[rb].Vector)}
	u.count[ra] += u.count[rb]
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

func (u *clusterUnionFind) representative(root int) Point {
	mean := u.sum[root].Vector.Mul(1.0 / float64(u.count[root]))
	return Point{Vector: mean.Normalize()}
}

// ClusterVertices implements spec.md S4.C: it groups the given sites via
// iterative fixed-radius single-link grouping against a PointIndex rebuilt
// after every pass, until no two distinct representatives lie within r of
// each other, and returns a rep function mapping every input site to its
// cluster's representative. Because the grouping is single-link, the sites
// of one cluster can span more than r.
//
// A radius of zero disables clustering: every site is its own
// representative.
func ClusterVertices(points []Point, r s1.Angle, logger Logger) map[Point]Point {
	result := make(map[Point]Point, len(points))
	if len(points) == 0 {
		return result
	}
	if r <= 0 {
		for _, p := range points {
			result[p] = p
		}
		return result
	}
	if logger == nil {
		logger = noopLogger{}
	}

	uf := newClusterUnionFind(points)

	for pass := 1; ; pass++ {
		roots := distinctRoots(uf, len(points))

		idx := NewPointIndex()
		for i, root := range roots {
			idx.AddTagged(uf.representative(root), i)
		}

		merged := false
		for _, root := range roots {
			pos := uf.representative(root)
			for _, ni := range idx.Within(pos, r) {
				other := roots[idx.TagAt(ni)]
				if uf.union(root, other) {
					merged = true
				}
			}
		}

		if !merged {
			logger.Debugf("cluster finder converged after %d pass(es): %d site(s) -> %d cluster(s)",
				pass, len(points), len(distinctRoots(uf, len(points))))
			break
		}
	}

	for i, p := range points {
		result[p] = uf.representative(uf.find(i))
	}
	return result
}

func distinctRoots(uf *clusterUnionFind, n int) []int {
	seen := make(map[int]bool, n)
	var roots []int
	for i := 0; i < n; i++ {
		root := uf.find(i)
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	return roots
}
