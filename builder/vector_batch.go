package builder

import (
	"github.com/ajroetker/go-highway/hwy"
)

// simdBatchThreshold is the candidate-count below which a scalar loop is
// cheaper than paying for SoA extraction and SIMD dispatch, mirroring the
// ProcessWithTail vector-body/scalar-tail split the teacher's *_hwy.go
// files use internally, but applied one level up: small batches skip
// vectorization entirely.
const simdBatchThreshold = 8

// soaPoints de-interleaves a slice of points into three parallel
// coordinate slices, the layout go-highway's batch kernels expect.
func soaPoints(pts []Point) (xs, ys, zs []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	zs = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.Vector.X
		ys[i] = p.Vector.Y
		zs[i] = p.Vector.Z
	}
	return
}

// batchChordDistSq returns, for every point in pts, the squared chord
// distance to target: |target-p|^2, which is exactly the value an
// s1.ChordAngle represents. Used to pre-filter candidate sites/vertices
// against a radius without any trigonometry.
func batchChordDistSq(target Point, pts []Point) []float64 {
	out := make([]float64, len(pts))
	if len(pts) == 0 {
		return out
	}
	if len(pts) < simdBatchThreshold {
		for i, p := range pts {
			d := p.Vector.Sub(target.Vector)
			out[i] = d.Dot(d)
		}
		return out
	}

	xs, ys, zs := soaPoints(pts)
	tx, ty, tz := target.Vector.X, target.Vector.Y, target.Vector.Z

	vTx := hwy.Set(tx)
	vTy := hwy.Set(ty)
	vTz := hwy.Set(tz)

	hwy.ProcessWithTail[float64](len(pts),
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)
			dz := hwy.Sub(vz, vTz)

			sum := hwy.Mul(dx, dx)
			sum = hwy.FMA(dy, dy, sum)
			sum = hwy.FMA(dz, dz, sum)

			hwy.Store(sum, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)
			dz := hwy.Sub(vz, vTz)

			sum := hwy.Mul(dx, dx)
			sum = hwy.FMA(dy, dy, sum)
			sum = hwy.FMA(dz, dz, sum)

			hwy.MaskStore(mask, sum, out[offset:])
		},
	)
	return out
}

// batchNearest returns the index into pts of the point closest to target
// by chord distance, and that squared chord distance. It is used by the
// splicer to pick which cluster representative is nearest an edge's
// midpoint once several lie within the splice radius of that edge.
func batchNearest(target Point, pts []Point) (idx int, distSq float64) {
	if len(pts) == 0 {
		return -1, 0
	}
	dist := batchChordDistSq(target, pts)
	idx, distSq = 0, dist[0]
	for i := 1; i < len(dist); i++ {
		if dist[i] < distSq {
			idx, distSq = i, dist[i]
		}
	}
	return idx, distSq
}

// batchDotConst returns the dot product of a constant vector against
// every point in pts, in SoA-vectorized batches once there are enough
// candidates to be worth it. leastLeftTurn uses this to batch-score every
// candidate continuation's offset against the incoming offset, used to
// break exact ties in turning angle (two candidates on the same bearing
// from at, at different distances) in favor of the larger dot product.
func batchDotConst(a Point, pts []Point) []float64 {
	out := make([]float64, len(pts))
	if len(pts) == 0 {
		return out
	}
	if len(pts) < simdBatchThreshold {
		for i, p := range pts {
			out[i] = a.Vector.Dot(p.Vector)
		}
		return out
	}

	xs, ys, zs := soaPoints(pts)
	ax, ay, az := a.Vector.X, a.Vector.Y, a.Vector.Z

	vAx := hwy.Set(ax)
	vAy := hwy.Set(ay)
	vAz := hwy.Set(az)

	hwy.ProcessWithTail[float64](len(pts),
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			sum := hwy.Mul(vAx, vx)
			sum = hwy.FMA(vAy, vy, sum)
			sum = hwy.FMA(vAz, vz, sum)

			hwy.Store(sum, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			sum := hwy.Mul(vAx, vx)
			sum = hwy.FMA(vAy, vy, sum)
			sum = hwy.FMA(vAz, vz, sum)

			hwy.MaskStore(mask, sum, out[offset:])
		},
	)
	return out
}
