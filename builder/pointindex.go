// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package builder

import (
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// PointIndex is the point collaborator spec.md S6 calls the "spatial
// index": it supports dynamic insertion and a fixed-radius within(p,r)
// enumeration. It is intentionally a simple CellID-ordered scan rather
// than a full cell-covering spatial index — the same simplification the
// teacher's own Builder.Build makes when snapping vertices ("simple
// greedy snapping... sufficient for basic usage"); a full ShapeIndex is
// out of spec.md's scope (S1).
type PointIndex struct {
	entries []pointEntry
}

type pointEntry struct {
	id  s2.CellID
	pt  Point
	tag int
}

// NewPointIndex creates an empty index.
func NewPointIndex() *PointIndex {
	return &PointIndex{}
}

// Add inserts a point, keeping entries sorted by CellID so that
// enumeration has a deterministic, locality-friendly order. The
// assigned tag defaults to the point's 0-based insertion sequence
// number; use AddTagged to associate a caller-chosen tag instead (the
// sort reshuffles positions, so a caller that needs to recover which
// of several equal-looking inputs a result position came from should
// not assume position == insertion order).
func (idx *PointIndex) Add(pt Point) {
	idx.AddTagged(pt, len(idx.entries))
}

// AddTagged inserts a point together with a caller-chosen tag,
// recoverable later via TagAt regardless of how the CellID sort on
// insertion reorders the index.
func (idx *PointIndex) AddTagged(pt Point, tag int) {
	idx.entries = append(idx.entries, pointEntry{id: s2.CellIDFromPoint(pt), pt: pt, tag: tag})
	last := len(idx.entries) - 1
	if last > 0 && idx.entries[last].id < idx.entries[last-1].id {
		sort.Slice(idx.entries, func(i, j int) bool {
			return idx.entries[i].id < idx.entries[j].id
		})
	}
}

// Len returns the number of points in the index.
func (idx *PointIndex) Len() int {
	return len(idx.entries)
}

// PointAt returns the point at position i in the index's current order.
func (idx *PointIndex) PointAt(i int) Point {
	return idx.entries[i].pt
}

// TagAt returns the tag associated with the point at position i in the
// index's current order.
func (idx *PointIndex) TagAt(i int) int {
	return idx.entries[i].tag
}

// Within returns the positions (in this index's current order) of every
// indexed point whose geodesic distance to center is <= r, inclusive.
// Distance comparisons are done as squared-chord values (matching
// s1.ChordAngle's internal representation) to avoid a trigonometric call
// per candidate; the batch path is SIMD-accelerated once there are enough
// candidates to be worth it (vector_batch.go).
func (idx *PointIndex) Within(center Point, r s1.Angle) []int {
	if len(idx.entries) == 0 {
		return nil
	}
	pts := make([]Point, len(idx.entries))
	for i, e := range idx.entries {
		pts[i] = e.pt
	}
	distSq := batchChordDistSq(center, pts)
	limit := float64(s1.ChordAngleFromAngle(r))

	var out []int
	for i, d := range distSq {
		if d <= limit {
			out = append(out, i)
		}
	}
	return out
}
