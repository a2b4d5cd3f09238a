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

// Package builder assembles an unordered multiset of directed or
// undirected geodesic edges on the unit sphere into a set of simple,
// non-crossing loops.
//
// A Builder tolerates numerically inexact input: nearby vertices are
// merged, nearby edges are spliced, and duplicate edges may be cancelled,
// before a greedy walk extracts loops from what remains. It is the
// single-shot, synchronous core of a larger polygon-construction pipeline;
// geometric primitives and the cell grid used for snapping are supplied by
// github.com/golang/geo, while the point and edge indexes are simple scans
// implemented in this package.
package builder
