//
// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matching

import "github.com/canonical/go-matching/quickselect"

// buildFromAdjacency converts a caller-supplied adjacency list into the CSR
// edge store the engine runs over. No transposition is performed: the
// adjacency-list entry point is the maximisation path and is used as-is,
// even when leftSize > rightSize (see SPEC_FULL.md §6 resolution 1).
//
// For each left vertex l, the initial potential u[l] is the maximum weight
// among l's original edges (or 0 if l has none) — this must be computed
// before retention, against the full edge set, so that feasibility holds
// against any subset retention keeps. Retention then caps l's out-degree
// at min(len(adj[l]), leftSize) via quickselect.RetainTopK.
func buildFromAdjacency(leftSize, rightSize int, adj [][]Edge) (*csr, error) {
	if leftSize < 0 || rightSize < 0 {
		return nil, ErrInvalidArgument
	}
	if (leftSize == 0) != (rightSize == 0) {
		return nil, ErrInvalidArgument
	}
	if len(adj) != leftSize {
		return nil, ErrInvalidArgument
	}

	u := make([]int64, leftSize)
	rowOff := make([]int, leftSize+1)
	var edgeTo []int
	var edgeW []int64

	for l, edges := range adj {
		var maxWeight int64
		for _, e := range edges {
			if e.To < 0 || e.To >= rightSize {
				return nil, ErrInvalidArgument
			}
			if e.Weight > maxWeight {
				maxWeight = e.Weight
			}
		}
		u[l] = maxWeight

		k := leftSize
		work := make([]quickselect.Edge, len(edges))
		for i, e := range edges {
			work[i] = quickselect.Edge{To: e.To, Weight: e.Weight}
		}
		quickselect.RetainTopK(work, k)
		if len(work) > k {
			work = work[:k]
		}

		for _, e := range work {
			edgeTo = append(edgeTo, e.To)
			edgeW = append(edgeW, e.Weight)
		}
		rowOff[l+1] = len(edgeTo)
	}

	return &csr{
		leftSize:  leftSize,
		rightSize: rightSize,
		rowOff:    rowOff,
		edgeTo:    edgeTo,
		edgeW:     edgeW,
		u:         u,
	}, nil
}
