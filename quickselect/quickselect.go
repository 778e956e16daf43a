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

// Package quickselect provides an in-place top-K selection over weighted
// edges, used by the matching builders to cap per-vertex out-degree before
// handing a graph to the matching engine.
package quickselect

// Edge pairs a right-hand endpoint with an integer weight. It is the unit
// the retention routine reorders; callers own the backing slice.
type Edge struct {
	To     int
	Weight int64
}

// RetainTopK reorders edges in place so that the K entries with the
// greatest weight occupy positions [0, K). No guarantee is made about the
// order within that prefix, nor about the suffix. Ties at the Kth weight
// may land on either side of the boundary. If len(edges) <= k, edges is
// left unchanged.
//
// RetainTopK is a median-of-three QuickSelect: O(n) expected time,
// O(n^2) worst case, O(1) extra space. It never fails; it is total on any
// slice, including the empty one.
func RetainTopK(edges []Edge, k int) {
	n := len(edges)
	if n <= k {
		return
	}
	if k < 1 {
		k = 1
	}
	quickSelect(edges, 0, n-1, k-1)
}

// quickSelect partitions edges[left:right+1] until the pivot lands exactly
// at rank target (0-indexed), i.e. until edges[target] holds the element
// that would occupy that position in a full descending sort by weight.
func quickSelect(edges []Edge, left, right, target int) {
	for left < right {
		pivotIndex := medianOfThreeIndex(edges, left, left+(right-left)/2, right)
		pivotIndex = partition(edges, left, right, pivotIndex)
		switch {
		case target == pivotIndex:
			return
		case target < pivotIndex:
			right = pivotIndex - 1
		default:
			left = pivotIndex + 1
		}
	}
}

// partition moves the pivot to edges[right], then scans left..right-1
// pulling every entry with weight strictly greater than the pivot's to the
// front. The pivot is finally swapped into storeIndex and that index is
// returned.
func partition(edges []Edge, left, right, pivotIndex int) int {
	pivotWeight := edges[pivotIndex].Weight
	edges[pivotIndex], edges[right] = edges[right], edges[pivotIndex]

	storeIndex := left
	for i := left; i < right; i++ {
		if edges[i].Weight > pivotWeight {
			edges[i], edges[storeIndex] = edges[storeIndex], edges[i]
			storeIndex++
		}
	}
	edges[storeIndex], edges[right] = edges[right], edges[storeIndex]

	return storeIndex
}

// medianOfThreeIndex returns whichever of left, mid, right holds the
// median weight, reducing worst-case quadratic blowup on sorted input.
func medianOfThreeIndex(edges []Edge, left, mid, right int) int {
	wl, wm, wr := edges[left].Weight, edges[mid].Weight, edges[right].Weight
	if wl > wm {
		if wm > wr {
			return mid
		}
		if wl > wr {
			return right
		}
		return left
	}
	if wl > wr {
		return left
	}
	if wm > wr {
		return right
	}
	return mid
}
