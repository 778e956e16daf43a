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

// Edge is one entry of a caller-supplied adjacency list: an outgoing edge
// to right-vertex To carrying integer Weight. Weight may be negative;
// negative edges are accepted silently and are effectively ignored by the
// search, since the initial left potential and top-K retention both favor
// higher-weight edges.
type Edge struct {
	To     int
	Weight int64
}

// Result is the outcome of a matching run: the pairing arrays plus the
// total weight of matched edges.
//
// LeftPair has length |L|; LeftPair[l] is the right vertex matched to left
// vertex l, or -1 if l is unmatched. RightPair has length |R|; RightPair[r]
// is the left vertex matched to r, or -1 if r is unmatched.
// LeftPair[l] = r  iff  RightPair[r] = l, for every matched pair.
type Result struct {
	LeftPair  []int
	RightPair []int
	WeightSum int64
}

// csr is the flat edge store the engine runs over: edges incident to left
// vertex l occupy edgeTo[rowOff[l]:rowOff[l+1]] (and the parallel edgeW
// slice for weights). u is the initial left-vertex potential, sized |L|.
type csr struct {
	leftSize  int
	rightSize int
	rowOff    []int
	edgeTo    []int
	edgeW     []int64
	u         []int64
}
