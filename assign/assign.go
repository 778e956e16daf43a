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

// Package assign solves the assignment problem over a dense non-negative
// integer cost matrix: find a pairing of rows to columns that minimises
// the sum of selected entries.
//
// This is an implementation of https://en.wikipedia.org/wiki/Hungarian_algorithm
// (and remains O(n^3) under the matching engine's retained-edge bound) for
// https://en.wikipedia.org/wiki/Assignment_problem, expressed as a thin
// adapter over github.com/canonical/go-matching/matching: it converts the
// minimisation problem to maximisation, transposes tall matrices so the
// engine always sees at least as many columns as rows, and translates the
// engine's pairing back into the caller's original row/column space.
package assign

import (
	"github.com/canonical/go-matching/matching"
)

// Result is the outcome of Solve: a pairing of original matrix rows to
// original matrix columns, plus the true minimum cost.
//
// LeftPair has length h (the matrix's row count); LeftPair[i] is the
// column assigned to row i, or -1 if row i could not be matched (only
// possible when h > w, in which case exactly w rows are matched).
// RightPair mirrors LeftPair from the column side, except it is left nil
// whenever the matrix was transposed internally for the engine's benefit —
// callers of this API should only rely on LeftPair (transposition quirk,
// spec.md §9).
type Result struct {
	LeftPair  []int
	RightPair []int
	Cost      int64
}

// Solve returns the minimum-cost assignment of cost's rows to its columns.
// cost must be non-nil, non-empty, and rectangular (every row the same
// length); otherwise Solve returns ErrInvalidArgument.
func Solve(cost [][]int64) (*Result, error) {
	h := len(cost)
	if h == 0 {
		return nil, ErrInvalidArgument
	}
	w := len(cost[0])
	if w == 0 {
		return nil, ErrInvalidArgument
	}
	for _, row := range cost {
		if len(row) != w {
			return nil, ErrInvalidArgument
		}
	}

	// Transpose tall matrices so the engine always processes h2 <= w2:
	// this is a performance/orientation choice (spec.md §4.2 step 1), not
	// a correctness requirement of the matching engine itself.
	transposed := h > w
	effective := cost
	h2, w2 := h, w
	if transposed {
		effective = transpose(cost)
		h2, w2 = w, h
	}

	var maxCost int64
	for _, row := range effective {
		for _, v := range row {
			if v > maxCost {
				maxCost = v
			}
		}
	}

	// Convert minimisation to maximisation: every retained edge weight is
	// positive since maxCost is the largest original cost.
	adj := make([][]matching.Edge, h2)
	for i, row := range effective {
		edges := make([]matching.Edge, w2)
		for j, v := range row {
			edges[j] = matching.Edge{To: j, Weight: maxCost + 1 - v}
		}
		adj[i] = edges
	}

	res, err := matching.MaximumWeightMatching(h2, w2, adj)
	if err != nil {
		return nil, err
	}

	leftPair := make([]int, h)
	for i := range leftPair {
		leftPair[i] = -1
	}
	if transposed {
		// res.LeftPair is indexed by original column, valued by original row.
		for j, i := range res.LeftPair {
			if i != -1 {
				leftPair[i] = j
			}
		}
	} else {
		copy(leftPair, res.LeftPair)
	}

	var totalCost int64
	for i, j := range leftPair {
		if j != -1 {
			totalCost += cost[i][j]
		}
	}

	result := &Result{LeftPair: leftPair, Cost: totalCost}
	if !transposed {
		result.RightPair = res.RightPair
	}

	return result, nil
}

// transpose returns a new matrix m' where m'[j][i] = m[i][j].
func transpose(m [][]int64) [][]int64 {
	h := len(m)
	w := len(m[0])
	out := make([][]int64, w)
	for j := 0; j < w; j++ {
		row := make([]int64, h)
		for i := 0; i < h; i++ {
			row[i] = m[i][j]
		}
		out[j] = row
	}

	return out
}
