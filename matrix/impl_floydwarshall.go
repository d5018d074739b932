// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k -> i -> j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       float64
		cand         float64
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, m.r, m.c, ErrNonSquare)
	}
	floydWarshallInPlace(m)

	return nil
}
