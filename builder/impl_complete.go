// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// impl_complete.go - Complete(n): a route between every pair of airports.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits n(n-1)/2 records i -> j for i < j, i asc then j asc.

package builder

import "fmt"

// Complete returns a Constructor for a fully meshed network of n airports.
func Complete(n int) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.route(b.airport(cfg, i, n), b.airport(cfg, j, n))
			}
		}

		return nil
	}
}
