// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// impl_chain.go - Chain(n): airports 0-1-2-...-(n-1) linked in a line.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits n-1 records i -> i+1 in ascending i.

package builder

import "fmt"

// Chain returns a Constructor for a linear route chain of n airports.
func Chain(n int) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < MinChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodChain, n, MinChainNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			b.route(b.airport(cfg, i, n), b.airport(cfg, i+1, n))
		}

		return nil
	}
}
