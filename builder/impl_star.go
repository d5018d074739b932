// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// impl_star.go - Star(n): hub airport 0 with spokes to airports 1..n-1.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - The hub is index 0; spokes are emitted hub -> leaf[i] in ascending i.

package builder

import "fmt"

// Star returns a Constructor for a hub-and-spoke network of n airports.
func Star(n int) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := b.airport(cfg, 0, n)
		for i := 1; i < n; i++ {
			b.route(hub, b.airport(cfg, i, n))
		}

		return nil
	}
}
