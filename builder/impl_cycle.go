// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// impl_cycle.go - Cycle(n): a chain closed back to airport 0.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices); two airports cannot form a cycle
//     without a repeated pair.
//   - Emits n records: i -> (i+1) mod n in ascending i.

package builder

import "fmt"

// Cycle returns a Constructor for a ring of n airports.
func Cycle(n int) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			b.route(b.airport(cfg, i, n), b.airport(cfg, (i+1)%n, n))
		}

		return nil
	}
}
