// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// impl_random.go - Random(n, p): Erdős–Rényi route sampling.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run over unordered pairs i < j, i asc then j asc.
//   - Airports that end up with no route are not emitted: every record yields
//     an edge, so isolated airports cannot be expressed as route records.

package builder

import "fmt"

// Random returns a Constructor that includes each of the n(n-1)/2 possible
// routes independently with probability p.
func Random(n int, p float64) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandom, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandom, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}

		// Fix every airport's position first so placement draws do not depend on
		// which trials succeed.
		for i := 0; i < n; i++ {
			b.airport(cfg, i, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					b.route(b.airport(cfg, i, n), b.airport(cfg, j, n))
				}
			}
		}

		return nil
	}
}

// Topology resolves a method name (MethodChain, MethodStar, ...) to a
// Constructor. p is used by MethodRandom only.
func Topology(name string, n int, p float64) (Constructor, error) {
	switch name {
	case MethodChain:
		return Chain(n), nil
	case MethodCycle:
		return Cycle(n), nil
	case MethodStar:
		return Star(n), nil
	case MethodComplete:
		return Complete(n), nil
	case MethodRandom:
		return Random(n, p), nil
	default:
		return nil, fmt.Errorf("%w: unknown topology %q", ErrOptionViolation, name)
	}
}
