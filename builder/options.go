// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// options.go - functional options for BuildRecords.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the airport code generator. nil is ignored.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand injects an RNG used by stochastic constructors and placements.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithPlacement sets how airport coordinates are chosen. nil is ignored.
func WithPlacement(fn PlaceFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.placeFn = fn
		}
	}
}

// WithCountry sets the Country attribute of generated airports.
func WithCountry(country string) BuilderOption {
	return func(c *builderConfig) {
		if country == "" {
			c.err = fmt.Errorf("%w: empty country", ErrOptionViolation)
			return
		}
		c.country = country
	}
}
