// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// config.go - resolved, immutable builder configuration.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/airgraph/geo"
)

// builderConfig is resolved once per BuildRecords call and passed by value.
type builderConfig struct {
	idFn    func(int) string
	rng     *rand.Rand
	placeFn PlaceFn
	country string

	// internal error recorded during option parsing
	err error
}

const (
	defaultCountry = "Synthetic"
)

// newBuilderConfig applies opts over the defaults: "A000"-style codes, ring
// placement around (0,0) with a 10 degree radius, no RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		placeFn: RingPlacement(geo.Coord{}, defaultRadiusDeg),
		country: defaultCountry,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
