// SPDX-License-Identifier: MIT
// Package: airgraph/builder
//
// place.go - airport coordinate placement strategies.
//
// Every placement clamps to the valid latitude range and wraps longitude into
// [-180, 180], so generated records always pass core validation.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/airgraph/geo"
)

// PlaceFn returns the position of airport i of n. rng may be nil.
type PlaceFn func(i, n int, rng *rand.Rand) geo.Coord

// RingPlacement spaces airports evenly on a circle of radiusDeg around center.
func RingPlacement(center geo.Coord, radiusDeg float64) PlaceFn {
	return func(i, n int, _ *rand.Rand) geo.Coord {
		if n <= 0 {
			n = 1
		}
		theta := 2 * math.Pi * float64(i) / float64(n)
		return normalize(geo.Coord{
			Lat: center.Lat + radiusDeg*math.Sin(theta),
			Lon: center.Lon + radiusDeg*math.Cos(theta),
		})
	}
}

// UniformPlacement draws airports uniformly from the box center ± spanDeg.
// Without an RNG it falls back to RingPlacement.
func UniformPlacement(center geo.Coord, spanDeg float64) PlaceFn {
	ring := RingPlacement(center, spanDeg)
	return func(i, n int, rng *rand.Rand) geo.Coord {
		if rng == nil {
			return ring(i, n, nil)
		}
		return normalize(geo.Coord{
			Lat: center.Lat + (2*rng.Float64()-1)*spanDeg,
			Lon: center.Lon + (2*rng.Float64()-1)*spanDeg,
		})
	}
}

func normalize(c geo.Coord) geo.Coord {
	c.Lat = math.Max(geo.MinLat, math.Min(geo.MaxLat, c.Lat))
	for c.Lon > geo.MaxLon {
		c.Lon -= 360
	}
	for c.Lon < geo.MinLon {
		c.Lon += 360
	}

	return c
}
