// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.
//
// Purpose:
//   - Provide small, deterministic airport fixtures with real coordinates.
//   - Keep record construction out of test bodies.

package core_test

import (
	"github.com/katalvlaran/airgraph/core"
)

// Real-world airports used across core tests.
var (
	JFK = core.Endpoint{Code: "JFK", Name: "John F Kennedy Intl", City: "New York", Country: "United States", Lat: 40.6413, Lon: -73.7781}
	LHR = core.Endpoint{Code: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom", Lat: 51.4700, Lon: -0.4543}
	CDG = core.Endpoint{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Lat: 49.0097, Lon: 2.5479}
	NRT = core.Endpoint{Code: "NRT", Name: "Narita Intl", City: "Tokyo", Country: "Japan", Lat: 35.7720, Lon: 140.3929}
	SYD = core.Endpoint{Code: "SYD", Name: "Kingsford Smith", City: "Sydney", Country: "Australia", Lat: -33.9399, Lon: 151.1753}
	AKL = core.Endpoint{Code: "AKL", Name: "Auckland", City: "Auckland", Country: "New Zealand", Lat: -37.0082, Lon: 174.7850}
)

// route is a terse RouteRecord constructor.
func route(from, to core.Endpoint) core.RouteRecord {
	return core.RouteRecord{Origin: from, Destination: to}
}

// worldRoutes returns two components: {JFK, LHR, CDG, NRT} and {SYD, AKL}.
func worldRoutes() []core.RouteRecord {
	return []core.RouteRecord{
		route(JFK, LHR),
		route(LHR, CDG),
		route(CDG, NRT),
		route(JFK, CDG),
		route(SYD, AKL),
	}
}

// failingSeq yields good records, then err at position failAt.
func failingSeq(records []core.RouteRecord, failAt int, err error) func(func(core.RouteRecord, error) bool) {
	return func(yield func(core.RouteRecord, error) bool) {
		for i, r := range records {
			if i == failAt {
				yield(core.RouteRecord{}, err)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}
