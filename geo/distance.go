// SPDX-License-Identifier: MIT

package geo

import (
	"math"

	"github.com/umahmood/haversine"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
// It matches the constant baked into haversine.Distance's kilometre output.
const EarthRadiusKm = 6371.0

// Latitude and longitude bounds in decimal degrees.
const (
	MinLat = -90.0
	MaxLat = 90.0
	MinLon = -180.0
	MaxLon = 180.0
)

// Coord is a geographic point in decimal degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether c holds finite degrees inside the usual bounds.
func (c Coord) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}

	return c.Lat >= MinLat && c.Lat <= MaxLat && c.Lon >= MinLon && c.Lon <= MaxLon
}

// Distance returns the great-circle distance between a and b in kilometres,
// rounded to two decimal places.
//
// Complexity: O(1).
func Distance(a, b Coord) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)

	return Round2(km)
}

// Round2 rounds x half away from zero to two decimal places. Ties are decided on
// the binary value of x*100, so a distance sitting exactly on a decimal
// half-cent may land 0.01 away from a decimal round-half-even.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
