// Package geo computes great-circle distances between geocoded points.
//
// What
//
//   - Coord is a latitude/longitude pair in decimal degrees.
//   - Distance returns the haversine great-circle distance in kilometres
//     (Earth radius 6371.0 km), rounded to two decimal places.
//
// Why
//
//	Edge weights of the route network are geographic distances. Rounding to
//	two decimals keeps weights stable across platforms and makes equal routes
//	compare equal, which the spanning-tree and shortest-path packages rely on
//	for reproducible output.
//
// Guarantees
//
//   - Distance(a, b) == Distance(b, a) bit-for-bit.
//   - Distance(a, a) == 0.
//   - Pure function: no allocation, no side effects.
//
// Inputs are expected to be finite degrees; NaN or out-of-range values are not
// checked by Distance. Use Coord.Valid at ingestion time to reject them.
//
// Complexity: O(1).
package geo
