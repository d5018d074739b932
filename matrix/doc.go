// Package matrix holds the dense all-pairs distance table of the route network.
//
// The package provides:
//
//   - Dense: a bounds-checked, row-major float64 matrix.
//   - FloydWarshall: in-place APSP closure with a fixed k -> i -> j loop order.
//   - AllPairs(g): the V×V shortest great-circle distance table of a core.Graph,
//     rows and columns in airport insertion order, +Inf for unreachable pairs.
//
// AllPairs costs O(V^3); it suits small networks, precomputed tables, and
// verification of single-source results from package dijkstra.
package matrix
