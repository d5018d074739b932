// Package prim_kruskal computes minimum spanning trees and forests over the
// distance-weighted route network held by *core.Graph.
//
// What & Why
//
//   - Given a connected set of airports, the MST is the cheapest set of routes
//     (total great-circle km) that still connects every airport: the skeleton
//     of the network, useful for backbone planning and for spotting redundant
//     long-haul links.
//
//   - The route network is usually not connected, so the natural output is a
//     forest: one tree per connected component (see bfs.Components).
//
// Algorithms Provided
//
//   - Prim(g, component []string) (Result, error)
//
//   - Grows one tree from the first member of component using a min-heap of
//     candidate routes restricted to the component.
//
//   - component == nil means every airport; an empty component yields a zero Result.
//
//   - On a disconnected component only the part reachable from the root is covered.
//
//   - Time O(E log E), space O(V + E).
//
//   - Forest(g) ([]Result, error)
//
//   - One Prim run per connected component, aligned with bfs.Components(g).
//
//   - Kruskal(g) (Result, error)
//
//   - Global stable sort by weight plus union-find; yields the whole minimum
//     spanning forest in one pass. Its total equals the sum of Forest totals.
//
//   - Time O(E log E + α(V)·E), space O(V + E).
//
//   - Compute(g, opts...) (Result, error)
//
//   - Dispatches on WithMethod(MethodPrim | MethodKruskal) and returns the forest.
//
// Determinism
//
//	Prim orders equal-weight candidates by (from index, to index), i.e. airport
//	insertion order; Kruskal keeps insertion order for ties through a stable sort.
//	The total weight is unique either way; the edge set is reproducible for a given
//	input order.
//
// Error Conditions
//
//   - ErrNilGraph         : graph is nil.
//   - core.ErrUnknownCode : a component member is not a registered airport.
//   - ErrUnknownMethod    : Compute was given an unknown method name.
//
// An empty graph is not an error: every entry point returns a zero Result.
package prim_kruskal
