// Package dijkstra answers weighted routing questions over a core.Graph:
// shortest great-circle distance from one airport to all others, the farthest
// reachable airports, and the concrete route between two airports.
//
// Entry points:
//
//	ShortestPaths(g, source, opts...) (*Result, error)
//	FarthestNodes(g, source, k) ([]Ranked, error)     // k <= 0 -> DefaultFarthestLimit
//	ReconstructPath(res, source, destination) ([]string, error)
//	Route(g, from, to) (*Itinerary, error)
//
// Distance model:
//
//	Distance is a tagged value: Finite(km) or Unreachable(). Result.DistanceTo
//	returns it for any registered code. An unreachable airport is a normal
//	outcome, never an error; ReconstructPath returns an empty path for it and
//	Route sets Itinerary.Reachable = false.
//
// Algorithm:
//
//   - Min-heap keyed by (distance, arena index) for a reproducible pop order.
//   - Lazy decrease-key: improvements are pushed as new entries and an entry
//     whose distance exceeds the recorded best is skipped when popped.
//   - Only strict improvements update a predecessor.
//   - WithMaxDistance(km) leaves airports beyond the cap unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrNilGraph        graph pointer is nil.
//   - core.ErrUnknownCode source or destination is not a registered airport.
//   - ErrSourceMismatch  ReconstructPath source differs from the result's source.
//   - ErrNilResult       ReconstructPath got a nil result.
//   - ErrBadMaxDistance  WithMaxDistance got a negative or NaN cap.
//
// Concurrency: a Result is immutable; any number of goroutines may query the
// same Graph concurrently.
package dijkstra
