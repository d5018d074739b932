// Package bfs answers hop-count and connectivity questions over a core.Graph.
//
// What
//
//   - BFS explores airports in non-decreasing hop count from a start airport
//     and returns a Result containing:
//   - Order: visit sequence
//   - Depth: code -> hops from start
//   - Parent: code -> predecessor in the BFS tree
//   - Result.PathTo(dest) yields the fewest-connections itinerary.
//   - Components partitions the network into connected components.
//   - IsConnected reports whether the network is a single non-empty component.
//   - Result.Reached lists the airports within reach and how they were reached.
//   - WithOnVisit observes each airport and may abort with an error.
//   - WithMaxHops caps connections, WithMaxLegKm drops routes beyond an
//     aircraft's range, and WithRouteFilter drops arbitrary routes.
//
// Determinism
//
//	core.Graph keeps each airport's neighbors in link order and BFS enqueues
//	them in that order, so visit sequence and component layout are reproducible
//	for a given input record order. Components are seeded in airport insertion
//	order.
//
// Complexity (V = airports, E = routes)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "JFK", bfs.WithMaxHops(2), bfs.WithMaxLegKm(6000))
//	path, err := res.PathTo("NRT")
//
//	for _, comp := range bfs.Components(g) { ... }
//	if !bfs.IsConnected(g) { ... }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start code is absent (also core.ErrUnknownCode).
//   - ErrOptionViolation      if an Option is invalid (negative hops, non-positive range).
//   - ErrNoPath               from PathTo for an unreached code.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
