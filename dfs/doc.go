// Package dfs implements depth-first search over core.Graph and the
// single-point-of-failure analysis built on it.
//
// DFS(g, start, opts...) walks the route network recursively in adjacency
// insertion order:
//
//   - WithFullTraversal: restart from every unvisited airport (DFS forest)
//   - WithOnVisit / WithOnExit: pre- and post-order hooks; an error aborts
//   - WithMaxDepth: stop descending past a hop limit
//   - WithFilterNeighbor: skip routes, counted in Result.SkippedNeighbors
//   - WithContext: cancellation
//
// Critical(g) reports articulation airports and bridge routes, i.e. the
// airports and routes whose loss disconnects part of the network. It is
// Tarjan's low-link numbering driven by DFS hooks: WithOnVisit numbers each
// airport and WithOnExit settles its low-link. O(V+E).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    joined with core.ErrUnknownCode for a missing start.
//   - ErrOptionViolation        for MaxDepth < -1.
//   - ctx.Err()                 when the context is done.
//   - any error returned by OnVisit or OnExit, wrapped with the airport code.
package dfs
