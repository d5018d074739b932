// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade: counts and the stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - A built Graph is immutable; no locking is needed for reads.

package core

// VertexCount returns the number of registered airports.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.codes) }

// EdgeCount returns the number of undirected edges (each unordered pair once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Empty reports whether the graph has no airports.
func (g *Graph) Empty() bool { return len(g.codes) == 0 }

// Stats produces a deterministic summary of the graph.
//
// Implementation:
//   - Stage 1: Copy vertex/edge counts.
//   - Stage 2: One pass over the arena summing each pair once (u < v) and
//     tracking the highest-degree airport; ties keep the earliest index.
//
// Complexity: Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.codes),
		EdgeCount:   g.edges,
	}
	var (
		u  int
		nb Neighbor
	)
	for u = range g.adj {
		if d := len(g.adj[u]); d > stats.MaxDegree {
			stats.MaxDegree = d
			stats.Hub = g.codes[u]
		}
		for _, nb = range g.adj[u] {
			if u < nb.To { // count each unordered pair once
				stats.TotalWeight += nb.Weight
			}
		}
	}

	return stats
}
