// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected-component partition and the connectivity predicate.
// Determinism:
//   - Components are seeded in airport insertion order.
//   - Codes inside a component follow BFS order from its seed.

package bfs

import "github.com/katalvlaran/airgraph/core"

// Components partitions g into connected components. Every airport appears in
// exactly one component; an isolated airport forms its own singleton. A nil or
// empty graph yields an empty (non-nil) slice.
//
// Complexity: O(V+E) time, O(V) space.
func Components(g *core.Graph) [][]string {
	out := [][]string{}
	if g == nil || g.Empty() {
		return out
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue[:0], s)
		comp := []string{}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			comp = append(comp, g.CodeAt(u))
			for _, nb := range g.NeighborsAt(u) {
				if !seen[nb.To] {
					seen[nb.To] = true
					queue = append(queue, nb.To)
				}
			}
		}
		out = append(out, comp)
	}

	return out
}

// IsConnected reports whether g is non-empty and every airport is reachable
// from every other.
//
// Complexity: O(V+E).
func IsConnected(g *core.Graph) bool {
	if g == nil || g.Empty() {
		return false
	}
	res, err := BFS(g, g.CodeAt(0))
	if err != nil {
		return false
	}

	return len(res.Order) == g.VertexCount()
}
