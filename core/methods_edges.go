// File: methods_edges.go
// Role: Adjacency queries: Weight, Neighbors, NeighborsAt, Adjacency, Edges.
// Determinism:
//   - Neighbor order is the order in which each pair was first linked.
//   - Edges() lists each pair once, ordered by (from index, neighbor order).

package core

// Weight returns the edge weight between u and v and whether they are adjacent.
// Symmetric: Weight(u, v) == Weight(v, u).
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, bool) {
	ui, ok := g.index[u]
	if !ok {
		return 0, false
	}
	vi, ok := g.index[v]
	if !ok {
		return 0, false
	}
	p, ok := g.slot[ui][vi]
	if !ok {
		return 0, false
	}

	return g.adj[ui][p].Weight, true
}

// Neighbors returns code's adjacency as code/weight links, in link order.
// Returns ErrUnknownCode for an unregistered code.
// Complexity: O(deg).
func (g *Graph) Neighbors(code string) ([]Link, error) {
	i, ok := g.index[code]
	if !ok {
		return nil, UnknownCode(code)
	}
	out := make([]Link, len(g.adj[i]))
	for k, nb := range g.adj[i] {
		out[k] = Link{Code: g.codes[nb.To], Weight: nb.Weight}
	}

	return out, nil
}

// NeighborsAt returns the live adjacency slice of arena index i.
// Callers must treat it as read-only; it is shared with the Graph.
// Complexity: O(1).
func (g *Graph) NeighborsAt(i int) []Neighbor { return g.adj[i] }

// Degree returns the number of distinct neighbors of code.
func (g *Graph) Degree(code string) (int, error) {
	i, ok := g.index[code]
	if !ok {
		return 0, UnknownCode(code)
	}

	return len(g.adj[i]), nil
}

// Adjacency returns a copy of the network as code -> {neighbor: weight}.
// Complexity: O(V+E).
func (g *Graph) Adjacency() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(g.codes))
	for u, nbs := range g.adj {
		inner := make(map[string]float64, len(nbs))
		for _, nb := range nbs {
			inner[g.codes[nb.To]] = nb.Weight
		}
		out[g.codes[u]] = inner
	}

	return out
}

// Edges lists every undirected edge exactly once, From being the endpoint
// registered first.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbs := range g.adj {
		for _, nb := range nbs {
			if u < nb.To {
				out = append(out, Edge{From: g.codes[u], To: g.codes[nb.To], Weight: nb.Weight})
			}
		}
	}

	return out
}
