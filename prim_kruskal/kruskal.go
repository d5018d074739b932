// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// Over a possibly disconnected *core.Graph it produces the minimum spanning forest.
package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/airgraph/core"
)

// Kruskal computes the minimum spanning forest of g with a disjoint-set
// (union-find) using path halving and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : graph is nil.
//
// Steps:
//  1. Collect g.Edges() (each pair once, insertion order).
//  2. Stable sort by ascending weight, so ties keep insertion order.
//  3. Take every edge whose endpoints lie in different sets and union them.
//  4. Stop early once |V|-1 edges are taken; otherwise scan every edge.
//
// An empty graph yields a zero result. The total weight equals the sum of the
// Forest totals.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	res := Result{Edges: []core.Edge{}}
	n := g.VertexCount()
	if n < 2 {
		return res, nil
	}

	// 1-2. Sorted edge list.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// Union-find over arena indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(a, b int) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}
		return true
	}

	// 3-4. Greedy selection.
	for _, e := range edges {
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		if union(u, v) {
			res.Edges = append(res.Edges, e)
			res.TotalWeight += e.Weight
			if len(res.Edges) == n-1 {
				break
			}
		}
	}

	return res, nil
}
