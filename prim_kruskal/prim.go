// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows a tree inside one connected component of a *core.Graph using a min-heap of candidate routes.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
)

// Prim computes the minimum spanning tree of the given component.
//
// component:
//   - nil       : every airport in g, in insertion order.
//   - empty     : zero weight, no edges.
//   - otherwise : the member codes; duplicates are ignored; the first member is the root.
//
// Only routes with both endpoints inside the component are considered. If the
// component is not connected, the tree covers only the part reachable from the
// root; use Forest for full coverage.
//
// Error Conditions:
//   - ErrNilGraph         : graph is nil.
//   - core.ErrUnknownCode : a member code is absent from g. No partial work is done.
//
// Steps:
//  1. Resolve member codes to arena indices and mark them in inComp.
//  2. Mark the root visited and push its in-component routes.
//  3. Pop the minimum candidate; skip it if its endpoint is already visited.
//  4. Otherwise record (from, to, weight), mark `to` visited and push its routes.
//  5. Stop when every member is visited or the frontier is empty.
//
// Tie-break: equal weights are ordered by from-index, then to-index (insertion order),
// so the selected edge set is reproducible.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, component []string) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if component == nil {
		component = g.Codes()
	}
	res := Result{Edges: []core.Edge{}}
	if len(component) == 0 {
		return res, nil
	}

	// 1. Resolve members.
	n := g.VertexCount()
	inComp := make([]bool, n)
	members := 0
	root := -1
	for _, code := range component {
		i, ok := g.Index(code)
		if !ok {
			return Result{}, core.UnknownCode(code)
		}
		if root < 0 {
			root = i
		}
		if !inComp[i] {
			inComp[i] = true
			members++
		}
	}

	// 2. Seed the frontier from the root.
	visited := make([]bool, n)
	pq := &edgePQ{}
	push := func(u int) {
		for _, nb := range g.NeighborsAt(u) {
			if inComp[nb.To] && !visited[nb.To] {
				heap.Push(pq, candidate{weight: nb.Weight, from: u, to: nb.To})
			}
		}
	}
	visited[root] = true
	covered := 1
	push(root)

	// 3-5. Grow the tree.
	for pq.Len() > 0 && covered < members {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		covered++
		res.TotalWeight += c.weight
		res.Edges = append(res.Edges, core.Edge{From: g.CodeAt(c.from), To: g.CodeAt(c.to), Weight: c.weight})
		push(c.to)
	}

	return res, nil
}

// Forest runs Prim once per connected component, in bfs.Components order.
// Isolated airports yield zero-weight trees so results align with the components.
// An empty graph yields an empty slice.
//
// Complexity: O(E log E) overall.
func Forest(g *core.Graph) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	comps := bfs.Components(g)
	out := make([]Result, 0, len(comps))
	for _, comp := range comps {
		r, err := Prim(g, comp)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// candidate is a frontier route (from is inside the tree).
type candidate struct {
	weight   float64
	from, to int
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// (weight, from, to).
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then from-index, then to-index.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
