// Package dijkstra implements Dijkstra's shortest-path algorithm on the route network.
//
// It processes airports in order of increasing distance using a min-heap,
// relaxing routes and updating distances accordingly. Decrease-key is lazy:
// an improved distance is pushed as a new entry and the outdated one is
// skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (up to E stale entries in the heap)
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/airgraph/core"
)

// ShortestPaths computes the shortest great-circle distance from source to
// every airport in g, together with the predecessor of each reachable airport.
//
// Validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (core.ErrUnknownCode).
//
// Unreachable airports are not an error: their Distance is Unreachable and
// they have no predecessor. Edge weights are non-negative by construction of
// core.Graph, so no negative-weight scan is needed.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	s, ok := g.Index(source)
	if !ok {
		return nil, core.UnknownCode(source)
	}

	r := newRunner(g, s, cfg)
	r.init()
	r.process()

	return &Result{g: g, source: s, dist: r.dist, reach: r.reach, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	source  int
	dist    []float64 // best-known distance; meaningful only where reach[i]
	reach   []bool    // a finite distance has been found
	prev    []int     // predecessor index, -1 if none
	pq      nodePQ
}

func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()
	return &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]float64, n),
		reach:   make([]bool, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init clears predecessors and seeds the heap with (source, 0).
func (r *runner) init() {
	for i := range r.prev {
		r.prev[i] = -1
	}
	r.dist[r.source] = 0
	r.reach[r.source] = true
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: r.source, dist: 0})
}

// process is the core loop: pop the nearest entry, skip it if stale, else relax.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		// Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.dist[item.idx] {
			continue
		}
		r.relax(item.idx)
	}
}

// relax tries to improve every neighbor of u through u. Only strict
// improvements within MaxDistance are recorded and pushed.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, nb := range r.g.NeighborsAt(u) {
		cand := du + nb.Weight
		if cand > r.options.MaxDistance {
			continue
		}
		if r.reach[nb.To] && cand >= r.dist[nb.To] {
			continue
		}
		r.dist[nb.To] = cand
		r.reach[nb.To] = true
		r.prev[nb.To] = u
		heap.Push(&r.pq, nodeItem{idx: nb.To, dist: cand})
	}
}

// nodeItem is a heap entry: an airport index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by distance, then index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
