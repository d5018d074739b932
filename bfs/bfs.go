// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores airports in increasing hop count from a start airport,
// with an optional visit hook, hop and range caps, and route filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airgraph/core"
)

// queueItem pairs an arena index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state. It works on arena indices and only
// translates to codes when recording results or calling hooks.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrStartVertexNotFound (joined with core.ErrUnknownCode),
// ErrOptionViolation for bad options, ctx errors, or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, core.UnknownCode(start))
	}

	w := newWalker(g, o)
	w.enqueue(s, 0, -1)

	return w.res, w.loop()
}

func newWalker(g *core.Graph, o Options) *walker {
	n := g.VertexCount()
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks idx visited at hop count d, records its parent (-1 for the
// root) and appends it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	code := w.graph.CodeAt(idx)
	w.visited[idx] = true
	w.res.Depth[code] = d
	if parent >= 0 {
		w.res.Parent[code] = w.graph.CodeAt(parent)
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop drains the queue in FIFO order until it is empty, a hook fails or the
// context is done.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[head]
		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}

	return nil
}

// visit records the airport in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	code := w.graph.CodeAt(item.idx)
	w.res.Order = append(w.res.Order, code)
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(code, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", code, err)
	}

	return nil
}

// expand enqueues every unseen neighbor reachable over an allowed route, in
// adjacency order, unless the hop cap is reached.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return
	}
	from := w.graph.CodeAt(item.idx)
	for _, nb := range w.graph.NeighborsAt(item.idx) {
		if w.visited[nb.To] {
			continue
		}
		if !w.opts.allows(core.Edge{From: from, To: w.graph.CodeAt(nb.To), Weight: nb.Weight}) {
			continue
		}
		w.enqueue(nb.To, next, item.idx)
	}
}
