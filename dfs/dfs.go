package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airgraph/core"
)

// walker encapsulates DFS state over arena indices.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	visited []bool
	res     *Result
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every component, restarting from unvisited airports in insertion order,
// and start is ignored.
//
// Neighbors are explored in adjacency insertion order, so Order is deterministic
// for a given graph. On a hook or context error the partial Result is returned
// with Order cleared.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if o.FullTraversal {
		for i := 0; i < n; i++ {
			if w.visited[i] {
				continue
			}
			if err := w.root(i); err != nil {
				return w.res, err
			}
		}

		return w.res, nil
	}

	s, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, core.UnknownCode(start))
	}

	return w.res, w.root(s)
}

func (w *walker) root(idx int) error {
	w.res.Roots = append(w.res.Roots, w.graph.CodeAt(idx))
	if err := w.traverse(idx, 0); err != nil {
		w.res.Order = nil
		return err
	}

	return nil
}

// traverse visits idx at depth and recurses into unvisited neighbors.
func (w *walker) traverse(idx, depth int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	code := w.graph.CodeAt(idx)
	w.visited[idx] = true
	w.res.Depth[code] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(code, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", code, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nb := range w.graph.NeighborsAt(idx) {
			if w.visited[nb.To] {
				continue
			}
			next := w.graph.CodeAt(nb.To)
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(code, next) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[next] = code
			if err := w.traverse(nb.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(code); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", code, err)
		}
	}
	w.res.Order = append(w.res.Order, code)

	return nil
}
