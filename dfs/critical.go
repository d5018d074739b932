// SPDX-License-Identifier: MIT
//
// File: critical.go
// Role: Single points of failure in the route network (Tarjan low-link).
// Policy:
//   - An airport is critical when removing it splits its component.
//   - A route is critical (a bridge) when removing it splits its component.
//   - Results are ordered by arena index so they are stable per dataset.

package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/airgraph/core"
)

// Report lists the critical airports and routes of a network.
type Report struct {
	// Airports are articulation points, in insertion order.
	Airports []string `json:"airports"`
	// Routes are bridges. From is the endpoint registered first; the list is
	// ordered by From, then To, in insertion order.
	Routes []core.Edge `json:"routes"`
}

// lowlink holds Tarjan's numbering, filled from the DFS hooks.
// disc[i] == 0 means i has not been discovered yet.
type lowlink struct {
	g      *core.Graph
	disc   []int
	low    []int
	parent []int
	kids   []int
	cut    []bool
	bridge [][2]int
	stack  []int // current root-to-node path, by depth
	clock  int
}

// Critical finds every articulation airport and bridge route of g with one
// full DFS traversal: discovery times are taken on visit, low-links are
// settled on exit, when every child has already finished.
//
// Complexity: O(V+E) time, O(V) space.
func Critical(g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	l := &lowlink{
		g:      g,
		disc:   make([]int, n),
		low:    make([]int, n),
		parent: make([]int, n),
		kids:   make([]int, n),
		cut:    make([]bool, n),
		stack:  make([]int, 0, n),
	}
	if _, err := DFS(g, "", WithFullTraversal(), WithOnVisit(l.enter), WithOnExit(l.leave)); err != nil {
		return nil, err
	}

	rep := &Report{Airports: []string{}, Routes: make([]core.Edge, 0, len(l.bridge))}
	for i, c := range l.cut {
		if c {
			rep.Airports = append(rep.Airports, g.CodeAt(i))
		}
	}
	slices.SortFunc(l.bridge, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	for _, b := range l.bridge {
		from, to := g.CodeAt(b[0]), g.CodeAt(b[1])
		w, _ := g.Weight(from, to)
		rep.Routes = append(rep.Routes, core.Edge{From: from, To: to, Weight: w})
	}

	return rep, nil
}

// enter numbers u and links it to the airport one level up the DFS path.
func (l *lowlink) enter(code string, depth int) error {
	u, _ := l.g.Index(code)
	l.clock++
	l.disc[u], l.low[u] = l.clock, l.clock
	l.parent[u] = -1
	l.stack = append(l.stack[:depth], u)
	if depth > 0 {
		p := l.stack[depth-1]
		l.parent[u] = p
		l.kids[p]++
	}

	return nil
}

// leave settles low[u]. Every neighbor of u is discovered by now: children
// have finished and contribute their low, any other non-parent neighbor is an
// ancestor (or a finished descendant) and contributes its discovery time.
func (l *lowlink) leave(code string) error {
	u, _ := l.g.Index(code)
	p := l.parent[u]
	for _, nb := range l.g.NeighborsAt(u) {
		v := nb.To
		switch {
		case l.parent[v] == u:
			l.low[u] = min(l.low[u], l.low[v])
			if p != -1 && l.low[v] >= l.disc[u] {
				l.cut[u] = true
			}
			if l.low[v] > l.disc[u] {
				l.bridge = append(l.bridge, [2]int{min(u, v), max(u, v)})
			}
		case v != p:
			l.low[u] = min(l.low[u], l.disc[v])
		}
	}
	if p == -1 && l.kids[u] > 1 {
		l.cut[u] = true
	}

	return nil
}
