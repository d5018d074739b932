// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: Queries derived from a ShortestPaths result: farthest ranking,
// path reconstruction and leg-by-leg itineraries.
// Determinism:
//   - FarthestNodes orders by distance descending, then code ascending.

package dijkstra

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
)

// FarthestNodes returns up to k reachable airports farthest from source,
// excluding source itself. k <= 0 selects DefaultFarthestLimit.
//
// Errors: ErrNilGraph, core.ErrUnknownCode.
// Complexity: O((V + E) log V + V log V).
func FarthestNodes(g *core.Graph, source string, k int) ([]Ranked, error) {
	res, err := ShortestPaths(g, source)
	if err != nil {
		return nil, err
	}

	return res.Farthest(k), nil
}

// Farthest ranks the airports of an existing result; see FarthestNodes.
func (r *Result) Farthest(k int) []Ranked {
	if k <= 0 {
		k = DefaultFarthestLimit
	}
	out := make([]Ranked, 0, len(r.dist))
	for i, ok := range r.reach {
		if !ok || i == r.source {
			continue
		}
		out = append(out, Ranked{Code: r.g.CodeAt(i), Distance: r.dist[i]})
	}
	slices.SortFunc(out, func(a, b Ranked) int {
		if c := cmp.Compare(b.Distance, a.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	if len(out) > k {
		out = out[:k]
	}

	return out
}

// ReconstructPath walks predecessor links from destination back to source and
// returns source -> ... -> destination.
//
// Returns:
//   - ErrNilResult        : res is nil.
//   - core.ErrUnknownCode : source or destination is not a registered airport.
//   - ErrSourceMismatch   : source differs from res.Source().
//   - an empty, non-nil path with a nil error when destination is unreachable.
func ReconstructPath(res *Result, source, destination string) ([]string, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	s, ok := res.g.Index(source)
	if !ok {
		return nil, core.UnknownCode(source)
	}
	d, ok := res.g.Index(destination)
	if !ok {
		return nil, core.UnknownCode(destination)
	}
	if s != res.source {
		return nil, ErrSourceMismatch
	}
	if !res.reach[d] {
		return []string{}, nil
	}

	var rev []int
	for v := d; v >= 0; v = res.prev[v] {
		rev = append(rev, v)
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = res.g.CodeAt(v)
	}

	return path, nil
}

// Route computes a shortest itinerary from -> to with per-leg distances taken
// from the route network. An unreachable destination is reported through
// Itinerary.Reachable, not as an error.
//
// Errors: ErrNilGraph, core.ErrUnknownCode.
func Route(g *core.Graph, from, to string) (*Itinerary, error) {
	res, err := ShortestPaths(g, from)
	if err != nil {
		return nil, err
	}
	path, err := ReconstructPath(res, from, to)
	if err != nil {
		return nil, err
	}

	return itinerary(g, from, to, path), nil
}

// FewestHops is Route minimizing the number of connections instead of the
// distance flown. Among equal-hop routes the breadth-first discovery order of
// the adjacency decides.
//
// Errors: ErrNilGraph, core.ErrUnknownCode.
func FewestHops(g *core.Graph, from, to string) (*Itinerary, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasAirport(to) {
		return nil, core.UnknownCode(to)
	}
	walk, err := bfs.BFS(g, from)
	if err != nil {
		return nil, err
	}
	path, err := walk.PathTo(to)
	if errors.Is(err, bfs.ErrNoPath) {
		path = []string{}
	} else if err != nil {
		return nil, err
	}

	return itinerary(g, from, to, path), nil
}

// itinerary attaches legs and the total to path; an empty path is unreachable.
func itinerary(g *core.Graph, from, to string, path []string) *Itinerary {
	it := &Itinerary{From: from, To: to, Path: path, Legs: []Leg{}}
	if len(path) == 0 {
		return it
	}
	it.Reachable = true
	var total float64
	for i := 1; i < len(path); i++ {
		w, _ := g.Weight(path[i-1], path[i])
		total += w
		it.Legs = append(it.Legs, Leg{From: path[i-1], To: path[i], Distance: w})
	}
	it.Total = Finite(total)

	return it
}
