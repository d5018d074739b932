// SPDX-License-Identifier: MIT
//
// File: allpairs.go
// Role: All-pairs great-circle shortest distances over a core.Graph.
// Layout:
//   - Row/column i is the airport at arena index i (g.CodeAt(i)), i.e. insertion order.
//   - +Inf marks an unreachable pair; the diagonal is 0.

package matrix

import (
	"math"

	"github.com/katalvlaran/airgraph/core"
)

// AllPairs builds the V×V direct-route matrix of g and closes it with
// Floyd–Warshall. An empty graph yields a 0×0 matrix.
//
// Complexity: O(V^3) time, O(V^2) memory. Intended for small networks and as
// a brute-force cross-check of single-source results.
func AllPairs(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	inf := math.Inf(1)
	for i := range d.data {
		d.data[i] = inf
	}
	for u := 0; u < n; u++ {
		d.data[u*n+u] = 0
		for _, nb := range g.NeighborsAt(u) {
			d.data[u*n+nb.To] = nb.Weight
		}
	}
	floydWarshallInPlace(d)

	return d, nil
}
