package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/core"
)

func TestNeighbors(t *testing.T) {
	g, err := core.BuildFromRecords(worldRoutes())
	require.NoError(t, err)

	links, err := g.Neighbors("CDG")
	require.NoError(t, err)
	codes := make([]string, len(links))
	for i, l := range links {
		codes[i] = l.Code
	}
	assert.Equal(t, []string{"LHR", "NRT", "JFK"}, codes, "link order")

	d, err := g.Degree("CDG")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Neighbors("XXX")
	assert.ErrorIs(t, err, core.ErrUnknownCode)
	_, err = g.Degree("XXX")
	assert.ErrorIs(t, err, core.ErrUnknownCode)
}

func TestAirportLookup(t *testing.T) {
	g, err := core.BuildFromRecords(worldRoutes())
	require.NoError(t, err)

	assert.True(t, g.HasAirport("SYD"))
	assert.False(t, g.HasAirport("syd"), "exact match")

	_, err = g.Airport("ZZZ")
	require.ErrorIs(t, err, core.ErrUnknownCode)
	assert.Contains(t, err.Error(), `"ZZZ"`)

	i, ok := g.Index("LHR")
	require.True(t, ok)
	assert.Equal(t, "LHR", g.CodeAt(i))
	assert.Equal(t, "Heathrow", g.AirportAt(i).Name)
	assert.Len(t, g.Airports(), 6)
}

func TestCopiesDoNotAlias(t *testing.T) {
	g, err := core.BuildFromRecords(worldRoutes())
	require.NoError(t, err)

	codes := g.Codes()
	codes[0] = "MUT"
	assert.Equal(t, "JFK", g.Codes()[0])

	adj := g.Adjacency()
	adj["JFK"]["LHR"] = -1
	w, _ := g.Weight("JFK", "LHR")
	assert.Positive(t, w)
}

func TestEdgesAndStats(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 100},
		{From: "B", To: "C", Weight: 150},
		{From: "A", To: "C", Weight: 400},
		{From: "D", To: "E", Weight: 50},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 100},
		{From: "A", To: "C", Weight: 400},
		{From: "B", To: "C", Weight: 150},
		{From: "D", To: "E", Weight: 50},
	}, g.Edges())

	st := g.Stats()
	assert.Equal(t, core.GraphStats{
		VertexCount: 5,
		EdgeCount:   4,
		TotalWeight: 700,
		MaxDegree:   2,
		Hub:         "A",
	}, st)
}

// randomRecords draws n routes over a pool of size codes, skipping self-loops.
func randomRecords(seed int64, pool, n int) []core.RouteRecord {
	rng := rand.New(rand.NewSource(seed))
	eps := make([]core.Endpoint, pool)
	for i := range eps {
		eps[i] = core.Endpoint{
			Code: fmt.Sprintf("A%02d", i),
			Lat:  rng.Float64()*180 - 90,
			Lon:  rng.Float64()*360 - 180,
		}
	}
	out := make([]core.RouteRecord, 0, n)
	for len(out) < n {
		u, v := rng.Intn(pool), rng.Intn(pool)
		if u == v {
			continue
		}
		out = append(out, route(eps[u], eps[v]))
	}

	return out
}

func TestBuild_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("adjacency is symmetric", prop.ForAll(
		func(seed int64, n int) bool {
			g, err := core.BuildFromRecords(randomRecords(seed, 8, n))
			if err != nil {
				return false
			}
			adj := g.Adjacency()
			for u, nbs := range adj {
				for v, w := range nbs {
					if back, ok := adj[v][u]; !ok || back != w {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(0, 40),
	))

	properties.Property("edge count equals distinct unordered pairs", prop.ForAll(
		func(seed int64, n int) bool {
			recs := randomRecords(seed, 8, n)
			pairs := make(map[[2]string]struct{})
			for _, r := range recs {
				a, b := r.Origin.Code, r.Destination.Code
				if a > b {
					a, b = b, a
				}
				pairs[[2]string{a, b}] = struct{}{}
			}
			g, err := core.BuildFromRecords(recs)
			return err == nil && g.EdgeCount() == len(pairs) && len(g.Edges()) == len(pairs)
		},
		gen.Int64(), gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
