package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/metrics"
	"github.com/katalvlaran/airgraph/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	jfk = core.Endpoint{Code: "JFK", Name: "John F Kennedy Intl", City: "New York", Country: "United States", Lat: 40.6413, Lon: -73.7781}
	lhr = core.Endpoint{Code: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom", Lat: 51.47, Lon: -0.4543}
	cdg = core.Endpoint{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Lat: 49.0097, Lon: 2.5479}
	nrt = core.Endpoint{Code: "NRT", Name: "Narita Intl", City: "Tokyo", Country: "Japan", Lat: 35.772, Lon: 140.3929}
	syd = core.Endpoint{Code: "SYD", Name: "Kingsford Smith", City: "Sydney", Country: "Australia", Lat: -33.9399, Lon: 151.1753}
	akl = core.Endpoint{Code: "AKL", Name: "Auckland", City: "Auckland", Country: "New Zealand", Lat: -37.0082, Lon: 174.785}
)

func world() []core.RouteRecord {
	return []core.RouteRecord{
		{Origin: jfk, Destination: lhr},
		{Origin: lhr, Destination: cdg},
		{Origin: cdg, Destination: nrt},
		{Origin: jfk, Destination: cdg},
		{Origin: syd, Destination: akl},
	}
}

type fixture struct {
	store *core.Store
	reg   *metrics.Registry
	h     http.Handler
}

func newFixture(t *testing.T, loader server.Loader) *fixture {
	t.Helper()
	st := core.NewStore()
	_, err := st.Load(core.Records(world()))
	require.NoError(t, err)
	reg := metrics.NewRegistry()
	opts := []server.Option{server.WithMetrics(reg, true), server.WithFarthestLimit(2)}
	if loader != nil {
		opts = append(opts, server.WithLoader(loader))
	}

	return &fixture{store: st, reg: reg, h: server.New(st, opts...).Handler()}
}

func (f *fixture) do(t *testing.T, method, target string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	f.h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}

	return w.Code
}

func TestHealthAndStats(t *testing.T) {
	f := newFixture(t, nil)

	var health map[string]any
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/health", &health))
	assert.Equal(t, "ok", health["status"])
	assert.EqualValues(t, 1, health["generation"])
	assert.EqualValues(t, 6, health["airports"])

	var stats core.GraphStats
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/graph/stats", &stats))
	assert.Equal(t, 6, stats.VertexCount)
	assert.Equal(t, 5, stats.EdgeCount)
	assert.Equal(t, "CDG", stats.Hub)
}

func TestAirportLookups(t *testing.T) {
	f := newFixture(t, nil)

	var a core.Airport
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/airports/nrt", &a), "codes are upper-cased")
	assert.Equal(t, "Narita Intl", a.Name)

	var nb struct {
		Code      string      `json:"code"`
		Neighbors []core.Link `json:"neighbors"`
	}
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/airports/CDG/neighbors", &nb))
	codes := make([]string, 0, len(nb.Neighbors))
	for _, l := range nb.Neighbors {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"LHR", "NRT", "JFK"}, codes)

	var e server.ErrorResponse
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/airports/XXX", &e))
	assert.Contains(t, e.Error, "unknown airport code")
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/airports/XXX/neighbors", nil))
}

func TestReach(t *testing.T) {
	f := newFixture(t, nil)

	type hop struct {
		Code string `json:"code"`
		Hops int    `json:"hops"`
		Via  string `json:"via"`
	}
	var resp struct {
		Source   string  `json:"source"`
		MaxHops  int     `json:"max_hops"`
		MaxLegKm float64 `json:"max_leg_km"`
		Reached  []hop   `json:"reached"`
	}

	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/airports/jfk/reach", &resp))
	assert.Equal(t, "JFK", resp.Source)
	assert.Equal(t, server.DefaultReachHops, resp.MaxHops)
	assert.Equal(t, []hop{{"LHR", 1, "JFK"}, {"CDG", 1, "JFK"}, {"NRT", 2, "CDG"}}, resp.Reached)

	resp.Reached = nil
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/airports/JFK/reach?hops=1", &resp))
	assert.Equal(t, []hop{{"LHR", 1, "JFK"}, {"CDG", 1, "JFK"}}, resp.Reached)

	// JFK-CDG (5833 km) and CDG-NRT (9710 km) are out of range, JFK-LHR (5540 km) is not.
	resp.Reached = nil
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/airports/JFK/reach?hops=3&max_leg_km=5600", &resp))
	assert.Equal(t, 5600.0, resp.MaxLegKm)
	assert.Equal(t, []hop{{"LHR", 1, "JFK"}, {"CDG", 2, "LHR"}}, resp.Reached)

	var e server.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/airports/JFK/reach?hops=0", &e))
	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/airports/JFK/reach?max_leg_km=-5", &e))
	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/airports/JFK/reach?max_leg_km=far", &e))
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/airports/XXX/reach", &e))
}

func TestConnectivity(t *testing.T) {
	f := newFixture(t, nil)

	var resp struct {
		Connected  bool       `json:"connected"`
		Count      int        `json:"count"`
		Components [][]string `json:"components"`
	}
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/connectivity", &resp))
	assert.False(t, resp.Connected)
	assert.Equal(t, 2, resp.Count)
	assert.ElementsMatch(t, []string{"JFK", "LHR", "CDG", "NRT"}, resp.Components[0])
	assert.ElementsMatch(t, []string{"SYD", "AKL"}, resp.Components[1])
}

type mstBody struct {
	Method      string  `json:"method"`
	TotalWeight float64 `json:"total_weight_km"`
	Trees       []struct {
		TotalWeight float64     `json:"total_weight_km"`
		Edges       []core.Edge `json:"edges"`
	} `json:"trees"`
}

func TestCritical(t *testing.T) {
	f := newFixture(t, nil)

	var resp struct {
		Airports []string    `json:"airports"`
		Routes   []core.Edge `json:"routes"`
	}
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/critical", &resp))
	assert.Equal(t, []string{"CDG"}, resp.Airports)
	require.Len(t, resp.Routes, 2)
	assert.Equal(t, "CDG", resp.Routes[0].From)
	assert.Equal(t, "NRT", resp.Routes[0].To)
	assert.Greater(t, resp.Routes[0].Weight, 9000.0)
	assert.Equal(t, "SYD", resp.Routes[1].From)
	assert.Equal(t, "AKL", resp.Routes[1].To)
}

func TestMST(t *testing.T) {
	f := newFixture(t, nil)

	var prim, kruskal, one mstBody
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/mst", &prim))
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/mst?method=kruskal", &kruskal))
	assert.Len(t, prim.Trees, 2, "one tree per component")
	assert.Len(t, prim.Trees[0].Edges, 3)
	assert.Len(t, kruskal.Trees, 1)
	assert.Len(t, kruskal.Trees[0].Edges, 4)
	assert.InDelta(t, prim.TotalWeight, kruskal.TotalWeight, 1e-6)

	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/mst?airport=akl", &one))
	require.Len(t, one.Trees, 1)
	assert.Equal(t, "AKL", one.Trees[0].Edges[0].From, "rooted at the requested airport")
	assert.Equal(t, "SYD", one.Trees[0].Edges[0].To)

	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/mst?method=boruvka", nil))
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/mst?airport=ZZZ", nil))
}

func TestFarthest(t *testing.T) {
	f := newFixture(t, nil)

	var resp struct {
		Source  string `json:"source"`
		Limit   int    `json:"limit"`
		Results []struct {
			Code     string  `json:"code"`
			Distance float64 `json:"distance_km"`
		} `json:"results"`
	}
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/farthest/jfk", &resp))
	assert.Equal(t, "JFK", resp.Source)
	assert.Equal(t, 2, resp.Limit, "configured default")
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "NRT", resp.Results[0].Code)
	assert.GreaterOrEqual(t, resp.Results[0].Distance, resp.Results[1].Distance)

	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/farthest/JFK?k=10", &resp))
	assert.Len(t, resp.Results, 3, "source and unreachable airports excluded")

	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/farthest/JFK?k=0", nil))
	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/farthest/JFK?k=many", nil))
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/farthest/ZZZ", nil))
}

type pathBody struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path"`
	Legs      []struct {
		From     string  `json:"from"`
		To       string  `json:"to"`
		Distance float64 `json:"distance_km"`
	} `json:"legs"`
	Total *float64 `json:"total_km"`
}

func TestPath(t *testing.T) {
	f := newFixture(t, nil)

	var p pathBody
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/path?from=jfk&to=nrt", &p))
	assert.True(t, p.Reachable)
	assert.Equal(t, []string{"JFK", "CDG", "NRT"}, p.Path)
	require.NotNil(t, p.Total)
	var sum float64
	for _, l := range p.Legs {
		sum += l.Distance
	}
	assert.InDelta(t, sum, *p.Total, 1e-9)

	var hops pathBody
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/path?from=LHR&to=NRT&mode=hops", &hops))
	assert.Equal(t, []string{"LHR", "CDG", "NRT"}, hops.Path)
	assert.Len(t, hops.Legs, 2)

	var none pathBody
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/path?from=JFK&to=SYD", &none))
	assert.False(t, none.Reachable)
	assert.Empty(t, none.Path)
	assert.Nil(t, none.Total, "unreachable total is null")

	require.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/path?from=JFK&to=AKL&mode=hops", &none))
	assert.False(t, none.Reachable)

	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/path?from=JFK", nil))
	assert.Equal(t, http.StatusBadRequest, f.do(t, "GET", "/v1/path?from=JFK&to=NRT&mode=scenic", nil))
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/path?from=JFK&to=ZZZ", nil))
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/path?from=ZZZ&to=JFK&mode=hops", nil))
}

func TestPath_ConcurrentIdenticalQueries(t *testing.T) {
	f := newFixture(t, nil)

	var wg sync.WaitGroup
	paths := make([][]string, 16)
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			f.h.ServeHTTP(w, httptest.NewRequest("GET", "/v1/path?from=JFK&to=NRT", nil))
			var p pathBody
			if w.Code == http.StatusOK && json.Unmarshal(w.Body.Bytes(), &p) == nil {
				paths[i] = p.Path
			}
		}(i)
	}
	wg.Wait()
	for _, p := range paths {
		assert.Equal(t, []string{"JFK", "CDG", "NRT"}, p)
	}
}

func TestReload(t *testing.T) {
	var (
		st   *core.Store
		fail bool
	)
	loader := func() (*core.Graph, error) {
		if fail {
			return nil, &core.IngestionError{Index: 3, Line: 5, Field: "origin.code", Err: core.ErrMissingField}
		}
		return st.Load(core.Records([]core.RouteRecord{{Origin: syd, Destination: akl}}))
	}
	f := newFixture(t, loader)
	st = f.store

	var ok struct {
		Generation uint64          `json:"generation"`
		Stats      core.GraphStats `json:"stats"`
	}
	require.Equal(t, http.StatusOK, f.do(t, "POST", "/v1/reload", &ok))
	assert.EqualValues(t, 2, ok.Generation)
	assert.Equal(t, 2, ok.Stats.VertexCount)
	assert.Equal(t, http.StatusNotFound, f.do(t, "GET", "/v1/airports/JFK", nil), "old dataset is gone")

	fail = true
	var e server.ErrorResponse
	require.Equal(t, http.StatusUnprocessableEntity, f.do(t, "POST", "/v1/reload", &e))
	assert.Contains(t, e.Error, "line 5")
	assert.Equal(t, http.StatusOK, f.do(t, "GET", "/v1/airports/SYD", nil), "failed reload keeps the snapshot")
	assert.EqualValues(t, 2, f.store.Generation())
}

func TestReload_Disabled(t *testing.T) {
	f := newFixture(t, nil)
	var e server.ErrorResponse
	assert.Equal(t, http.StatusNotImplemented, f.do(t, "POST", "/v1/reload", &e))
	assert.True(t, strings.Contains(e.Error, server.ErrReloadDisabled.Error()))
}

func TestReload_InternalError(t *testing.T) {
	f := newFixture(t, func() (*core.Graph, error) { return nil, errors.New("disk gone") })
	assert.Equal(t, http.StatusInternalServerError, f.do(t, "POST", "/v1/reload", nil))
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	f.do(t, "GET", "/v1/path?from=JFK&to=NRT", nil)
	f.do(t, "GET", "/v1/farthest/ZZZ", nil)

	w := httptest.NewRecorder()
	f.h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `airgraph_http_requests_total{method="GET",route="/v1/path",status="200"} 1`)
	assert.Contains(t, body, `airgraph_queries_total{query="farthest",status="unknown_code"} 1`)
	assert.Contains(t, body, `airgraph_graph_airports 6`)

	hidden := server.New(core.NewStore()).Handler()
	w = httptest.NewRecorder()
	hidden.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
