package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/airgraph/bfs"
	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dfs"
	"github.com/katalvlaran/airgraph/dijkstra"
	"github.com/katalvlaran/airgraph/metrics"
	"github.com/katalvlaran/airgraph/prim_kruskal"
)

// Path modes.
const (
	ModeDistance = "distance"
	ModeHops     = "hops"
)

// DefaultReachHops is the connection cap for /v1/airports/:code/reach when
// the query omits hops.
const DefaultReachHops = 2

var (
	// ErrBadQuery indicates a missing or malformed query parameter.
	ErrBadQuery = errors.New("server: bad query")

	// ErrReloadDisabled indicates POST /v1/reload without a Loader.
	ErrReloadDisabled = errors.New("server: reload not configured")
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status     string `json:"status"`
	Generation uint64 `json:"generation"`
	Airports   int    `json:"airports"`
}

type neighborsResponse struct {
	Code      string      `json:"code"`
	Neighbors []core.Link `json:"neighbors"`
}

type connectivityResponse struct {
	Connected  bool       `json:"connected"`
	Count      int        `json:"count"`
	Components [][]string `json:"components"`
}

type mstResponse struct {
	Method      string                `json:"method"`
	TotalWeight float64               `json:"total_weight_km"`
	Trees       []prim_kruskal.Result `json:"trees"`
}

type farthestResponse struct {
	Source  string            `json:"source"`
	Limit   int               `json:"limit"`
	Results []dijkstra.Ranked `json:"results"`
}

type reachResponse struct {
	Source   string    `json:"source"`
	MaxHops  int       `json:"max_hops"`
	MaxLegKm float64   `json:"max_leg_km,omitempty"`
	Reached  []bfs.Hop `json:"reached"`
}

type reloadResponse struct {
	Generation uint64          `json:"generation"`
	Stats      core.GraphStats `json:"stats"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:     "ok",
		Generation: s.store.Generation(),
		Airports:   s.store.Snapshot().VertexCount(),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot().Stats())
}

func (s *Server) handleAirport(c *gin.Context) {
	a, err := s.store.Snapshot().Airport(normCode(c.Param("code")))
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleNeighbors(c *gin.Context) {
	code := normCode(c.Param("code"))
	links, err := s.store.Snapshot().Neighbors(code)
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, neighborsResponse{Code: code, Neighbors: links})
}

// handleReach lists the airports within ?hops= connections of :code, using only
// routes no longer than ?max_leg_km= when given.
func (s *Server) handleReach(c *gin.Context) {
	code := normCode(c.Param("code"))
	hops := DefaultReachHops
	if raw := c.Query("hops"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: hops=%q must be a positive integer", ErrBadQuery, raw))
			return
		}
		hops = n
	}
	opts := []bfs.Option{bfs.WithMaxHops(hops)}
	var legKm float64
	if raw := c.Query("max_leg_km"); raw != "" {
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(km > 0) || math.IsInf(km, 1) {
			s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: max_leg_km=%q must be a positive distance", ErrBadQuery, raw))
			return
		}
		legKm = km
		opts = append(opts, bfs.WithMaxLegKm(km))
	}
	g := s.store.Snapshot()

	var walk *bfs.Result
	err := s.query("reach", func() error {
		var err error
		walk, err = bfs.BFS(g, code, opts...)
		return err
	})
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, reachResponse{Source: code, MaxHops: hops, MaxLegKm: legKm, Reached: walk.Reached()})
}

func (s *Server) handleConnectivity(c *gin.Context) {
	g := s.store.Snapshot()
	var comps [][]string
	_ = s.query("components", func() error {
		comps = bfs.Components(g)
		return nil
	})
	c.JSON(http.StatusOK, connectivityResponse{
		Connected:  len(comps) == 1,
		Count:      len(comps),
		Components: comps,
	})
}

// handleCritical lists the airports and routes whose loss disconnects part of
// the network.
func (s *Server) handleCritical(c *gin.Context) {
	g := s.store.Snapshot()
	var rep *dfs.Report
	err := s.query("critical", func() error {
		var err error
		rep, err = dfs.Critical(g)
		return err
	})
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// handleMST returns the spanning forest of the whole network, or with
// ?airport=CODE the Prim tree of that airport's component rooted at CODE.
func (s *Server) handleMST(c *gin.Context) {
	method := c.DefaultQuery("method", prim_kruskal.MethodPrim)
	if method != prim_kruskal.MethodPrim && method != prim_kruskal.MethodKruskal {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: method %q", ErrBadQuery, method))
		return
	}
	g := s.store.Snapshot()
	airport := normCode(c.Query("airport"))

	var resp mstResponse
	err := s.query("mst", func() error {
		switch {
		case airport != "":
			walk, err := bfs.BFS(g, airport)
			if err != nil {
				return err
			}
			tree, err := prim_kruskal.Prim(g, walk.Order)
			if err != nil {
				return err
			}
			resp = mstResponse{Method: prim_kruskal.MethodPrim, TotalWeight: tree.TotalWeight, Trees: []prim_kruskal.Result{tree}}
		case method == prim_kruskal.MethodPrim:
			trees, err := prim_kruskal.Forest(g)
			if err != nil {
				return err
			}
			resp = mstResponse{Method: method, TotalWeight: prim_kruskal.Merge(trees).TotalWeight, Trees: trees}
		default:
			forest, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
			if err != nil {
				return err
			}
			resp = mstResponse{Method: method, TotalWeight: forest.TotalWeight, Trees: []prim_kruskal.Result{forest}}
		}
		return nil
	})
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleFarthest(c *gin.Context) {
	code := normCode(c.Param("code"))
	k := s.farthestLimit
	if raw := c.Query("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: k=%q must be a positive integer", ErrBadQuery, raw))
			return
		}
		k = n
	}
	g := s.store.Snapshot()

	var ranked []dijkstra.Ranked
	err := s.query("farthest", func() error {
		var err error
		ranked, err = dijkstra.FarthestNodes(g, code, k)
		return err
	})
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, farthestResponse{Source: code, Limit: k, Results: ranked})
}

func (s *Server) handlePath(c *gin.Context) {
	from, to := normCode(c.Query("from")), normCode(c.Query("to"))
	if from == "" || to == "" {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: from and to are required", ErrBadQuery))
		return
	}
	mode := c.DefaultQuery("mode", ModeDistance)
	if mode != ModeDistance && mode != ModeHops {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: mode %q", ErrBadQuery, mode))
		return
	}
	g := s.store.Snapshot()

	// Keyed by snapshot identity so a reload never serves a stale shared result.
	key := fmt.Sprintf("%p|%s|%s|%s", g, mode, from, to)
	var it *dijkstra.Itinerary
	err := s.query("path_"+mode, func() error {
		v, err, _ := s.flights.Do(key, func() (any, error) {
			if mode == ModeHops {
				return dijkstra.FewestHops(g, from, to)
			}
			return dijkstra.Route(g, from, to)
		})
		if err != nil {
			return err
		}
		it = v.(*dijkstra.Itinerary)
		return nil
	})
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) handleReload(c *gin.Context) {
	if s.loader == nil {
		s.fail(c, http.StatusNotImplemented, ErrReloadDisabled)
		return
	}
	v, err, _ := s.flights.Do("reload", func() (any, error) {
		start := time.Now()
		g, err := s.loader()
		s.metrics.RecordLoad(g, s.store.Generation(), err, time.Since(start))
		return g, err
	})
	if err != nil {
		s.log.Warn("reload rejected", "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrIngestion) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(c, status, err)
		return
	}
	g := v.(*core.Graph)
	s.log.Info("dataset reloaded", "generation", s.store.Generation(), "airports", g.VertexCount(), "routes", g.EdgeCount())
	c.JSON(http.StatusOK, reloadResponse{Generation: s.store.Generation(), Stats: g.Stats()})
}

// query runs fn and records its duration and outcome under name.
func (s *Server) query(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	status := metrics.StatusOK
	switch {
	case errors.Is(err, core.ErrUnknownCode):
		status = metrics.StatusUnknownCode
	case err != nil:
		status = metrics.StatusError
	}
	s.metrics.RecordQuery(name, status, time.Since(start))

	return err
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, core.ErrUnknownCode):
		return http.StatusNotFound
	case errors.Is(err, ErrBadQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// normCode upper-cases a user-supplied airport code.
func normCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
