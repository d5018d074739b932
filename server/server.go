package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/dijkstra"
	"github.com/katalvlaran/airgraph/metrics"
)

const shutdownTimeout = 5 * time.Second

// Loader rebuilds the dataset into the server's store and returns the new
// snapshot. It must leave the store untouched on error.
type Loader func() (*core.Graph, error)

// Server wires HTTP handlers to a core.Store.
type Server struct {
	store         *core.Store
	log           *slog.Logger
	metrics       *metrics.Registry
	exposeMetrics bool
	loader        Loader
	farthestLimit int

	flights singleflight.Group
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and reload logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records into reg; expose also mounts GET /metrics.
func WithMetrics(reg *metrics.Registry, expose bool) Option {
	return func(s *Server) {
		if reg != nil {
			s.metrics = reg
			s.exposeMetrics = expose
		}
	}
}

// WithLoader enables POST /v1/reload.
func WithLoader(fn Loader) Option {
	return func(s *Server) { s.loader = fn }
}

// WithFarthestLimit sets k for /v1/farthest when the query omits it.
// Values <= 0 keep dijkstra.DefaultFarthestLimit.
func WithFarthestLimit(k int) Option {
	return func(s *Server) {
		if k > 0 {
			s.farthestLimit = k
		}
	}
}

// New builds a Server over store. Without WithMetrics a private registry is
// used and /metrics is not mounted.
func New(store *core.Store, opts ...Option) *Server {
	s := &Server{
		store:         store,
		log:           slog.New(slog.DiscardHandler),
		farthestLimit: dijkstra.DefaultFarthestLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRegistry()
	}
	s.metrics.SetGraph(store.Snapshot(), store.Generation())
	s.engine = s.routes()

	return s
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("http server shutting down")
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.observe())

	v1 := r.Group("/v1")
	v1.GET("/health", s.handleHealth)
	v1.GET("/graph/stats", s.handleStats)
	v1.GET("/airports/:code", s.handleAirport)
	v1.GET("/airports/:code/neighbors", s.handleNeighbors)
	v1.GET("/airports/:code/reach", s.handleReach)
	v1.GET("/connectivity", s.handleConnectivity)
	v1.GET("/critical", s.handleCritical)
	v1.GET("/mst", s.handleMST)
	v1.GET("/farthest/:code", s.handleFarthest)
	v1.GET("/path", s.handlePath)
	v1.POST("/reload", s.handleReload)

	if s.exposeMetrics {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	return r
}
