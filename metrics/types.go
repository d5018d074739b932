package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "airgraph"

// Query outcome labels.
const (
	StatusOK          = "ok"
	StatusUnknownCode = "unknown_code"
	StatusBadRequest  = "bad_request"
	StatusError       = "error"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Graph Metrics
	LoadsTotal      *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	GraphAirports   prometheus.Gauge
	GraphRoutes     prometheus.Gauge
	GraphGeneration prometheus.Gauge

	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// NewRegistry creates a registry with all collectors initialized, plus the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initGraphMetrics()
	r.initQueryMetrics()

	return r
}

// Gatherer returns the underlying registry for scraping or inspection.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
