package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airgraph/core"
	"github.com/katalvlaran/airgraph/metrics"
)

func TestNewRegistry_Isolated(t *testing.T) {
	a, b := metrics.NewRegistry(), metrics.NewRegistry()
	a.RecordQuery("path", metrics.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.QueriesTotal.WithLabelValues("path", metrics.StatusOK)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.QueriesTotal.WithLabelValues("path", metrics.StatusOK)))
	assert.Same(t, metrics.DefaultRegistry(), metrics.DefaultRegistry())
}

func TestRecordLoad(t *testing.T) {
	r := metrics.NewRegistry()
	g, err := core.FromEdges([]core.Edge{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}})
	require.NoError(t, err)

	r.RecordLoad(g, 1, nil, 20*time.Millisecond)
	r.RecordLoad(nil, 1, errors.New("bad csv"), 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.LoadsTotal.WithLabelValues(metrics.StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.LoadsTotal.WithLabelValues(metrics.StatusError)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.GraphAirports), "failed load keeps gauges")
	assert.Equal(t, 2.0, testutil.ToFloat64(r.GraphRoutes))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.GraphGeneration))
	assert.Equal(t, 1, testutil.CollectAndCount(r.LoadDuration))
}

func TestRecordHTTPRequest(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordHTTPRequest("GET", "/v1/path", 200, 3*time.Millisecond)
	r.RecordHTTPRequest("GET", "/v1/path", 200, 4*time.Millisecond)
	r.RecordHTTPRequest("GET", "/v1/airports/:code", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.HTTPRequestsTotal.WithLabelValues("GET", "/v1/path", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.HTTPRequestsTotal))
}

func TestHandler_Exposition(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordQuery("farthest", metrics.StatusUnknownCode, time.Microsecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, `airgraph_queries_total{query="farthest",status="unknown_code"} 1`), text)
	assert.Contains(t, text, "go_goroutines")
}
