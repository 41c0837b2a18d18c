package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.ObserveRun(false, 10*time.Millisecond)
	r.ObserveRun(true, time.Millisecond)
	r.ObserveRun(false, time.Millisecond)
	r.ProjectionFailed("myspace")
	r.ExternalFallback("narrative")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.projectionFailures.WithLabelValues("myspace")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.externalFallbacks.WithLabelValues("narrative")))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "planner_run_duration_seconds"))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveRun(true, time.Second)
		r.ProjectionFailed("meta")
		r.ExternalFallback("competitor")
	})
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
