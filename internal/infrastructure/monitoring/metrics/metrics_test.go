package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersRecord(t *testing.T) {
	m := New()

	m.RunsTotal.WithLabelValues("kesehatan", "success").Inc()
	m.RunsTotal.WithLabelValues("kesehatan", "success").Inc()
	m.RowsSkipped.WithLabelValues("pangan", "unmatched").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("kesehatan", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RowsSkipped.WithLabelValues("pangan", "unmatched")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CacheHits))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.CacheHits.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.CacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheHits))
}

func TestMetrics_HandlerExposition(t *testing.T) {
	m := New()
	m.RunsTotal.WithLabelValues("pendidikan", "success").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "geoinsight_runs_total"), "exposition missing runs counter:\n%s", body)
}

func TestTimer_NilObserverIsNoop(t *testing.T) {
	timer := NewTimer(nil)
	timer.ObserveDuration()
}

func TestTimer_ObservesIntoHistogram(t *testing.T) {
	m := New()
	timer := NewTimer(m.RunDuration.WithLabelValues("kesehatan"))
	timer.ObserveDuration()

	count := testutil.CollectAndCount(m.RunDuration)
	assert.Equal(t, 1, count)
}
