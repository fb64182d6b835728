package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.SearchesTotal)
	assert.NotNil(t, r.SearchDuration)
	assert.NotNil(t, r.RunsAbandonedTotal)
	assert.NotNil(t, r.registry)
	assert.Same(t, r.registry, r.GetPrometheusRegistry())
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordSearch(t *testing.T) {
	r := NewRegistry()

	r.RecordSearch("Greedy", 2*time.Millisecond, 40, 1, 77, true)
	r.RecordSearch("Greedy", 3*time.Millisecond, 10, 1, 0, false)
	r.RecordSearch("Greedy", time.Millisecond, 12, 1, 55, true)

	counter, err := r.SearchesTotal.GetMetricWithLabelValues("Greedy", OutcomeFound)
	require.NoError(t, err)
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())

	gauge, err := r.CliqueWeight.GetMetricWithLabelValues("Greedy")
	require.NoError(t, err)
	metric.Reset()
	require.NoError(t, gauge.Write(&metric))
	assert.Equal(t, 55.0, metric.Gauge.GetValue())

	families, err := r.registry.Gather()
	require.NoError(t, err)
	var ops *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "mwc_search_operations" {
			ops = f
		}
	}
	require.NotNil(t, ops)
	assert.Equal(t, uint64(3), ops.Metric[0].Histogram.GetSampleCount())
	assert.Equal(t, 62.0, ops.Metric[0].Histogram.GetSampleSum())
}

func TestRecordSearchErrorAndAbandoned(t *testing.T) {
	r := NewRegistry()
	r.RecordSearchError("Exhaustive")
	r.RecordAbandoned("Exhaustive")
	r.RecordAbandoned("Exhaustive")

	var metric dto.Metric
	c, err := r.SearchesTotal.GetMetricWithLabelValues("Exhaustive", OutcomeError)
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 1.0, metric.Counter.GetValue())

	metric.Reset()
	c, err = r.RunsAbandonedTotal.GetMetricWithLabelValues("Exhaustive")
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())
}

func TestRecordCacheLookup(t *testing.T) {
	r := NewRegistry()
	r.RecordCacheLookup(true)
	r.RecordCacheLookup(false)
	r.RecordCacheLookup(false)

	var metric dto.Metric
	c, err := r.GraphCacheTotal.GetMetricWithLabelValues("miss")
	require.NoError(t, err)
	require.NoError(t, c.Write(&metric))
	assert.Equal(t, 2.0, metric.Counter.GetValue())
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordSearch("Backtracking", time.Millisecond, 5, 1, 18, true)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `mwc_searches_total{algorithm="Backtracking",outcome="found"} 1`), text)
	assert.Contains(t, text, "mwc_clique_weight")
}
