package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *metric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestObservability_RecordsJobsAndRequests(t *testing.T) {
	reader := metric.NewManualReader()
	obs := newWithReader("test", reader)
	defer obs.Shutdown()

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "completed")
	obs.RecordJobProcessed(ctx, "completed")
	obs.RecordJobProcessed(ctx, "failed")
	obs.RecordJobDuration(ctx, 12*time.Millisecond, "completed")
	obs.RecordHTTPRequest(ctx, "GET /health", 200, time.Millisecond)

	data := collect(t, reader)

	jobs, ok := data["jobs.processed"].(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range jobs.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)
	assert.Len(t, jobs.DataPoints, 2)

	duration, ok := data["jobs.duration"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, duration.DataPoints, 1)
	assert.Equal(t, uint64(1), duration.DataPoints[0].Count)

	requests, ok := data["http.server.requests"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, requests.DataPoints, 1)
	route, _ := requests.DataPoints[0].Attributes.Value("route")
	assert.Equal(t, "GET /health", route.AsString())
}

func TestObservability_NoopAndNil(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		noop := NewNoop()
		noop.RecordJobProcessed(ctx, "completed")
		noop.RecordJobDuration(ctx, time.Second, "completed")
		noop.RecordHTTPRequest(ctx, "GET /", 200, time.Second)
		noop.Shutdown()
	})

	assert.NotPanics(t, func() {
		var obs *Observability
		obs.RecordJobProcessed(ctx, "failed")
		obs.RecordHTTPRequest(ctx, "GET /", 500, time.Second)
		obs.Shutdown()
	})
}
