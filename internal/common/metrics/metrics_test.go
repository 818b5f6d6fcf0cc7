package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectors_Registered(t *testing.T) {
	collectors := map[string]prometheus.Collector{
		"match_requests_total":   MatchRequests,
		"match_duration_seconds": MatchDuration,
		"match_results_returned": MatchResultsReturned,
		"registrations_total":    RegistrationsTotal,
		"http_requests_total":    HTTPRequests,
	}

	for name, c := range collectors {
		err := prometheus.DefaultRegisterer.Register(c)
		var already prometheus.AlreadyRegisteredError
		assert.ErrorAs(t, err, &already, name)
	}
}

func TestCounters_Increment(t *testing.T) {
	counter := MatchRequests.WithLabelValues("candidate", "success")
	before := testutil.ToFloat64(counter)

	counter.Inc()
	counter.Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	active := WorkerJobsActive.WithLabelValues("compute-match-score")
	active.Inc()
	active.Dec()
	assert.Equal(t, float64(0), testutil.ToFloat64(active))
}
