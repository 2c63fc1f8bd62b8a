package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("traveldesk", reg)

	m.ObserveHTTPRequest("GET", "/api/v1/cupos/calendar", 200, 10*time.Millisecond)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
	m.IncStaleCalendarResponse()
	m.IncStaleCalendarResponse()
	m.AddCuposCompleted(3)
	m.AddCuposCompleted(0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/cupos/calendar", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("query")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.staleCalendarResponses))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.cuposCompleted))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("exec", time.Second, nil)
		m.IncStaleCalendarResponse()
		m.AddCuposCompleted(1)
	})
}
