//go:build unit

package metrics_test

import (
	"strings"
	"testing"

	"order-service/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusSink_Count(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := metrics.NewPrometheusSink(reg)

	sink.Count(metrics.OrderCreatedSuccess)
	sink.Count(metrics.OrderCreatedSuccess)
	sink.Count(metrics.OrderCreatedError)

	expected := `
# HELP order_service_events_total Counts of named order service events.
# TYPE order_service_events_total counter
order_service_events_total{event="OrderCreatedError"} 1
order_service_events_total{event="OrderCreatedSuccess"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "order_service_events_total"))
}

func TestNopSink_Count(t *testing.T) {
	var sink metrics.Sink = metrics.NopSink{}

	assert.NotPanics(t, func() {
		sink.Count(metrics.GetOrderSuccess)
	})
}
