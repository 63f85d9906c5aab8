// Package metrics is the emission contract for named operation counters.
// Only the contract lives in the core; the Prometheus sink is the one
// concrete implementation this service ships.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter names emitted by the handlers.
const (
	OrderCreatedSuccess = "OrderCreatedSuccess"
	OrderCreatedError   = "OrderCreatedError"
	GetOrderSuccess     = "GetOrderSuccess"
	GetOrderError       = "GetOrderError"
	ListOrdersSuccess   = "ListOrdersSuccess"
	ListOrdersError     = "ListOrdersError"
	SeedStoresSuccess   = "SeedStoresSuccess"
	SeedStoresError     = "SeedStoresError"
)

// Sink accepts named counters.
type Sink interface {
	Count(name string)
}

type PrometheusSink struct {
	events *prometheus.CounterVec
}

func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Name:      "events_total",
		Help:      "Counts of named order service events.",
	}, []string{"event"})
	reg.MustRegister(events)
	return &PrometheusSink{events: events}
}

func (s *PrometheusSink) Count(name string) {
	s.events.WithLabelValues(name).Inc()
}

// NopSink discards all counts, for tests.
type NopSink struct{}

func (NopSink) Count(string) {}
