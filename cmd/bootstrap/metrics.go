package bootstrap

import (
	"order-service/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			NewMetricsSink,
			fx.As(new(metrics.Sink)),
		),
	),
)

func NewMetricsSink() *metrics.PrometheusSink {
	return metrics.NewPrometheusSink(prometheus.DefaultRegisterer)
}
