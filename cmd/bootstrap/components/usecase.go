package components

import (
	"order-service/internal/pkg/clock"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/metrics"
	"order-service/internal/usecase/commands"
	"order-service/internal/usecase/queries"
	"order-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewOrderCommands,
		commands.NewSeedCommands,
		queries.NewOrderQueries,
	),
)

func NewOrderCommands(
	store shared.RecordStore,
	archive shared.InvoiceArchive,
	flags shared.FlagSource,
	injector shared.FaultInjector,
	sink metrics.Sink,
	clk clock.Clock,
	cfg config.Config,
) commands.OrderCommands {
	return commands.NewOrderCommands(store, archive, flags, injector, sink, clk, cfg.Orders)
}
