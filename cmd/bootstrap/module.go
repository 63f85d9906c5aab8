package bootstrap

import (
	"order-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	AWSModule,
	MetricsModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
