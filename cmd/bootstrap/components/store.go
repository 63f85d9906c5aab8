package components

import (
	"log/slog"

	"order-service/internal/infra/appconfig"
	"order-service/internal/infra/dynamo"
	infras3 "order-service/internal/infra/s3"
	"order-service/internal/pkg/chaos"
	"order-service/internal/pkg/config"
	"order-service/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

// StoreModule binds the infrastructure adapters to the usecase ports.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewRecordStore,
			fx.As(new(shared.RecordStore)),
		),
		fx.Annotate(
			NewInvoiceArchive,
			fx.As(new(shared.InvoiceArchive)),
		),
		fx.Annotate(
			NewFlagSource,
			fx.As(new(shared.FlagSource)),
		),
		fx.Annotate(
			NewFaultInjector,
			fx.As(new(shared.FaultInjector)),
		),
	),
)

func NewRecordStore(client *dynamodb.Client, cfg config.Config, logger *slog.Logger) *dynamo.RecordStore {
	return dynamo.NewRecordStore(client, cfg.Orders.TableName, cfg.Orders.LegacyScan, logger)
}

func NewInvoiceArchive(client *s3.Client, cfg config.Config, logger *slog.Logger) *infras3.InvoiceArchive {
	return infras3.NewInvoiceArchive(client, cfg.Orders.BucketName, logger)
}

func NewFlagSource(client *appconfigdata.Client, cfg config.Config, logger *slog.Logger) *appconfig.FlagSource {
	return appconfig.NewFlagSource(client, cfg.AppConfig, logger)
}

func NewFaultInjector(cfg config.Config) *chaos.Injector {
	return chaos.NewInjector(cfg.Chaos.RandomErrorsEnabled, cfg.Chaos.ErrorThreshold)
}
