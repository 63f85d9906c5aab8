package bootstrap

import (
	"context"
	"log/slog"

	"order-service/internal/pkg/config"
	"order-service/internal/usecase/commands"

	"go.uber.org/fx"
)

// SeedModule reseeds the fixed Store records on startup when enabled. The
// seed is idempotent, so repeated starts never drift the data.
var SeedModule = fx.Module("seed",
	fx.Invoke(registerSeed),
)

func registerSeed(lc fx.Lifecycle, cfg config.Config, seed commands.SeedCommands, logger *slog.Logger) {
	if !cfg.Orders.SeedOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("seeding store records")
			return seed.SeedStores(ctx)
		},
	})
}
