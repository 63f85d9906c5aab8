package commands

import (
	"context"
	"log/slog"

	"order-service/internal/domain/order"
	"order-service/internal/pkg/metrics"
	"order-service/internal/usecase/shared"
)

// SeedCommands populates the fixed Store records. The ids are stable, so
// reseeding is idempotent: running twice leaves exactly the same records.
type SeedCommands interface {
	SeedStores(ctx context.Context) error
}

type seedCommandsImpl struct {
	store shared.RecordStore
	sink  metrics.Sink
}

func NewSeedCommands(store shared.RecordStore, sink metrics.Sink) SeedCommands {
	return &seedCommandsImpl{store: store, sink: sink}
}

func (uc *seedCommandsImpl) SeedStores(ctx context.Context) error {
	stores := order.SeedStores()

	// BatchPut reports unprocessed items as a hard failure; a partially
	// applied seed never masquerades as success.
	if err := uc.store.BatchPut(ctx, stores); err != nil {
		uc.sink.Count(metrics.SeedStoresError)
		return err
	}

	slog.Info("store records seeded", "count", len(stores))
	uc.sink.Count(metrics.SeedStoresSuccess)
	return nil
}
