package queries

import (
	"context"
	"log/slog"

	"order-service/internal/domain/order"
	"order-service/internal/pkg/errs"
	"order-service/internal/pkg/featureflags"
	"order-service/internal/pkg/metrics"
	"order-service/internal/usecase/commands"
	"order-service/internal/usecase/readmodel"
	"order-service/internal/usecase/shared"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderQueries interface {
	GetOrder(ctx context.Context, id string) (*readmodel.OrderRM, error)
	ListOrders(ctx context.Context) ([]readmodel.OrderRM, error)
}

type orderQueriesImpl struct {
	store    shared.RecordStore
	flags    shared.FlagSource
	injector shared.FaultInjector
	sink     metrics.Sink
}

func NewOrderQueries(
	store shared.RecordStore,
	flags shared.FlagSource,
	injector shared.FaultInjector,
	sink metrics.Sink,
) OrderQueries {
	return &orderQueriesImpl{
		store:    store,
		flags:    flags,
		injector: injector,
		sink:     sink,
	}
}

func (uc *orderQueriesImpl) GetOrder(ctx context.Context, id string) (*readmodel.OrderRM, error) {
	rm, err := uc.getOrder(ctx, id)
	if err != nil {
		uc.sink.Count(metrics.GetOrderError)
		return nil, err
	}
	uc.sink.Count(metrics.GetOrderSuccess)
	return rm, nil
}

func (uc *orderQueriesImpl) getOrder(ctx context.Context, id string) (*readmodel.OrderRM, error) {
	// No flag gates this path today; the fetch stays for uniformity and
	// telemetry across the handlers.
	flags, err := uc.flags.Fetch(ctx)
	if err != nil {
		return nil, errs.Mark(err, commands.ErrFlagsUnavailable)
	}
	slog.Debug("feature flags fetched", "flags", flags)

	if err := uc.injector.MaybeFail(); err != nil {
		return nil, err
	}

	rec, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.Mark(errs.New("order id "+id+" is not found"), ErrOrderNotFound)
	}

	rm := readmodel.OrderFromRecord(*rec)
	return &rm, nil
}

func (uc *orderQueriesImpl) ListOrders(ctx context.Context) ([]readmodel.OrderRM, error) {
	rms, err := uc.listOrders(ctx)
	if err != nil {
		uc.sink.Count(metrics.ListOrdersError)
		return nil, err
	}
	uc.sink.Count(metrics.ListOrdersSuccess)
	return rms, nil
}

func (uc *orderQueriesImpl) listOrders(ctx context.Context) ([]readmodel.OrderRM, error) {
	flags, err := uc.flags.Fetch(ctx, featureflags.OpsLimitListOrdersResults)
	if err != nil {
		return nil, errs.Mark(err, commands.ErrFlagsUnavailable)
	}

	if err := uc.injector.MaybeFail(); err != nil {
		return nil, err
	}

	recs, err := uc.store.RecordsByType(ctx, order.TypeOrders)
	if err != nil {
		return nil, err
	}

	rms := make([]readmodel.OrderRM, 0, len(recs))
	for _, rec := range recs {
		rms = append(rms, readmodel.OrderFromRecord(rec))
	}

	// Truncation follows index order, not insertion order; this is a cap on
	// response size, not a stable top-N.
	if limitFlag := flags.Get(featureflags.OpsLimitListOrdersResults); limitFlag.Enabled {
		limit := limitFlag.LimitValue()
		slog.Warn("opsLimitListOrdersResults enabled, limiting results", "limit", limit)
		if limit < len(rms) {
			rms = rms[:limit]
		}
	}

	return rms, nil
}
