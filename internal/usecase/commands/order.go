package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"order-service/internal/domain/order"
	"order-service/internal/pkg/clock"
	"order-service/internal/pkg/config"
	"order-service/internal/pkg/errs"
	"order-service/internal/pkg/featureflags"
	"order-service/internal/pkg/metrics"
	"order-service/internal/usecase/readmodel"
	"order-service/internal/usecase/shared"
)

var (
	ErrMissingConfiguration = errs.New("required configuration is missing")
	ErrFlagsUnavailable     = errs.New("feature flags unavailable")
	ErrCreateOrdersDisabled = errs.New("new order creation is currently disabled via feature flag")
	ErrQuantityOverLimit    = errs.New("order quantity is over the limit")
	ErrStoreNotFound        = errs.New("store not found")
)

type CreateOrderRequest struct {
	ProductID string
	Quantity  int
	StoreID   string
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*readmodel.OrderRM, error)
}

type orderCommandsImpl struct {
	store    shared.RecordStore
	archive  shared.InvoiceArchive
	flags    shared.FlagSource
	injector shared.FaultInjector
	sink     metrics.Sink
	clock    clock.Clock
	cfg      config.OrdersConfig
}

func NewOrderCommands(
	store shared.RecordStore,
	archive shared.InvoiceArchive,
	flags shared.FlagSource,
	injector shared.FaultInjector,
	sink metrics.Sink,
	clk clock.Clock,
	cfg config.OrdersConfig,
) OrderCommands {
	return &orderCommandsImpl{
		store:    store,
		archive:  archive,
		flags:    flags,
		injector: injector,
		sink:     sink,
		clock:    clk,
		cfg:      cfg,
	}
}

func (uc *orderCommandsImpl) CreateOrder(ctx context.Context, req CreateOrderRequest) (*readmodel.OrderRM, error) {
	rm, err := uc.createOrder(ctx, req)
	if err != nil {
		uc.sink.Count(metrics.OrderCreatedError)
		return nil, err
	}
	uc.sink.Count(metrics.OrderCreatedSuccess)
	return rm, nil
}

func (uc *orderCommandsImpl) createOrder(ctx context.Context, req CreateOrderRequest) (*readmodel.OrderRM, error) {
	if uc.cfg.TableName == "" || uc.cfg.BucketName == "" {
		return nil, ErrMissingConfiguration
	}

	// Fail closed: an unreachable flag store blocks creation rather than
	// bypassing the operational gates below.
	flags, err := uc.flags.Fetch(ctx,
		featureflags.OpsPreventCreateOrders,
		featureflags.ReleaseCheckCreateOrderQuantity,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrFlagsUnavailable)
	}
	slog.Debug("feature flags fetched", "flags", flags)

	if flags.Get(featureflags.OpsPreventCreateOrders).Enabled {
		slog.Warn("opsPreventCreateOrders enabled, preventing new order creation")
		return nil, ErrCreateOrdersDisabled
	}

	// Gates run strictly before any mutation so a rejected request never
	// leaves partial writes.
	if err := uc.injector.MaybeFail(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(req.ProductID, req.Quantity, req.StoreID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	// Progressive rollout: the quantity rule applies only while its flag is
	// enabled for this environment.
	if quantityFlag := flags.Get(featureflags.ReleaseCheckCreateOrderQuantity); quantityFlag.Enabled &&
		newOrder.Quantity() >= quantityFlag.LimitValue() {
		slog.Warn("releaseCheckCreateOrderQuantity enabled, order quantity over limit",
			"quantity", newOrder.Quantity(), "limit", quantityFlag.LimitValue())
		return nil, ErrQuantityOverLimit
	}

	stores, err := uc.store.RecordsByType(ctx, order.TypeStores)
	if err != nil {
		return nil, err
	}
	if !storeExists(stores, newOrder.StoreID()) {
		return nil, errs.Mark(errs.New(newOrder.StoreID()+" is not found"), ErrStoreNotFound)
	}

	rec := newOrder.Record()
	if err := uc.store.Put(ctx, rec); err != nil {
		return nil, err
	}

	// The order write and the invoice write are not transactional: an
	// archive failure here leaves the order persisted with no invoice.
	// Accepted tradeoff, surfaced to the caller as a failed request.
	invoice, err := json.Marshal(rec)
	if err != nil {
		return nil, errs.Wrap(err, "failed to serialize invoice")
	}
	if err := uc.archive.Put(ctx, newOrder.InvoiceKey(), invoice); err != nil {
		return nil, err
	}

	rm := readmodel.OrderFromRecord(rec)
	return &rm, nil
}

func storeExists(stores []order.Record, storeID string) bool {
	for _, s := range stores {
		if s.ID == storeID {
			return true
		}
	}
	return false
}
