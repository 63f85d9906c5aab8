// Package shared holds the collaborator ports consumed by both the command
// and query sides. Implementations are injected per invocation; handlers
// keep no cross-request state.
package shared

import (
	"context"

	"order-service/internal/domain/order"
	"order-service/internal/pkg/featureflags"
)

// RecordStore is the single-table record store. FindByID reports absence as
// (nil, nil); Put has upsert semantics with last-write-wins; BatchPut fails
// hard when any item goes unprocessed.
type RecordStore interface {
	FindByID(ctx context.Context, id string) (*order.Record, error)
	Put(ctx context.Context, rec order.Record) error
	RecordsByType(ctx context.Context, recordType string) ([]order.Record, error)
	BatchPut(ctx context.Context, recs []order.Record) error
}

// InvoiceArchive is the write-only blob store for invoices.
type InvoiceArchive interface {
	Put(ctx context.Context, key string, body []byte) error
}

// FlagSource fetches the named feature flags, or all of them when no names
// are given.
type FlagSource interface {
	Fetch(ctx context.Context, names ...string) (featureflags.Flags, error)
}

// FaultInjector may abort the current operation with a synthetic failure.
type FaultInjector interface {
	MaybeFail() error
}
