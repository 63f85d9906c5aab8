//go:build unit

package order_test

import (
	"testing"
	"time"

	"order-service/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := order.NewOrder("p1", 5, "store-1", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "p1", actual.ProductID())
		assert.Equal(t, 5, actual.Quantity())
		assert.Equal(t, "store-1", actual.StoreID())
		assert.Equal(t, now, actual.Created())
	})

	t.Run("ids are unique per order", func(t *testing.T) {
		first, err := order.NewOrder("p1", 1, "store-1", now)
		require.NoError(t, err)
		second, err := order.NewOrder("p1", 1, "store-1", now)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			productID string
			quantity  int
			storeID   string
			errIs     error
		}{
			{name: "missing productId", productID: "", quantity: 1, storeID: "s", errIs: order.ErrMissingProduct},
			{name: "blank productId", productID: "   ", quantity: 1, storeID: "s", errIs: order.ErrMissingProduct},
			{name: "missing storeId", productID: "p", quantity: 1, storeID: "", errIs: order.ErrMissingStore},
			{name: "zero quantity", productID: "p", quantity: 0, storeID: "s", errIs: order.ErrInvalidQuantity},
			{name: "negative quantity", productID: "p", quantity: -1, storeID: "s", errIs: order.ErrInvalidQuantity},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.productID, tc.quantity, tc.storeID, now)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestOrder_Record(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	o, err := order.NewOrder("p1", 3, "store-1", now)
	require.NoError(t, err)

	rec := o.Record()

	assert.Equal(t, o.ID().String(), rec.ID)
	assert.Equal(t, order.TypeOrders, rec.Type)
	assert.Equal(t, "p1", rec.ProductID)
	assert.Equal(t, 3, rec.Quantity)
	assert.Equal(t, "store-1", rec.StoreID)
	assert.Equal(t, "2024-03-01T12:00:00Z", rec.Created)
	assert.Empty(t, rec.StoreCode)
	assert.Empty(t, rec.StoreName)
}

func TestOrder_InvoiceKey(t *testing.T) {
	o, err := order.NewOrder("p1", 1, "store-1", time.Now())
	require.NoError(t, err)

	assert.Equal(t, o.ID().String()+"-invoice.txt", o.InvoiceKey())
}

func TestSeedStores(t *testing.T) {
	stores := order.SeedStores()

	require.Len(t, stores, 3)
	for _, s := range stores {
		assert.Equal(t, order.TypeStores, s.Type)
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.StoreCode)
		assert.NotEmpty(t, s.StoreName)
	}

	// Stable ids keep the seed idempotent across invocations.
	assert.Equal(t, order.SeedStores(), stores)
}
