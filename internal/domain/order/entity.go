package order

import (
	"strings"
	"time"

	"order-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingProduct  = errs.New("productId is required")
	ErrMissingStore    = errs.New("storeId is required")
	ErrInvalidQuantity = errs.New("quantity must be a positive number")
)

// Record type discriminators. Orders and Stores share one physical table and
// are distinguished solely by this attribute.
const (
	TypeOrders = "Orders"
	TypeStores = "Stores"
)

// TypeIndexName is the secondary index over the type discriminator.
const TypeIndexName = "recordTypeIndex"

// Order is a purchase request. The id and created timestamp are assigned
// server-side at creation and immutable thereafter; orders are never updated
// or deleted by this core.
type Order struct {
	id        uuid.UUID
	productID string
	quantity  int
	storeID   string
	created   time.Time
}

func NewOrder(productID string, quantity int, storeID string, now time.Time) (*Order, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, ErrMissingProduct
	}
	if strings.TrimSpace(storeID) == "" {
		return nil, ErrMissingStore
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Order{
		id:        uuid.New(),
		productID: productID,
		quantity:  quantity,
		storeID:   storeID,
		created:   now,
	}, nil
}

func (o *Order) ID() uuid.UUID     { return o.id }
func (o *Order) ProductID() string { return o.productID }
func (o *Order) Quantity() int     { return o.quantity }
func (o *Order) StoreID() string   { return o.storeID }
func (o *Order) Created() time.Time { return o.created }

// InvoiceKey is the archive key for this order's invoice.
func (o *Order) InvoiceKey() string {
	return o.id.String() + "-invoice.txt"
}

// Record flattens the order onto the single-table shape.
func (o *Order) Record() Record {
	return Record{
		ID:        o.id.String(),
		Type:      TypeOrders,
		ProductID: o.productID,
		Quantity:  o.quantity,
		StoreID:   o.storeID,
		Created:   o.created.UTC().Format(time.RFC3339),
	}
}
