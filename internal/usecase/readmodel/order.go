package readmodel

import (
	"github.com/jinzhu/copier"

	"order-service/internal/domain/order"
)

// OrderRM is the public order shape. Projection from the raw record goes
// through this allow-list of fields so store-only attributes never leak.
type OrderRM struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	StoreID   string `json:"storeId"`
	Created   string `json:"created"`
}

func OrderFromRecord(rec order.Record) OrderRM {
	var rm OrderRM
	_ = copier.Copy(&rm, &rec)
	return rm
}
